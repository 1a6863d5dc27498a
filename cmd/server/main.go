package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"partysearch/internal/party/events"
	"partysearch/internal/party/handler"
	partymetrics "partysearch/internal/party/metrics"
	"partysearch/internal/party/service"
	"partysearch/internal/party/store"
	"partysearch/internal/platform/config"
	"partysearch/internal/platform/health"
	"partysearch/internal/platform/kafka"
	"partysearch/internal/platform/kafka/producer"
	"partysearch/internal/platform/logger"
	"partysearch/internal/platform/metrics"
	"partysearch/internal/platform/tracer"
	"partysearch/internal/seeder"
	httptransport "partysearch/internal/transport/http"
	"partysearch/pkg/platform/circuit"
	request "partysearch/pkg/platform/middleware/request"
)

// main wires dependencies and owns the server lifecycle. Business logic lives
// in the internal/party packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.Environment)

	if err := run(cfg, log); err != nil {
		log.Error("party search stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("initializing party search",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"kafka_enabled", cfg.KafkaEnabled(),
		"admin_routes_enabled", cfg.AdminAPIToken != "",
	)

	reg := metrics.NewRegistry()
	metrics.RegisterBuildInfo(reg, health.Version, cfg.Environment)
	healthHandler := health.New(cfg.Environment)

	publisher, closePublisher, err := newPublisher(cfg, log, healthHandler)
	if err != nil {
		return err
	}

	partyStore := store.NewInMemory()
	svc := service.New(partyStore,
		service.WithLogger(log),
		service.WithMetrics(partymetrics.NewWithRegistry(reg)),
		service.WithTracer(tracer.NewOTel()),
		service.WithEventPublisher(publisher),
	)
	metrics.RegisterStoreSize(reg, func() float64 {
		n, _ := svc.Count(context.Background())
		return float64(n)
	})
	healthHandler.RegisterCheck("party_store", func(ctx context.Context) error {
		_, err := svc.Count(ctx)
		return err
	})

	if cfg.SeedFile != "" {
		seeder.New(svc, log).SeedFromFile(ctx, cfg.SeedFile)
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Logger:         log,
		Parties:        handler.New(svc, log),
		Health:         healthHandler,
		AdminToken:     cfg.AdminAPIToken,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		Latency:        request.NewMetricsWithRegistry(reg),
		MetricsHandler: metrics.Handler(reg),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if cerr := closePublisher(shutdownCtx); cerr != nil {
			log.Warn("failed to close event publisher", "error", cerr)
		}
		return err
	})
	return g.Wait()
}

// newPublisher returns the Kafka publisher when brokers are configured and a
// logging publisher otherwise, plus a close function for shutdown.
func newPublisher(cfg config.Server, log *slog.Logger, h *health.Handler) (service.EventPublisher, func(context.Context) error, error) {
	if !cfg.KafkaEnabled() {
		return events.NewLogPublisher(log), func(context.Context) error { return nil }, nil
	}

	producerCfg := kafka.DefaultProducerConfig(cfg.KafkaBrokers)
	prod, err := producer.New(producerCfg, log)
	if err != nil {
		return nil, nil, err
	}
	h.RegisterCheck("kafka", kafka.NewHealthChecker(producerCfg.Brokers).Check)
	log.Info("publishing party events to kafka", "topic", cfg.EventsTopic)
	breaker := circuit.New("kafka-events", circuit.WithCooldown(30*time.Second))
	pub := events.NewFailoverPublisher(
		events.NewKafkaPublisher(prod, cfg.EventsTopic),
		events.NewLogPublisher(log),
		breaker,
		log,
	)
	return pub, prod.Close, nil
}
