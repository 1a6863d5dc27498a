package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultAddr            = ":8080"
	DefaultEnvironment     = "dev"
	DefaultEventsTopic     = "party.events"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	Environment     string
	LogLevel        slog.Level
	SeedFile        string
	AdminAPIToken   string
	KafkaBrokers    string
	EventsTopic     string
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// KafkaEnabled reports whether onboarding events should go to Kafka.
func (s Server) KafkaEnabled() bool {
	return strings.TrimSpace(s.KafkaBrokers) != ""
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Malformed values fall back to their defaults.
func FromEnv() Server {
	return Server{
		Addr:            envOr("PARTY_SEARCH_ADDR", DefaultAddr),
		Environment:     envOr("ENVIRONMENT", DefaultEnvironment),
		LogLevel:        parseLevel(os.Getenv("LOG_LEVEL")),
		SeedFile:        os.Getenv("SEED_FILE"),
		AdminAPIToken:   os.Getenv("ADMIN_API_TOKEN"),
		KafkaBrokers:    os.Getenv("KAFKA_BROKERS"),
		EventsTopic:     envOr("PARTY_EVENTS_TOPIC", DefaultEventsTopic),
		ShutdownTimeout: durationOr("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		MaxBodyBytes:    int64Or("MAX_BODY_BYTES", DefaultMaxBodyBytes),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func int64Or(key string, fallback int64) int64 {
	if raw := os.Getenv(key); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo
	}
	return level
}
