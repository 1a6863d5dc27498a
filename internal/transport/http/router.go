package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"partysearch/internal/party/handler"
	"partysearch/internal/platform/health"
	adminmw "partysearch/pkg/platform/middleware/admin"
	request "partysearch/pkg/platform/middleware/request"
)

// RouterDeps holds everything the router mounts.
type RouterDeps struct {
	Logger         *slog.Logger
	Parties        *handler.Handler
	Health         *health.Handler
	AdminToken     string
	MaxBodyBytes   int64
	Latency        *request.Metrics
	MetricsHandler http.Handler
}

// NewRouter wires the public, admin and operational endpoints with middleware.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(request.Logger(d.Logger))
	if d.Latency != nil {
		r.Use(request.LatencyMiddleware(d.Latency))
	}
	r.Use(request.BodyLimit(d.MaxBodyBytes))
	r.Use(request.ContentTypeJSON)

	d.Health.Register(r)
	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	d.Parties.Register(r)
	r.Group(func(admin chi.Router) {
		admin.Use(adminmw.RequireAdminToken(d.AdminToken, d.Logger))
		d.Parties.RegisterAdmin(admin)
	})

	return r
}
