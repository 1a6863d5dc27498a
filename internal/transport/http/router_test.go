package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/suite"

	"partysearch/internal/party/handler"
	"partysearch/internal/party/service"
	"partysearch/internal/party/store"
	"partysearch/internal/platform/health"
	request "partysearch/pkg/platform/middleware/request"
)

type RouterSuite struct {
	suite.Suite
	router http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	svc := service.New(store.NewInMemory(), service.WithLogger(logger))

	s.router = NewRouter(RouterDeps{
		Logger:         logger,
		Parties:        handler.New(svc, logger),
		Health:         health.New("test"),
		AdminToken:     "admin",
		MaxBodyBytes:   256,
		Latency:        request.NewMetricsWithRegistry(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
}

func (s *RouterSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) TestRequestIDHeader() {
	rec := s.serve(httptest.NewRequest(http.MethodGet, "/api/parties", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestHealthAndMetricsMounted() {
	s.Equal(http.StatusOK, s.serve(httptest.NewRequest(http.MethodGet, "/health/live", nil)).Code)

	s.serve(httptest.NewRequest(http.MethodGet, "/api/parties", nil))
	rec := s.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "party_search_endpoint_latency_seconds")
}

func (s *RouterSuite) TestAdminRoutesGuarded() {
	rec := s.serve(httptest.NewRequest(http.MethodDelete, "/admin/parties", nil))
	s.Equal(http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/admin/parties", nil)
	req.Header.Set("X-Admin-Token", "admin")
	s.Equal(http.StatusNoContent, s.serve(req).Code)
}

func (s *RouterSuite) TestPublicRoutesNeedNoToken() {
	req := httptest.NewRequest(http.MethodPost, "/api/parties",
		strings.NewReader(`{"name":"Open","type":"Individual","sanctionsStatus":"Approved"}`))
	req.Header.Set("Content-Type", "application/json")
	s.Equal(http.StatusCreated, s.serve(req).Code)
}

func (s *RouterSuite) TestBodyLimit() {
	body := `{"name":"` + strings.Repeat("x", 512) + `","type":"Individual","sanctionsStatus":"Approved"}`
	req := httptest.NewRequest(http.MethodPost, "/api/parties", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.Equal(http.StatusRequestEntityTooLarge, s.serve(req).Code)
}

func (s *RouterSuite) TestContentTypeEnforced() {
	req := httptest.NewRequest(http.MethodPost, "/api/parties", strings.NewReader(`name=x`))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	s.Equal(http.StatusUnsupportedMediaType, s.serve(req).Code)
}
