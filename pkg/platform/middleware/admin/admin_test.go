package admin

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

// AdminMiddlewareSuite covers the invariant that a wrong or missing token
// never reaches the maintenance handlers.
type AdminMiddlewareSuite struct {
	suite.Suite
	logger *slog.Logger
}

func TestAdminMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AdminMiddlewareSuite))
}

func (s *AdminMiddlewareSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *AdminMiddlewareSuite) serve(expected, presented string) (int, bool) {
	called := false
	handler := RequireAdminToken(expected, s.logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/admin/parties", nil)
	if presented != "" {
		req.Header.Set("X-Admin-Token", presented)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w.Code, called
}

func (s *AdminMiddlewareSuite) TestTokenValidation() {
	s.Run("correct token passes to next handler", func() {
		code, called := s.serve("secret-admin-token", "secret-admin-token")
		s.True(called)
		s.Equal(http.StatusNoContent, code)
	})

	s.Run("wrong token is rejected", func() {
		code, called := s.serve("secret-admin-token", "guess")
		s.False(called)
		s.Equal(http.StatusUnauthorized, code)
	})

	s.Run("missing token is rejected", func() {
		code, called := s.serve("secret-admin-token", "")
		s.False(called)
		s.Equal(http.StatusUnauthorized, code)
	})

	s.Run("unconfigured token disables the routes", func() {
		code, called := s.serve("", "")
		s.False(called)
		s.Equal(http.StatusUnauthorized, code)
	})
}
