package request

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkedReader hides its length so httptest leaves ContentLength unset.
type chunkedReader struct{ io.Reader }

func TestBodyLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int64
		bodySize int
		wantErr  bool
	}{
		{"under limit", 1024, 100, false},
		{"exact limit", 100, 100, false},
		{"over limit", 100, 200, true},
		{"zero limit disables cap", 0, 4096, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var readErr error
			var n int
			handler := BodyLimit(tt.limit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var data []byte
				data, readErr = io.ReadAll(r.Body)
				n = len(data)
			}))

			body := chunkedReader{strings.NewReader(strings.Repeat("x", tt.bodySize))}
			req := httptest.NewRequest(http.MethodPost, "/api/parties", body)
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantErr {
				require.Error(t, readErr)
				assert.Contains(t, readErr.Error(), "request body too large")
				return
			}
			require.NoError(t, readErr)
			assert.Equal(t, tt.bodySize, n)
		})
	}
}

func TestBodyLimit_RejectsDeclaredLength(t *testing.T) {
	called := false
	handler := BodyLimit(10)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/parties/bulk", strings.NewReader(strings.Repeat("x", 11))))

	assert.False(t, called)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "request_too_large")
}
