package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(&Container{}, zap.NewNop())

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mutations require an actor", func(t *testing.T) {
		for _, tc := range []struct{ method, path string }{
			{http.MethodPost, "/v1/jobs"},
			{http.MethodPatch, "/v1/jobs/job-1/status"},
			{http.MethodPost, "/v1/jobs/job-1/work-order/sessions"},
			{http.MethodPost, "/v1/work-order-sessions/s-1/finalize"},
			{http.MethodPatch, "/v1/quotes/job-1/approve"},
		} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, w.Code)
			}
		}
	})
}
