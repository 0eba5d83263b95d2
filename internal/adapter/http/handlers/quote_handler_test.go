package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mecanica_jobs/internal/adapter/http/handlers/mocks"
	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)
		r.PATCH("/v1/quotes/:id/approve", h.ApproveQuote)
		r.PATCH("/v1/quotes/:id/reject", h.RejectQuote)
		return r, uc
	}

	t.Run("get not found", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/job-1", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		r, uc := build(t)
		now := time.Now().UTC()
		uc.EXPECT().ApproveByJobID(gomock.Any(), "job-1").Return(entities.Quote{ID: "q-1", JobID: "job-1", Price: 95, Status: entities.QuoteStatusApproved, CreatedAt: now, UpdatedAt: now}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/quotes/job-1/approve", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "approved" || body["price"] != 95.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("reject already decided", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().RejectByJobID(gomock.Any(), "job-1").Return(entities.Quote{}, usecase.ErrQuoteAlreadyDecided)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/quotes/job-1/reject", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
