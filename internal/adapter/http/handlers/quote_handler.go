package handlers

import (
	"context"
	"net/http"

	response "mecanica_jobs/internal/adapter/http/dto/response"
	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves the customer quote kept in sync with each finalized work order.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByJobID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.decide(c, h.usecase.ApproveByJobID)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.decide(c, h.usecase.RejectByJobID)
}

func (h *QuoteHandler) decide(c *gin.Context, updater func(ctx context.Context, jobID string) (entities.Quote, error)) {
	quote, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}
