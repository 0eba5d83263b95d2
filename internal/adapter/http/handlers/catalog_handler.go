package handlers

import (
	"net/http"

	response "mecanica_jobs/internal/adapter/http/dto/response"
	"mecanica_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	rows, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogServices(rows))
}

func (h *CatalogHandler) ListParts(c *gin.Context) {
	rows, err := h.usecase.ListParts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogParts(rows))
}
