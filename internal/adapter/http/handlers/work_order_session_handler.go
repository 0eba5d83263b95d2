package handlers

import (
	"net/http"
	"strings"

	request "mecanica_jobs/internal/adapter/http/dto/request"
	response "mecanica_jobs/internal/adapter/http/dto/response"
	"mecanica_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WorkOrderSessionHandler exposes the work-order editor. Every edit happens in a
// server-side draft that is only written to the job on finalize.
type WorkOrderSessionHandler struct {
	usecase usecase.IWorkOrderSessionUseCase
	log     *zap.Logger
}

func NewWorkOrderSessionHandler(uc usecase.IWorkOrderSessionUseCase, log *zap.Logger) *WorkOrderSessionHandler {
	return &WorkOrderSessionHandler{usecase: uc, log: log}
}

func (h *WorkOrderSessionHandler) Open(c *gin.Context) {
	actor := currentActor(c)
	snap, err := h.usecase.Open(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		h.log.Info("[work_order][handler] open rejected", zap.String("job_id", c.Param("id")), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(snap, actor.Role))
}

func (h *WorkOrderSessionHandler) Get(c *gin.Context) {
	actor := currentActor(c)
	snap, err := h.usecase.Get(c.Param("session_id"), actor)
	h.respond(c, snap, err)
}

func (h *WorkOrderSessionHandler) Discard(c *gin.Context) {
	if err := h.usecase.Discard(c.Param("session_id"), currentActor(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkOrderSessionHandler) AddService(c *gin.Context) {
	var payload request.AddServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	actor := currentActor(c)
	sid := c.Param("session_id")
	var (
		snap usecase.SessionSnapshot
		err  error
	)
	if id := strings.TrimSpace(payload.CatalogServiceID); id != "" {
		snap, err = h.usecase.AddCatalogService(c.Request.Context(), sid, id, actor)
	} else {
		snap, err = h.usecase.AddCustomService(sid, payload.Name, actor)
	}
	h.respond(c, snap, err)
}

func (h *WorkOrderSessionHandler) UpdateService(c *gin.Context) {
	var payload request.WorkItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	snap, err := h.usecase.UpdateWorkItem(c.Param("session_id"), c.Param("item_id"), payload.ToPatch(), currentActor(c))
	h.respond(c, snap, err)
}

func (h *WorkOrderSessionHandler) RemoveService(c *gin.Context) {
	snap, err := h.usecase.RemoveWorkItem(c.Param("session_id"), c.Param("item_id"), currentActor(c))
	h.respond(c, snap, err)
}

func (h *WorkOrderSessionHandler) AddFinding(c *gin.Context) {
	var payload request.AddFindingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	snap, err := h.usecase.AddFinding(c.Param("session_id"), payload.Description, currentActor(c))
	h.respond(c, snap, err)
}

func (h *WorkOrderSessionHandler) UpdateFinding(c *gin.Context) {
	var payload request.FindingPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	snap, err := h.usecase.UpdateFinding(c.Param("session_id"), c.Param("item_id"), payload.ToPatch(), currentActor(c))
	h.respond(c, snap, err)
}

func (h *WorkOrderSessionHandler) RemoveFinding(c *gin.Context) {
	snap, err := h.usecase.RemoveFinding(c.Param("session_id"), c.Param("item_id"), currentActor(c))
	h.respond(c, snap, err)
}

func (h *WorkOrderSessionHandler) AddPart(c *gin.Context) {
	var payload request.AddPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	actor := currentActor(c)
	sid := c.Param("session_id")
	var (
		snap usecase.SessionSnapshot
		err  error
	)
	if id := strings.TrimSpace(payload.CatalogPartID); id != "" {
		snap, err = h.usecase.AddCatalogPart(c.Request.Context(), sid, id, actor)
	} else {
		snap, err = h.usecase.AddCustomPart(sid, payload.Name, actor)
	}
	h.respond(c, snap, err)
}

func (h *WorkOrderSessionHandler) UpdatePart(c *gin.Context) {
	var payload request.PartPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	snap, err := h.usecase.UpdatePart(c.Param("session_id"), c.Param("item_id"), payload.ToPatch(), currentActor(c))
	h.respond(c, snap, err)
}

func (h *WorkOrderSessionHandler) RemovePart(c *gin.Context) {
	snap, err := h.usecase.RemovePart(c.Param("session_id"), c.Param("item_id"), currentActor(c))
	h.respond(c, snap, err)
}

func (h *WorkOrderSessionHandler) SetDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	snap, err := h.usecase.SetDiscount(c.Param("session_id"), *payload.DiscountPercent, currentActor(c))
	h.respond(c, snap, err)
}

// Finalize saves the draft onto the job and closes the session. On failure the
// draft is kept so the client can retry.
func (h *WorkOrderSessionHandler) Finalize(c *gin.Context) {
	actor := currentActor(c)
	job, err := h.usecase.Finalize(c.Request.Context(), c.Param("session_id"), actor)
	if err != nil {
		h.log.Warn("[work_order][handler] finalize failed", zap.String("session_id", c.Param("session_id")), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobWorkOrder(job, actor.Role))
}

func (h *WorkOrderSessionHandler) respond(c *gin.Context, snap usecase.SessionSnapshot, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(snap, currentActor(c).Role))
}
