package handlers

import (
	"io"
	"net/http"
	"strings"

	request "mecanica_jobs/internal/adapter/http/dto/request"
	response "mecanica_jobs/internal/adapter/http/dto/response"
	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/domain/health"
	"mecanica_jobs/internal/usecase"
	"mecanica_jobs/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidStatusFilter = pkg.NewDomainErrorSimple("INVALID_FILTER", "Unknown status or health filter", http.StatusBadRequest)

// JobHandler serves the job board: intake, listing, status changes and the live feed.
type JobHandler struct {
	usecase usecase.IJobUseCase
	log     *zap.Logger
}

func NewJobHandler(uc usecase.IJobUseCase, log *zap.Logger) *JobHandler {
	return &JobHandler{usecase: uc, log: log}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), payload.ToInput(c.GetHeader(HeaderSubmissionKey)), currentActor(c))
	if err != nil {
		h.log.Warn("[job][handler] create failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// ListJobs returns the board sorted by health. Optional query filters: status, health.
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter := usecase.ListJobsFilter{
		Status: entities.JobStatus(strings.TrimSpace(c.Query("status"))),
		Health: health.Level(strings.TrimSpace(c.Query("health"))),
	}
	if !validStatusFilter(filter.Status) || !validHealthFilter(filter.Health) {
		c.JSON(errInvalidStatusFilter.HTTPStatus, errInvalidStatusFilter.ToHTTPError())
		return
	}

	jobs, err := h.usecase.ListJobs(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("[job][handler] list failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobsWithHealth(jobs))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobWithHealth(job))
}

func (h *JobHandler) GetTransitions(c *gin.Context) {
	ctx := c.Request.Context()
	job, err := h.usecase.GetJob(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	allowed, err := h.usecase.AllowedTransitions(ctx, job.Job.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransitions(job.Job.ID, job.Job.Status, allowed))
}

func (h *JobHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.ApplyStatusChange(c.Request.Context(), payload.ToInput(c.Param("id")), currentActor(c))
	if err != nil {
		h.log.Warn("[job][handler] status change failed",
			zap.String("job_id", c.Param("id")), zap.String("status", payload.Status), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) AssignMechanic(c *gin.Context) {
	var payload request.AssignMechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AssignMechanic(c.Request.Context(), c.Param("id"), payload.MechanicID, payload.MechanicName, payload.Version, currentActor(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// GetWorkOrder returns the saved work order rendered for the caller's role.
func (h *JobHandler) GetWorkOrder(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobWorkOrder(job.Job, currentActor(c).Role))
}

// WatchJob streams the job as server-sent events, once on connect and again
// on every change, until the client disconnects.
func (h *JobHandler) WatchJob(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := h.usecase.GetJob(ctx, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	updates := make(chan usecase.JobWithHealth, 8)
	stop, err := h.usecase.WatchJob(ctx, c.Param("id"), func(j usecase.JobWithHealth) {
		select {
		case updates <- j:
		case <-ctx.Done():
		}
	})
	if err != nil {
		writeError(c, err)
		return
	}
	defer stop()

	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case j := <-updates:
			c.SSEvent("job", response.FromJobWithHealth(j))
			return true
		}
	})
}

func validStatusFilter(s entities.JobStatus) bool {
	if s == "" {
		return true
	}
	for _, known := range entities.AllJobStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func validHealthFilter(l health.Level) bool {
	switch l {
	case "", health.Healthy, health.Warning, health.Critical, health.Overdue:
		return true
	}
	return false
}
