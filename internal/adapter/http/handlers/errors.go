package handlers

import (
	"errors"
	"net/http"

	"mecanica_jobs/internal/domain/workorder"
	"mecanica_jobs/internal/usecase"
	"mecanica_jobs/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapError(err error) *pkg.AppError {
	var transition *usecase.TransitionError
	switch {
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainError("VERSION_CONFLICT", "The job was changed by someone else, reload and retry", err, http.StatusConflict).AsRetryable()
	case errors.Is(err, usecase.ErrWorkOrderChanged):
		return pkg.NewDomainError("WORK_ORDER_CHANGED", "The work order was changed in another session, discard and reopen", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainError("SUBMISSION_IN_FLIGHT", "A submission is already in progress", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkOrderFrozen):
		return pkg.NewDomainError("WORK_ORDER_FROZEN", "Work order can no longer be changed", err, http.StatusConflict)
	case errors.As(err, &transition):
		return pkg.NewDomainError("INVALID_TRANSITION", transition.Reason, err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPartsNeededRequired), errors.Is(err, usecase.ErrCompletionRequired):
		return pkg.NewDomainError("CONFIRMATION_REQUIRED", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainError("MISSING_ACTOR", "X-Actor-Id header is required", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJobInput),
		errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidCatalogID),
		errors.Is(err, usecase.ErrInvalidQuoteValue), errors.Is(err, workorder.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainError("JOB_NOT_FOUND", "Job not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainError("SESSION_NOT_FOUND", "Work order session not found or expired", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainError("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", err, http.StatusNotFound)
	case errors.Is(err, workorder.ErrItemNotFound):
		return pkg.NewDomainError("ITEM_NOT_FOUND", "Work order item not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainError("QUOTE_NOT_FOUND", "Quote not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionAlreadyOpen):
		return pkg.NewDomainError("SESSION_ALREADY_OPEN", "Work order is being edited in another session", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyDecided):
		return pkg.NewDomainError("QUOTE_ALREADY_DECIDED", "Quote already approved or rejected", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotOwned):
		return pkg.NewDomainError("SESSION_NOT_OWNED", "Work order session belongs to another user", err, http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
