package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/domain/workorder"
	"mecanica_jobs/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrQuoteAlreadyDecided = errors.New("quote already approved or rejected")
	ErrInvalidQuoteValue   = errors.New("invalid quote value")
)

// IQuoteUseCase exposes the customer quote derived from a finalized work order:
//   - SyncFromWorkOrder => create or re-price the pending quote
//   - ApproveByJobID / RejectByJobID => customer decision
type IQuoteUseCase interface {
	SyncFromWorkOrder(ctx context.Context, jobID string, doc *entities.WorkOrderDocument) (entities.Quote, error)
	ApproveByJobID(ctx context.Context, jobID string) (entities.Quote, error)
	RejectByJobID(ctx context.Context, jobID string) (entities.Quote, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) SyncFromWorkOrder(ctx context.Context, jobID string, doc *entities.WorkOrderDocument) (entities.Quote, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Quote{}, ErrInvalidJobID
	}
	if doc == nil {
		return entities.Quote{}, ErrInvalidQuoteValue
	}
	totals := workorder.ComputeTotals(doc)
	if totals.GrandTotal <= 0 {
		return entities.Quote{}, ErrInvalidQuoteValue
	}

	existing, err := u.repo.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:              jobID,
		JobID:           jobID,
		LaborSubtotal:   totals.LaborSubtotal,
		PartsSubtotal:   totals.PartsSubtotal,
		DiscountPercent: totals.DiscountPercent,
		Price:           totals.GrandTotal,
		Status:          entities.QuoteStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if existing.ID == "" {
		return u.repo.Create(ctx, q)
	}
	if existing.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrQuoteAlreadyDecided
	}

	updated, err := u.repo.UpdatePricingByJobID(ctx, jobID, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) ApproveByJobID(ctx context.Context, jobID string) (entities.Quote, error) {
	return u.decide(ctx, jobID, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) RejectByJobID(ctx context.Context, jobID string) (entities.Quote, error) {
	return u.decide(ctx, jobID, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) decide(ctx context.Context, jobID string, status entities.QuoteStatus) (entities.Quote, error) {
	current, err := u.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrQuoteAlreadyDecided
	}

	updated, err := u.repo.UpdateStatusByJobID(ctx, current.JobID, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) GetByJobID(ctx context.Context, jobID string) (entities.Quote, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Quote{}, ErrInvalidJobID
	}

	q, err := u.repo.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
