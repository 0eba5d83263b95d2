package interfaces

import (
	"context"

	"mecanica_jobs/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository.go -package=mock_interfaces

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The quote id equals the job id, so there is at most one quote per job.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Quote, error)
	UpdateStatusByJobID(ctx context.Context, jobID string, status entities.QuoteStatus) (entities.Quote, error)
	UpdatePricingByJobID(ctx context.Context, jobID string, q entities.Quote) (entities.Quote, error)
}
