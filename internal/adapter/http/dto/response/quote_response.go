package response

import (
	"time"

	"mecanica_jobs/internal/domain/entities"
)

type QuoteResponse struct {
	ID              string    `json:"id"`
	JobID           string    `json:"job_id"`
	LaborSubtotal   float64   `json:"labor_subtotal"`
	PartsSubtotal   float64   `json:"parts_subtotal"`
	DiscountPercent float64   `json:"discount_percent"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		JobID:           q.JobID,
		LaborSubtotal:   q.LaborSubtotal,
		PartsSubtotal:   q.PartsSubtotal,
		DiscountPercent: q.DiscountPercent,
		Price:           q.Price,
		Status:          string(q.Status),
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}
