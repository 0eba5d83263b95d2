package entities

import "time"

// QuoteStatus represents the customer decision on a work-order quote.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Quote is the priced offer derived from a finalized work order.
//
// Storage model (DynamoDB):
//   - PK: id, which equals the job id (1 quote per job).
type Quote struct {
	ID              string      `json:"id"`
	JobID           string      `json:"job_id"`
	LaborSubtotal   float64     `json:"labor_subtotal"`
	PartsSubtotal   float64     `json:"parts_subtotal"`
	DiscountPercent float64     `json:"discount_percent"`
	Price           float64     `json:"price"`
	Status          QuoteStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
