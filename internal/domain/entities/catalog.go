package entities

import "time"

// CatalogService is an entry of the shop's labor price list.
type CatalogService struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	DurationHours float64   `json:"duration_hours"`
	FixedPrice    *float64  `json:"fixed_price,omitempty"`
	PricePerHour  float64   `json:"price_per_hour"`
	Active        bool      `json:"active"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CatalogPart is a stocked part. StockQuantity is maintained by the inventory adjuster.
type CatalogPart struct {
	ID            string    `json:"id"`
	PartNumber    string    `json:"part_number,omitempty"`
	Name          string    `json:"name"`
	CategoryID    string    `json:"category_id,omitempty"`
	UnitPrice     float64   `json:"unit_price"`
	StockQuantity int       `json:"stock_quantity"`
	Active        bool      `json:"active"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// StockMovement records one inventory adjustment.
type StockMovement struct {
	ID        string            `json:"id"`
	PartID    string            `json:"part_id"`
	Delta     int               `json:"delta"`
	Reason    string            `json:"reason"`
	JobID     string            `json:"job_id,omitempty"`
	ActorID   string            `json:"actor_id"`
	Meta      map[string]string `json:"meta,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// StockDeduction is one part consumed by a job.
type StockDeduction struct {
	PartID   string `json:"part_id"`
	Quantity int    `json:"quantity"`
}
