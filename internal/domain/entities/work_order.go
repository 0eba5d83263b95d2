package entities

import "time"

// StockState replaces the optional "in stock" flag on findings.
type StockState string

const (
	StockInStock    StockState = "IN_STOCK"
	StockNeedsOrder StockState = "NEEDS_ORDER"
	StockUnknown    StockState = "UNKNOWN"
)

func (s StockState) Valid() bool {
	switch s {
	case StockInStock, StockNeedsOrder, StockUnknown:
		return true
	}
	return false
}

// WorkItem is a labor line. Either FixedPrice or PricePerHour prices it.
type WorkItem struct {
	ID               string   `json:"id"`
	CatalogServiceID string   `json:"catalog_service_id,omitempty"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	DurationHours    float64  `json:"duration_hours"`
	FixedPrice       *float64 `json:"fixed_price,omitempty"`
	PricePerHour     float64  `json:"price_per_hour"`
	IsCustom         bool     `json:"is_custom"`
	IsImmediate      bool     `json:"is_immediate"`
}

// Finding is a diagnostic observation. Stock only matters when RequiresReplacement is set.
type Finding struct {
	ID                  string     `json:"id"`
	Description         string     `json:"description"`
	RequiresReplacement bool       `json:"requires_replacement"`
	Stock               StockState `json:"stock"`
	Removed             bool       `json:"removed,omitempty"`
}

type Part struct {
	ID            string  `json:"id"`
	CatalogPartID string  `json:"catalog_part_id,omitempty"`
	PartNumber    string  `json:"part_number,omitempty"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	IsCustom      bool    `json:"is_custom"`
	NeedsOrdering bool    `json:"needs_ordering"`
	Removed       bool    `json:"removed,omitempty"`
}

// WorkOrderDocument is the staged, priced document attached to a Job.
//
// Subtotals and GrandTotal are stamped from the line items on every mutation;
// only DiscountPercent is set by hand.
type WorkOrderDocument struct {
	WorkItems []WorkItem `json:"work_items"`
	Findings  []Finding  `json:"findings"`
	Parts     []Part     `json:"parts"`

	LaborSubtotal   float64 `json:"labor_subtotal"`
	PartsSubtotal   float64 `json:"parts_subtotal"`
	DiscountPercent float64 `json:"discount_percent"`
	GrandTotal      float64 `json:"grand_total"`

	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	ReconciledAt *time.Time `json:"reconciled_at,omitempty"`
	CompletedBy  string     `json:"completed_by,omitempty"`
}

// Clone returns a deep copy so callers never share line-item slices.
func (d *WorkOrderDocument) Clone() *WorkOrderDocument {
	if d == nil {
		return nil
	}
	out := *d
	out.WorkItems = make([]WorkItem, len(d.WorkItems))
	for i, w := range d.WorkItems {
		if w.FixedPrice != nil {
			fp := *w.FixedPrice
			w.FixedPrice = &fp
		}
		out.WorkItems[i] = w
	}
	out.Findings = append([]Finding{}, d.Findings...)
	out.Parts = append([]Part{}, d.Parts...)
	if d.CompletedAt != nil {
		t := *d.CompletedAt
		out.CompletedAt = &t
	}
	if d.ReconciledAt != nil {
		t := *d.ReconciledAt
		out.ReconciledAt = &t
	}
	return &out
}
