package workorder

import (
	"math"

	"mecanica_jobs/internal/domain/entities"
)

// Totals is the derived money view of a work order.
type Totals struct {
	LaborSubtotal   float64 `json:"labor_subtotal"`
	PartsSubtotal   float64 `json:"parts_subtotal"`
	DiscountPercent float64 `json:"discount_percent"`
	GrandTotal      float64 `json:"grand_total"`
}

// Round2 rounds to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LaborPrice is the price of one labor line: the fixed price when set, hours x rate otherwise.
func LaborPrice(w entities.WorkItem) float64 {
	if w.FixedPrice != nil {
		return *w.FixedPrice
	}
	return w.DurationHours * w.PricePerHour
}

// ComputeTotals recomputes every total from the line items. Struck-out lines are ignored.
// Cached totals on doc are never read.
func ComputeTotals(doc *entities.WorkOrderDocument) Totals {
	if doc == nil {
		return Totals{}
	}
	var labor, parts float64
	for _, w := range doc.WorkItems {
		labor += LaborPrice(w)
	}
	for _, p := range doc.Parts {
		if p.Removed {
			continue
		}
		parts += float64(p.Quantity) * p.UnitPrice
	}
	labor = Round2(labor)
	parts = Round2(parts)
	return Totals{
		LaborSubtotal:   labor,
		PartsSubtotal:   parts,
		DiscountPercent: doc.DiscountPercent,
		GrandTotal:      Round2((labor + parts) * (1 - doc.DiscountPercent/100)),
	}
}

// Stamp writes freshly computed totals onto doc.
func Stamp(doc *entities.WorkOrderDocument) {
	if doc == nil {
		return
	}
	t := ComputeTotals(doc)
	doc.LaborSubtotal = t.LaborSubtotal
	doc.PartsSubtotal = t.PartsSubtotal
	doc.GrandTotal = t.GrandTotal
}
