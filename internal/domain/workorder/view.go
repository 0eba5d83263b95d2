package workorder

import "mecanica_jobs/internal/domain/entities"

// StockBadge is the availability marker shown instead of prices to technicians.
type StockBadge string

const (
	BadgeInStock    StockBadge = "in_stock"
	BadgeNeedsOrder StockBadge = "needs_order"
	BadgeUnknown    StockBadge = "unknown"
)

// PricesVisible reports whether role may see selling prices and totals.
func PricesVisible(role entities.Role) bool {
	return role != entities.RoleTechnician
}

func PartBadge(p entities.Part) StockBadge {
	if p.NeedsOrdering {
		return BadgeNeedsOrder
	}
	return BadgeInStock
}

func FindingBadge(f entities.Finding) StockBadge {
	switch f.Stock {
	case entities.StockInStock:
		return BadgeInStock
	case entities.StockNeedsOrder:
		return BadgeNeedsOrder
	}
	return BadgeUnknown
}

// LaborHours sums the hours of every labor line.
func LaborHours(doc *entities.WorkOrderDocument) float64 {
	if doc == nil {
		return 0
	}
	var h float64
	for _, w := range doc.WorkItems {
		h += w.DurationHours
	}
	return h
}
