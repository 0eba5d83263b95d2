package interfaces

import (
	"context"

	"mecanica_jobs/internal/domain/entities"
)

//go:generate mockgen -source=inventory_interface.go -destination=mocks/mock_inventory.go -package=mock_interfaces

// IInventoryAdjuster moves stock counters for catalog parts.
//
// DeductStockForJob keeps going when one part fails and returns the combined error.
// LookupPartByNumber returns a zero-value part when nothing matches.
type IInventoryAdjuster interface {
	DeductStockForJob(ctx context.Context, parts []entities.StockDeduction, jobID, actorID string) error
	AdjustStock(ctx context.Context, partID string, delta int, reason, actorID string, meta map[string]string) error
	LookupPartByNumber(ctx context.Context, number string) (entities.CatalogPart, error)
}
