package request

import (
	"strings"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/domain/workorder"
)

// AddServiceRequest adds a catalog service when CatalogServiceID is set and a
// custom line named Name otherwise.
type AddServiceRequest struct {
	CatalogServiceID string `json:"catalog_service_id"`
	Name             string `json:"name"`
}

// AddPartRequest adds a catalog part when CatalogPartID is set and a custom
// part named Name otherwise.
type AddPartRequest struct {
	CatalogPartID string `json:"catalog_part_id"`
	Name          string `json:"name"`
}

type AddFindingRequest struct {
	Description string `json:"description" binding:"required"`
}

type WorkItemPatchRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	DurationHours   *float64 `json:"duration_hours"`
	FixedPrice      *float64 `json:"fixed_price"`
	ClearFixedPrice bool     `json:"clear_fixed_price"`
	PricePerHour    *float64 `json:"price_per_hour"`
	IsImmediate     *bool    `json:"is_immediate"`
}

func (r WorkItemPatchRequest) ToPatch() workorder.WorkItemPatch {
	return workorder.WorkItemPatch{
		Name:            r.Name,
		Description:     r.Description,
		DurationHours:   r.DurationHours,
		FixedPrice:      r.FixedPrice,
		ClearFixedPrice: r.ClearFixedPrice,
		PricePerHour:    r.PricePerHour,
		IsImmediate:     r.IsImmediate,
	}
}

type PartPatchRequest struct {
	Name          *string  `json:"name"`
	PartNumber    *string  `json:"part_number"`
	Quantity      *int     `json:"quantity"`
	UnitPrice     *float64 `json:"unit_price"`
	NeedsOrdering *bool    `json:"needs_ordering"`
}

func (r PartPatchRequest) ToPatch() workorder.PartPatch {
	return workorder.PartPatch{
		Name:          r.Name,
		PartNumber:    r.PartNumber,
		Quantity:      r.Quantity,
		UnitPrice:     r.UnitPrice,
		NeedsOrdering: r.NeedsOrdering,
	}
}

type FindingPatchRequest struct {
	Description         *string `json:"description"`
	RequiresReplacement *bool   `json:"requires_replacement"`
	Stock               *string `json:"stock"`
}

func (r FindingPatchRequest) ToPatch() workorder.FindingPatch {
	p := workorder.FindingPatch{
		Description:         r.Description,
		RequiresReplacement: r.RequiresReplacement,
	}
	if r.Stock != nil {
		s := entities.StockState(strings.ToUpper(strings.TrimSpace(*r.Stock)))
		p.Stock = &s
	}
	return p
}

type DiscountRequest struct {
	DiscountPercent *float64 `json:"discount_percent" binding:"required"`
}
