package response

import "mecanica_jobs/internal/domain/entities"

type CatalogServiceResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	DurationHours float64  `json:"duration_hours"`
	FixedPrice    *float64 `json:"fixed_price,omitempty"`
	PricePerHour  float64  `json:"price_per_hour"`
}

type CatalogPartResponse struct {
	ID            string  `json:"id"`
	PartNumber    string  `json:"part_number,omitempty"`
	Name          string  `json:"name"`
	CategoryID    string  `json:"category_id,omitempty"`
	UnitPrice     float64 `json:"unit_price"`
	StockQuantity int     `json:"stock_quantity"`
	InStock       bool    `json:"in_stock"`
}

func FromCatalogServices(rows []entities.CatalogService) []CatalogServiceResponse {
	out := make([]CatalogServiceResponse, len(rows))
	for i, s := range rows {
		out[i] = CatalogServiceResponse{
			ID:            s.ID,
			Name:          s.Name,
			Description:   s.Description,
			DurationHours: s.DurationHours,
			FixedPrice:    s.FixedPrice,
			PricePerHour:  s.PricePerHour,
		}
	}
	return out
}

func FromCatalogParts(rows []entities.CatalogPart) []CatalogPartResponse {
	out := make([]CatalogPartResponse, len(rows))
	for i, p := range rows {
		out[i] = CatalogPartResponse{
			ID:            p.ID,
			PartNumber:    p.PartNumber,
			Name:          p.Name,
			CategoryID:    p.CategoryID,
			UnitPrice:     p.UnitPrice,
			StockQuantity: p.StockQuantity,
			InStock:       p.StockQuantity > 0,
		}
	}
	return out
}
