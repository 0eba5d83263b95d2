package response

import (
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/domain/workorder"
	"mecanica_jobs/internal/usecase"
)

type WorkItemResponse struct {
	ID               string   `json:"id"`
	CatalogServiceID string   `json:"catalog_service_id,omitempty"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	DurationHours    float64  `json:"duration_hours"`
	FixedPrice       *float64 `json:"fixed_price,omitempty"`
	PricePerHour     *float64 `json:"price_per_hour,omitempty"`
	LinePrice        *float64 `json:"line_price,omitempty"`
	IsCustom         bool     `json:"is_custom"`
	IsImmediate      bool     `json:"is_immediate"`
}

type FindingResponse struct {
	ID                  string `json:"id"`
	Description         string `json:"description"`
	RequiresReplacement bool   `json:"requires_replacement"`
	Stock               string `json:"stock"`
	StockBadge          string `json:"stock_badge"`
	Removed             bool   `json:"removed,omitempty"`
}

type PartResponse struct {
	ID            string   `json:"id"`
	CatalogPartID string   `json:"catalog_part_id,omitempty"`
	PartNumber    string   `json:"part_number,omitempty"`
	Name          string   `json:"name"`
	Quantity      int      `json:"quantity"`
	UnitPrice     *float64 `json:"unit_price,omitempty"`
	LineTotal     *float64 `json:"line_total,omitempty"`
	IsCustom      bool     `json:"is_custom"`
	NeedsOrdering bool     `json:"needs_ordering"`
	StockBadge    string   `json:"stock_badge"`
	Removed       bool     `json:"removed,omitempty"`
}

type TotalsResponse struct {
	LaborSubtotal   float64 `json:"labor_subtotal"`
	PartsSubtotal   float64 `json:"parts_subtotal"`
	DiscountPercent float64 `json:"discount_percent"`
	GrandTotal      float64 `json:"grand_total"`
}

// WorkOrderResponse renders a work order for one role. Technicians get hours
// and stock badges; prices and totals are left out for them.
type WorkOrderResponse struct {
	WorkItems    []WorkItemResponse `json:"work_items"`
	Findings     []FindingResponse  `json:"findings"`
	Parts        []PartResponse     `json:"parts"`
	LaborHours   float64            `json:"labor_hours"`
	Totals       *TotalsResponse    `json:"totals,omitempty"`
	Stage        int                `json:"stage"`
	CreatedAt    time.Time          `json:"created_at"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
	ReconciledAt *time.Time         `json:"reconciled_at,omitempty"`
	CompletedBy  string             `json:"completed_by,omitempty"`
}

type JobWorkOrderResponse struct {
	JobID     string             `json:"job_id"`
	Version   int64              `json:"version"`
	WorkOrder *WorkOrderResponse `json:"work_order"`
}

type SessionResponse struct {
	SessionID string            `json:"session_id"`
	JobID     string            `json:"job_id"`
	Notice    string            `json:"notice,omitempty"`
	WorkOrder WorkOrderResponse `json:"work_order"`
}

func FromWorkOrder(doc *entities.WorkOrderDocument, role entities.Role) WorkOrderResponse {
	prices := workorder.PricesVisible(role)
	res := WorkOrderResponse{
		WorkItems:    make([]WorkItemResponse, 0, len(doc.WorkItems)),
		Findings:     make([]FindingResponse, 0, len(doc.Findings)),
		Parts:        make([]PartResponse, 0, len(doc.Parts)),
		LaborHours:   workorder.LaborHours(doc),
		Stage:        workorder.InferStage(doc),
		CreatedAt:    doc.CreatedAt,
		CompletedAt:  doc.CompletedAt,
		ReconciledAt: doc.ReconciledAt,
		CompletedBy:  doc.CompletedBy,
	}
	for _, w := range doc.WorkItems {
		item := WorkItemResponse{
			ID:               w.ID,
			CatalogServiceID: w.CatalogServiceID,
			Name:             w.Name,
			Description:      w.Description,
			DurationHours:    w.DurationHours,
			IsCustom:         w.IsCustom,
			IsImmediate:      w.IsImmediate,
		}
		if prices {
			item.FixedPrice = w.FixedPrice
			item.PricePerHour = ptr(w.PricePerHour)
			item.LinePrice = ptr(workorder.Round2(workorder.LaborPrice(w)))
		}
		res.WorkItems = append(res.WorkItems, item)
	}
	for _, f := range doc.Findings {
		res.Findings = append(res.Findings, FindingResponse{
			ID:                  f.ID,
			Description:         f.Description,
			RequiresReplacement: f.RequiresReplacement,
			Stock:               string(f.Stock),
			StockBadge:          string(workorder.FindingBadge(f)),
			Removed:             f.Removed,
		})
	}
	for _, p := range doc.Parts {
		item := PartResponse{
			ID:            p.ID,
			CatalogPartID: p.CatalogPartID,
			PartNumber:    p.PartNumber,
			Name:          p.Name,
			Quantity:      p.Quantity,
			IsCustom:      p.IsCustom,
			NeedsOrdering: p.NeedsOrdering,
			StockBadge:    string(workorder.PartBadge(p)),
			Removed:       p.Removed,
		}
		if prices {
			item.UnitPrice = ptr(p.UnitPrice)
			item.LineTotal = ptr(workorder.Round2(float64(p.Quantity) * p.UnitPrice))
		}
		res.Parts = append(res.Parts, item)
	}
	if prices {
		t := workorder.ComputeTotals(doc)
		res.Totals = &TotalsResponse{
			LaborSubtotal:   t.LaborSubtotal,
			PartsSubtotal:   t.PartsSubtotal,
			DiscountPercent: t.DiscountPercent,
			GrandTotal:      t.GrandTotal,
		}
	}
	return res
}

func FromJobWorkOrder(j entities.Job, role entities.Role) JobWorkOrderResponse {
	res := JobWorkOrderResponse{JobID: j.ID, Version: j.Version}
	if j.WorkOrderData != nil {
		wo := FromWorkOrder(j.WorkOrderData, role)
		res.WorkOrder = &wo
	}
	return res
}

func FromSession(s usecase.SessionSnapshot, role entities.Role) SessionResponse {
	return SessionResponse{
		SessionID: s.SessionID,
		JobID:     s.JobID,
		Notice:    s.Notice,
		WorkOrder: FromWorkOrder(s.Document, role),
	}
}

func ptr[T any](v T) *T { return &v }
