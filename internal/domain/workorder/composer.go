// Package workorder accumulates services, diagnostic findings and parts into a
// priced work-order document for one job.
package workorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mecanica_jobs/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrValidation   = errors.New("invalid work order input")
	ErrItemNotFound = errors.New("work order item not found")
)

const (
	defaultServiceName = "Custom service"
	defaultPartName    = "Custom part"
)

// Composer is the editing state of one work order. It is owned by a single
// editing session and is not safe for concurrent use.
type Composer struct {
	doc entities.WorkOrderDocument
}

// NewComposer starts from an empty document, or from a copy of existing when the
// job already has one. A previously finalized document is reopened as a draft.
func NewComposer(existing *entities.WorkOrderDocument, now time.Time) *Composer {
	c := &Composer{}
	if existing != nil {
		c.doc = *existing.Clone()
		c.doc.CompletedAt = nil
		c.doc.CompletedBy = ""
	} else {
		c.doc = entities.WorkOrderDocument{CreatedAt: now}
	}
	if c.doc.WorkItems == nil {
		c.doc.WorkItems = []entities.WorkItem{}
	}
	if c.doc.Findings == nil {
		c.doc.Findings = []entities.Finding{}
	}
	if c.doc.Parts == nil {
		c.doc.Parts = []entities.Part{}
	}
	Stamp(&c.doc)
	return c
}

// AddServiceFromCatalog adds a labor line priced from the catalog. Adding a
// service that is already listed is a no-op and returns false.
func (c *Composer) AddServiceFromCatalog(s entities.CatalogService) (entities.WorkItem, bool) {
	for _, w := range c.doc.WorkItems {
		if w.CatalogServiceID != "" && w.CatalogServiceID == s.ID {
			return w, false
		}
	}
	w := entities.WorkItem{
		ID:               uuid.NewString(),
		CatalogServiceID: s.ID,
		Name:             s.Name,
		Description:      s.Description,
		DurationHours:    s.DurationHours,
		PricePerHour:     s.PricePerHour,
	}
	if w.DurationHours <= 0 {
		w.DurationHours = 1
	}
	if s.FixedPrice != nil {
		fp := *s.FixedPrice
		w.FixedPrice = &fp
	}
	c.doc.WorkItems = append(c.doc.WorkItems, w)
	c.restamp()
	return w, true
}

// AddCustomService adds a free-text labor line.
func (c *Composer) AddCustomService(name string) entities.WorkItem {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultServiceName
	}
	w := entities.WorkItem{
		ID:            uuid.NewString(),
		Name:          name,
		DurationHours: 1,
		IsCustom:      true,
	}
	c.doc.WorkItems = append(c.doc.WorkItems, w)
	c.restamp()
	return w
}

// AddPartFromCatalog adds one unit of a catalog part. Parts out of stock are
// flagged for ordering. Adding a part that is already listed is a no-op and returns false.
func (c *Composer) AddPartFromCatalog(p entities.CatalogPart) (entities.Part, bool) {
	for _, existing := range c.doc.Parts {
		if existing.CatalogPartID != "" && existing.CatalogPartID == p.ID {
			return existing, false
		}
	}
	part := entities.Part{
		ID:            uuid.NewString(),
		CatalogPartID: p.ID,
		PartNumber:    p.PartNumber,
		Name:          p.Name,
		Quantity:      1,
		UnitPrice:     p.UnitPrice,
		NeedsOrdering: p.StockQuantity <= 0,
	}
	c.doc.Parts = append(c.doc.Parts, part)
	c.restamp()
	return part, true
}

// AddCustomPart adds a part that is not in the catalog. It is assumed
// unavailable until someone says otherwise.
func (c *Composer) AddCustomPart(name string) entities.Part {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultPartName
	}
	part := entities.Part{
		ID:            uuid.NewString(),
		Name:          name,
		Quantity:      1,
		IsCustom:      true,
		NeedsOrdering: true,
	}
	c.doc.Parts = append(c.doc.Parts, part)
	c.restamp()
	return part
}

func (c *Composer) AddFinding(description string) entities.Finding {
	f := entities.Finding{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(description),
		Stock:       entities.StockInStock,
	}
	c.doc.Findings = append(c.doc.Findings, f)
	c.restamp()
	return f
}

// WorkItemPatch holds the fields to change on a labor line. Nil means unchanged.
type WorkItemPatch struct {
	Name            *string
	Description     *string
	DurationHours   *float64
	FixedPrice      *float64
	ClearFixedPrice bool
	PricePerHour    *float64
	IsImmediate     *bool
}

func (c *Composer) UpdateWorkItem(id string, p WorkItemPatch) (entities.WorkItem, error) {
	i := c.indexOfWorkItem(id)
	if i < 0 {
		return entities.WorkItem{}, fmt.Errorf("%w: work item %s", ErrItemNotFound, id)
	}
	w := c.doc.WorkItems[i]
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return entities.WorkItem{}, fmt.Errorf("%w: name is required", ErrValidation)
		}
		w.Name = name
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.DurationHours != nil {
		if *p.DurationHours <= 0 {
			return entities.WorkItem{}, fmt.Errorf("%w: duration_hours must be greater than 0", ErrValidation)
		}
		w.DurationHours = *p.DurationHours
	}
	if p.PricePerHour != nil {
		if *p.PricePerHour < 0 {
			return entities.WorkItem{}, fmt.Errorf("%w: price_per_hour must not be negative", ErrValidation)
		}
		w.PricePerHour = *p.PricePerHour
	}
	switch {
	case p.ClearFixedPrice:
		w.FixedPrice = nil
	case p.FixedPrice != nil:
		if *p.FixedPrice < 0 {
			return entities.WorkItem{}, fmt.Errorf("%w: fixed_price must not be negative", ErrValidation)
		}
		fp := *p.FixedPrice
		w.FixedPrice = &fp
	}
	if p.IsImmediate != nil {
		w.IsImmediate = *p.IsImmediate
	}
	c.doc.WorkItems[i] = w
	c.restamp()
	return w, nil
}

// PartPatch holds the fields to change on a part line. Nil means unchanged.
type PartPatch struct {
	Name          *string
	PartNumber    *string
	Quantity      *int
	UnitPrice     *float64
	NeedsOrdering *bool
}

func (c *Composer) UpdatePart(id string, p PartPatch) (entities.Part, error) {
	i := c.indexOfPart(id)
	if i < 0 {
		return entities.Part{}, fmt.Errorf("%w: part %s", ErrItemNotFound, id)
	}
	part := c.doc.Parts[i]
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return entities.Part{}, fmt.Errorf("%w: name is required", ErrValidation)
		}
		part.Name = name
	}
	if p.PartNumber != nil {
		part.PartNumber = strings.TrimSpace(*p.PartNumber)
	}
	if p.Quantity != nil {
		if *p.Quantity < 1 {
			return entities.Part{}, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		part.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		if *p.UnitPrice < 0 {
			return entities.Part{}, fmt.Errorf("%w: unit_price must not be negative", ErrValidation)
		}
		part.UnitPrice = *p.UnitPrice
	}
	if p.NeedsOrdering != nil {
		part.NeedsOrdering = *p.NeedsOrdering
	}
	c.doc.Parts[i] = part
	c.restamp()
	return part, nil
}

// FindingPatch holds the fields to change on a finding. Nil means unchanged.
type FindingPatch struct {
	Description         *string
	RequiresReplacement *bool
	Stock               *entities.StockState
}

func (c *Composer) UpdateFinding(id string, p FindingPatch) (entities.Finding, error) {
	i := c.indexOfFinding(id)
	if i < 0 {
		return entities.Finding{}, fmt.Errorf("%w: finding %s", ErrItemNotFound, id)
	}
	f := c.doc.Findings[i]
	if p.Description != nil {
		f.Description = strings.TrimSpace(*p.Description)
	}
	if p.RequiresReplacement != nil {
		f.RequiresReplacement = *p.RequiresReplacement
	}
	if p.Stock != nil {
		if !p.Stock.Valid() {
			return entities.Finding{}, fmt.Errorf("%w: unknown stock state %q", ErrValidation, *p.Stock)
		}
		f.Stock = *p.Stock
	}
	c.doc.Findings[i] = f
	c.restamp()
	return f, nil
}

func (c *Composer) RemoveWorkItem(id string) error {
	i := c.indexOfWorkItem(id)
	if i < 0 {
		return fmt.Errorf("%w: work item %s", ErrItemNotFound, id)
	}
	c.doc.WorkItems = append(c.doc.WorkItems[:i], c.doc.WorkItems[i+1:]...)
	c.restamp()
	return nil
}

func (c *Composer) RemovePart(id string) error {
	i := c.indexOfPart(id)
	if i < 0 {
		return fmt.Errorf("%w: part %s", ErrItemNotFound, id)
	}
	c.doc.Parts = append(c.doc.Parts[:i], c.doc.Parts[i+1:]...)
	c.restamp()
	return nil
}

func (c *Composer) RemoveFinding(id string) error {
	i := c.indexOfFinding(id)
	if i < 0 {
		return fmt.Errorf("%w: finding %s", ErrItemNotFound, id)
	}
	c.doc.Findings = append(c.doc.Findings[:i], c.doc.Findings[i+1:]...)
	c.restamp()
	return nil
}

// SetDiscount sets the discount percentage (0-100), the only hand-edited total.
func (c *Composer) SetDiscount(percent float64) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("%w: discount_percent must be between 0 and 100", ErrValidation)
	}
	c.doc.DiscountPercent = percent
	c.restamp()
	return nil
}

// Totals recomputes the money view from the current line items.
func (c *Composer) Totals() Totals {
	return ComputeTotals(&c.doc)
}

func (c *Composer) Stage() int {
	return InferStage(&c.doc)
}

// Document returns a copy of the current draft.
func (c *Composer) Document() *entities.WorkOrderDocument {
	return c.doc.Clone()
}

// Finalized is the output of Finalize: the frozen document plus the custom
// lines that should be offered to the catalog.
type Finalized struct {
	Document        *entities.WorkOrderDocument
	PromoteServices []entities.CatalogService
	PromoteParts    []entities.CatalogPart
}

// Finalize stamps completedAt on a copy of the draft. The composer itself is left
// untouched so a failed save can be retried with the same edits.
func (c *Composer) Finalize(now time.Time, actorID string) Finalized {
	doc := c.doc.Clone()
	Stamp(doc)
	doc.CompletedAt = &now
	doc.CompletedBy = actorID

	out := Finalized{Document: doc}
	for _, w := range doc.WorkItems {
		if !w.IsCustom {
			continue
		}
		s := entities.CatalogService{
			Name:          w.Name,
			Description:   w.Description,
			DurationHours: w.DurationHours,
			PricePerHour:  w.PricePerHour,
			Active:        true,
			CreatedBy:     actorID,
			CreatedAt:     now,
		}
		if w.FixedPrice != nil {
			fp := *w.FixedPrice
			s.FixedPrice = &fp
		}
		out.PromoteServices = append(out.PromoteServices, s)
	}
	for _, p := range doc.Parts {
		if !p.IsCustom {
			continue
		}
		out.PromoteParts = append(out.PromoteParts, entities.CatalogPart{
			Name:       p.Name,
			PartNumber: p.PartNumber,
			UnitPrice:  p.UnitPrice,
			Active:     true,
			CreatedBy:  actorID,
			CreatedAt:  now,
		})
	}
	return out
}

func (c *Composer) restamp() {
	Stamp(&c.doc)
}

func (c *Composer) indexOfWorkItem(id string) int {
	for i, w := range c.doc.WorkItems {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (c *Composer) indexOfPart(id string) int {
	for i, p := range c.doc.Parts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (c *Composer) indexOfFinding(id string) int {
	for i, f := range c.doc.Findings {
		if f.ID == id {
			return i
		}
	}
	return -1
}
