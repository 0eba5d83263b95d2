package workorder

import (
	"time"

	"mecanica_jobs/internal/domain/entities"
)

// Reconcile applies a job-completion confirmation to a finalized document and
// returns the reconciled copy. Unchecked findings and parts confirmed with a
// quantity of 0 are struck out (kept, flagged Removed); other confirmed
// quantities replace the drafted ones. A nil CheckedFindingIDs leaves findings as they are.
// A document that was never finalized gets completedAt stamped as well.
func Reconcile(doc *entities.WorkOrderDocument, conf entities.CompletionConfirmation, now time.Time) *entities.WorkOrderDocument {
	if doc == nil {
		return nil
	}
	out := doc.Clone()

	if conf.CheckedFindingIDs != nil {
		checked := make(map[string]struct{}, len(conf.CheckedFindingIDs))
		for _, id := range conf.CheckedFindingIDs {
			checked[id] = struct{}{}
		}
		for i := range out.Findings {
			if _, ok := checked[out.Findings[i].ID]; !ok {
				out.Findings[i].Removed = true
			}
		}
	}

	for i := range out.Parts {
		qty, ok := conf.PartQuantities[out.Parts[i].ID]
		if !ok {
			continue
		}
		if qty <= 0 {
			out.Parts[i].Removed = true
			continue
		}
		out.Parts[i].Quantity = qty
	}

	Stamp(out)
	if out.CompletedAt == nil {
		out.CompletedAt = &now
	}
	out.ReconciledAt = &now
	return out
}

// ConsumedParts lists the parts that were actually used, i.e. not struck out.
func ConsumedParts(doc *entities.WorkOrderDocument) []entities.Part {
	if doc == nil {
		return nil
	}
	out := make([]entities.Part, 0, len(doc.Parts))
	for _, p := range doc.Parts {
		if !p.Removed && p.Quantity > 0 {
			out = append(out, p)
		}
	}
	return out
}
