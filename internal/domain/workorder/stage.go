package workorder

import "mecanica_jobs/internal/domain/entities"

const (
	StageNone       = 0
	StageStarted    = 1
	StageServices   = 2
	StageFindings   = 3
	StageParts      = 4
	StageFinalized  = 5
	StageReconciled = 6
)

// InferStage derives the documentation stage from content. It is the only stage
// computation; callers must not store stage as independent truth.
// Removing content can make the stage go back.
func InferStage(doc *entities.WorkOrderDocument) int {
	switch {
	case doc == nil:
		return StageNone
	case doc.ReconciledAt != nil:
		return StageReconciled
	case doc.CompletedAt != nil:
		return StageFinalized
	case activeParts(doc) > 0:
		return StageParts
	case activeFindings(doc) > 0:
		return StageFindings
	case len(doc.WorkItems) > 0:
		return StageServices
	default:
		return StageStarted
	}
}

func activeParts(doc *entities.WorkOrderDocument) int {
	n := 0
	for _, p := range doc.Parts {
		if !p.Removed {
			n++
		}
	}
	return n
}

func activeFindings(doc *entities.WorkOrderDocument) int {
	n := 0
	for _, f := range doc.Findings {
		if !f.Removed {
			n++
		}
	}
	return n
}

// HasActiveParts reports whether doc still lists any part that was not struck out.
func HasActiveParts(doc *entities.WorkOrderDocument) bool {
	return doc != nil && activeParts(doc) > 0
}
