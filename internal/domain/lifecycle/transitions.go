// Package lifecycle holds the job status state machine. It is the only place
// that decides whether a status change is legal.
package lifecycle

import (
	"fmt"

	"mecanica_jobs/internal/domain/entities"
)

var transitions = map[entities.JobStatus][]entities.JobStatus{
	entities.JobStatusNotStarted: {
		entities.JobStatusInProgress,
	},
	entities.JobStatusInProgress: {
		entities.JobStatusWaitingForParts,
		entities.JobStatusReadyForPickup,
		entities.JobStatusCompleted,
	},
	entities.JobStatusWaitingForParts: {
		entities.JobStatusInProgress,
		entities.JobStatusReadyForPickup,
		entities.JobStatusCompleted,
	},
	entities.JobStatusReadyForPickup: {
		entities.JobStatusCompleted,
	},
	entities.JobStatusCompleted: {},
}

// Decision is the outcome of evaluating a proposed transition.
type Decision struct {
	Allowed bool
	Reason  string
}

// IsKnown reports whether s is one of the lifecycle statuses.
func IsKnown(s entities.JobStatus) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s entities.JobStatus) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// IsValidTransition reports whether current -> proposed is legal.
// A self-transition is always a permitted no-op.
func IsValidTransition(current, proposed entities.JobStatus) bool {
	if current == proposed {
		return true
	}
	for _, s := range transitions[current] {
		if s == proposed {
			return true
		}
	}
	return false
}

// AllowedNextStatuses enumerates the outgoing edges of current, excluding the self-loop.
func AllowedNextStatuses(current entities.JobStatus) []entities.JobStatus {
	next := transitions[current]
	out := make([]entities.JobStatus, len(next))
	copy(out, next)
	return out
}

// TransitionErrorMessage explains why current -> proposed is denied.
// It returns "" for legal transitions.
func TransitionErrorMessage(current, proposed entities.JobStatus) string {
	switch {
	case IsValidTransition(current, proposed):
		return ""
	case !IsKnown(proposed):
		return fmt.Sprintf("unknown status %q", proposed)
	case !IsKnown(current):
		return fmt.Sprintf("job has unknown status %q", current)
	case IsTerminal(current):
		return fmt.Sprintf("job is complete; it cannot move to %s", proposed)
	default:
		return fmt.Sprintf("cannot change status from %s to %s", current, proposed)
	}
}

// Evaluate combines IsValidTransition and TransitionErrorMessage.
func Evaluate(current, proposed entities.JobStatus) Decision {
	if IsValidTransition(current, proposed) {
		return Decision{Allowed: true}
	}
	return Decision{Allowed: false, Reason: TransitionErrorMessage(current, proposed)}
}
