// Package health classifies how at-risk a job is from its age and inactivity.
// It is display-only: nothing here mutates a job.
package health

import (
	"fmt"
	"math"
	"slices"
	"time"

	"mecanica_jobs/internal/domain/entities"
)

type Level string

const (
	Healthy  Level = "healthy"
	Warning  Level = "warning"
	Critical Level = "critical"
	Overdue  Level = "overdue"
)

// InactivityDays is how long a non-completed job may go without updates before it warns.
const InactivityDays = 5

// Thresholds are age limits in days for one status.
type Thresholds struct {
	Warning  int
	Critical int
}

const never = math.MaxInt

var thresholds = map[entities.JobStatus]Thresholds{
	entities.JobStatusNotStarted:      {Warning: 3, Critical: 7},
	entities.JobStatusInProgress:      {Warning: 5, Critical: 10},
	entities.JobStatusWaitingForParts: {Warning: 7, Critical: 14},
	entities.JobStatusCompleted:       {Warning: never, Critical: never},
}

// ThresholdsFor returns the limits for status, falling back to in_progress.
func ThresholdsFor(status entities.JobStatus) Thresholds {
	if t, ok := thresholds[status]; ok {
		return t
	}
	return thresholds[entities.JobStatusInProgress]
}

type Report struct {
	Health      Level     `json:"health"`
	Reason      string    `json:"reason"`
	DaysOld     int       `json:"days_old"`
	DaysOverdue int       `json:"days_overdue"`
	IsInactive  bool      `json:"is_inactive"`
	LastUpdate  time.Time `json:"last_update"`
}

// Score evaluates job at now. The first matching rule wins:
// overdue, critical age, warning age, inactivity, healthy.
func Score(job entities.Job, now time.Time) Report {
	daysOld := ceilDays(now.Sub(job.CreatedAt))
	lastUpdate := job.UpdatedAt
	if lastUpdate.IsZero() {
		lastUpdate = job.CreatedAt
	}
	daysIdle := ceilDays(now.Sub(lastUpdate))
	completed := job.Status == entities.JobStatusCompleted

	r := Report{
		Health:     Healthy,
		Reason:     "on track",
		DaysOld:    daysOld,
		IsInactive: !completed && daysIdle >= InactivityDays,
		LastUpdate: lastUpdate,
	}
	if completed {
		r.Reason = "job completed"
		return r
	}

	if est, ok := estimatedDays(job); ok && daysOld-est > 0 {
		r.Health = Overdue
		r.DaysOverdue = daysOld - est
		r.Reason = fmt.Sprintf("%d day(s) past the estimated duration", r.DaysOverdue)
		return r
	}

	t := ThresholdsFor(job.Status)
	switch {
	case daysOld >= t.Critical:
		r.Health = Critical
		r.Reason = fmt.Sprintf("%d days old; critical at %d for %s", daysOld, t.Critical, job.Status)
	case daysOld >= t.Warning:
		r.Health = Warning
		r.Reason = fmt.Sprintf("%d days old; warning at %d for %s", daysOld, t.Warning, job.Status)
	case r.IsInactive:
		r.Health = Warning
		r.Reason = fmt.Sprintf("no updates for %d days", daysIdle)
	}
	return r
}

// ceilDays rounds elapsed time up to whole days; a few hours count as one day.
func ceilDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

func estimatedDays(job entities.Job) (int, bool) {
	if job.EstimatedDuration == nil || *job.EstimatedDuration <= 0 {
		return 0, false
	}
	return int(math.Ceil(float64(*job.EstimatedDuration) / (24 * 60))), true
}

// Priority orders levels for sorting: overdue(4) > critical(3) > warning(2) > healthy(1).
func Priority(l Level) int {
	switch l {
	case Overdue:
		return 4
	case Critical:
		return 3
	case Warning:
		return 2
	case Healthy:
		return 1
	}
	return 0
}

// FilterJobsByHealth keeps the jobs whose health at now equals target.
func FilterJobsByHealth(jobs []entities.Job, target Level, now time.Time) []entities.Job {
	out := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if Score(j, now).Health == target {
			out = append(out, j)
		}
	}
	return out
}

// SortJobsByHealth returns a copy of jobs, worst health first. Ties keep input order.
func SortJobsByHealth(jobs []entities.Job, now time.Time) []entities.Job {
	type scored struct {
		job      entities.Job
		priority int
	}
	tmp := make([]scored, len(jobs))
	for i, j := range jobs {
		tmp[i] = scored{job: j, priority: Priority(Score(j, now).Health)}
	}
	slices.SortStableFunc(tmp, func(a, b scored) int {
		return b.priority - a.priority
	})
	out := make([]entities.Job, len(tmp))
	for i, s := range tmp {
		out[i] = s.job
	}
	return out
}
