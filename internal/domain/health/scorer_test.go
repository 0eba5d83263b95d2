package health

import (
	"testing"
	"time"

	"mecanica_jobs/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func minutes(v int) *int { return &v }

func job(status entities.JobStatus, age, idle time.Duration) entities.Job {
	return entities.Job{
		ID:        "job-" + string(status),
		Status:    status,
		CreatedAt: now.Add(-age),
		UpdatedAt: now.Add(-idle),
	}
}

func TestScore_OverduePrecedence(t *testing.T) {
	j := job(entities.JobStatusInProgress, 48*time.Hour, time.Hour)
	j.EstimatedDuration = minutes(24 * 60)

	r := Score(j, now)
	assert.Equal(t, Overdue, r.Health)
	assert.Equal(t, 2, r.DaysOld)
	assert.Equal(t, 1, r.DaysOverdue)
}

func TestScore_Thresholds(t *testing.T) {
	cases := []struct {
		name   string
		status entities.JobStatus
		age    time.Duration
		want   Level
	}{
		{"not started fresh", entities.JobStatusNotStarted, 24 * time.Hour, Healthy},
		{"not started warning", entities.JobStatusNotStarted, 3 * 24 * time.Hour, Warning},
		{"not started critical", entities.JobStatusNotStarted, 7 * 24 * time.Hour, Critical},
		{"in progress warning", entities.JobStatusInProgress, 5 * 24 * time.Hour, Warning},
		{"in progress critical", entities.JobStatusInProgress, 10 * 24 * time.Hour, Critical},
		{"waiting below warning", entities.JobStatusWaitingForParts, 6 * 24 * time.Hour, Healthy},
		{"waiting critical", entities.JobStatusWaitingForParts, 14 * 24 * time.Hour, Critical},
		{"ready falls back to in progress", entities.JobStatusReadyForPickup, 5 * 24 * time.Hour, Warning},
		{"completed always healthy", entities.JobStatusCompleted, 90 * 24 * time.Hour, Healthy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Score(job(tc.status, tc.age, 0), now)
			assert.Equal(t, tc.want, r.Health, r.Reason)
		})
	}
}

func TestScore_PartialDayCountsAsOne(t *testing.T) {
	r := Score(job(entities.JobStatusNotStarted, 3*time.Hour, 0), now)
	assert.Equal(t, 1, r.DaysOld)

	r = Score(job(entities.JobStatusNotStarted, 2*24*time.Hour+time.Minute, 0), now)
	assert.Equal(t, 3, r.DaysOld)
	assert.Equal(t, Warning, r.Health)
}

func TestScore_Inactivity(t *testing.T) {
	j := job(entities.JobStatusWaitingForParts, 6*24*time.Hour, 5*24*time.Hour)
	r := Score(j, now)
	assert.Equal(t, Warning, r.Health)
	assert.True(t, r.IsInactive)
	assert.Equal(t, j.UpdatedAt, r.LastUpdate)

	done := job(entities.JobStatusCompleted, 30*24*time.Hour, 30*24*time.Hour)
	r = Score(done, now)
	assert.False(t, r.IsInactive)
	assert.Equal(t, Healthy, r.Health)
}

func TestScore_Idempotent(t *testing.T) {
	j := job(entities.JobStatusInProgress, 6*24*time.Hour, 2*time.Hour)
	j.EstimatedDuration = minutes(3 * 24 * 60)
	assert.Equal(t, Score(j, now), Score(j, now))
}

func TestSortJobsByHealth(t *testing.T) {
	healthy := job(entities.JobStatusInProgress, time.Hour, 0)
	healthy.ID = "healthy"
	warning := job(entities.JobStatusInProgress, 6*24*time.Hour, 0)
	warning.ID = "warning"
	critical := job(entities.JobStatusNotStarted, 8*24*time.Hour, 0)
	critical.ID = "critical"
	overdue := job(entities.JobStatusInProgress, 3*24*time.Hour, 0)
	overdue.EstimatedDuration = minutes(60)
	overdue.ID = "overdue"
	healthy2 := healthy
	healthy2.ID = "healthy-2"

	sorted := SortJobsByHealth([]entities.Job{healthy, warning, healthy2, critical, overdue}, now)
	require.Len(t, sorted, 5)

	ids := make([]string, len(sorted))
	for i, j := range sorted {
		ids[i] = j.ID
	}
	assert.Equal(t, []string{"overdue", "critical", "warning", "healthy", "healthy-2"}, ids)

	last := 5
	for _, j := range sorted {
		p := Priority(Score(j, now).Health)
		assert.LessOrEqual(t, p, last)
		last = p
	}
}

func TestFilterJobsByHealth(t *testing.T) {
	jobs := []entities.Job{
		job(entities.JobStatusNotStarted, 8*24*time.Hour, 0),
		job(entities.JobStatusInProgress, time.Hour, 0),
	}
	assert.Len(t, FilterJobsByHealth(jobs, Critical, now), 1)
	assert.Len(t, FilterJobsByHealth(jobs, Overdue, now), 0)
}
