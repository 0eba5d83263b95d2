package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/domain/health"
	"mecanica_jobs/internal/domain/lifecycle"
	"mecanica_jobs/internal/domain/workorder"
	"mecanica_jobs/internal/usecase/interfaces"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrInvalidJobID        = errors.New("invalid job id")
	ErrInvalidActor        = errors.New("invalid actor id")
	ErrInvalidJobInput     = errors.New("invalid job input")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrJobCompleted        = errors.New("job is complete")
	ErrPartsNeededRequired = errors.New("part categories are required to wait for parts")
	ErrCompletionRequired  = errors.New("completion confirmation is required to complete a job")
	ErrSubmissionInFlight  = errors.New("a submission is already in progress")
	ErrWorkOrderFrozen     = errors.New("work order can no longer be changed")
	ErrVersionConflict     = interfaces.ErrVersionConflict
)

const jobNumberAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// TransitionError is returned when the lifecycle rejects a status change.
// It matches ErrInvalidTransition, and ErrJobCompleted when the job is complete.
type TransitionError struct {
	From   entities.JobStatus
	To     entities.JobStatus
	Reason string
}

func (e *TransitionError) Error() string { return e.Reason }

func (e *TransitionError) Unwrap() []error {
	if lifecycle.IsTerminal(e.From) {
		return []error{ErrInvalidTransition, ErrJobCompleted}
	}
	return []error{ErrInvalidTransition}
}

// JobWithHealth is a job annotated for display. Health is computed on read and never stored.
type JobWithHealth struct {
	Job    entities.Job
	Health health.Report
}

type CreateJobInput struct {
	SubmissionKey     string
	VehicleID         string
	VehiclePlate      string
	CustomerID        string
	CustomerName      string
	ServiceType       string
	Description       string
	Priority          entities.JobPriority
	ScheduledDate     *time.Time
	EstimatedDuration *int
}

type StatusChangeInput struct {
	JobID       string
	Status      entities.JobStatus
	Version     int64
	PartsNeeded *entities.PartsNeededRequest
	Completion  *entities.CompletionConfirmation
}

type ListJobsFilter struct {
	Status entities.JobStatus
	Health health.Level
}

// IJobUseCase coordinates the job lifecycle: intake, status changes, assignment
// and work-order saves.
type IJobUseCase interface {
	CreateJob(ctx context.Context, in CreateJobInput, actor entities.Actor) (entities.Job, error)
	GetJob(ctx context.Context, id string) (JobWithHealth, error)
	ListJobs(ctx context.Context, filter ListJobsFilter) ([]JobWithHealth, error)
	AllowedTransitions(ctx context.Context, id string) ([]entities.JobStatus, error)
	ApplyStatusChange(ctx context.Context, in StatusChangeInput, actor entities.Actor) (entities.Job, error)
	AssignMechanic(ctx context.Context, jobID, mechanicID, mechanicName string, version int64, actor entities.Actor) (entities.Job, error)
	SaveWorkOrder(ctx context.Context, jobID string, doc *entities.WorkOrderDocument, version int64, actor entities.Actor) (entities.Job, error)
	WatchJob(ctx context.Context, id string, onChange func(JobWithHealth)) (func(), error)
}

type JobUseCase struct {
	repo      interfaces.IJobRepository
	inventory interfaces.IInventoryAdjuster
	notifier  interfaces.INotificationDispatcher
	log       *zap.Logger

	now      func() time.Time
	async    func(func())
	inflight sync.Map
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, inventory interfaces.IInventoryAdjuster, notifier interfaces.INotificationDispatcher, log *zap.Logger) *JobUseCase {
	return &JobUseCase{
		repo:      repo,
		inventory: inventory,
		notifier:  notifier,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		async:     func(f func()) { go f() },
	}
}

func (u *JobUseCase) CreateJob(ctx context.Context, in CreateJobInput, actor entities.Actor) (entities.Job, error) {
	actorID := strings.TrimSpace(actor.ID)
	if actorID == "" {
		return entities.Job{}, ErrInvalidActor
	}
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.ServiceType = strings.TrimSpace(in.ServiceType)
	if in.VehicleID == "" {
		return entities.Job{}, fmt.Errorf("%w: vehicle_id is required", ErrInvalidJobInput)
	}
	if in.ServiceType == "" {
		return entities.Job{}, fmt.Errorf("%w: service_type is required", ErrInvalidJobInput)
	}
	if in.Priority == "" {
		in.Priority = entities.JobPriorityNormal
	}
	if !in.Priority.Valid() {
		return entities.Job{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidJobInput, in.Priority)
	}
	if in.EstimatedDuration != nil && *in.EstimatedDuration <= 0 {
		return entities.Job{}, fmt.Errorf("%w: estimated_duration must be positive", ErrInvalidJobInput)
	}

	if key := strings.TrimSpace(in.SubmissionKey); key != "" {
		if _, busy := u.inflight.LoadOrStore("create:"+key, struct{}{}); busy {
			return entities.Job{}, ErrSubmissionInFlight
		}
		defer u.inflight.Delete("create:" + key)
	}

	now := u.now()
	job := entities.Job{
		ID:                uuid.NewString(),
		JobNumber:         "JOB-" + gonanoid.MustGenerate(jobNumberAlphabet, 8),
		Status:            entities.JobStatusNotStarted,
		Priority:          in.Priority,
		ServiceType:       in.ServiceType,
		Description:       strings.TrimSpace(in.Description),
		CreatedAt:         now,
		UpdatedAt:         now,
		ScheduledDate:     in.ScheduledDate,
		EstimatedDuration: in.EstimatedDuration,
		VehicleID:         in.VehicleID,
		VehiclePlate:      strings.TrimSpace(in.VehiclePlate),
		CustomerID:        strings.TrimSpace(in.CustomerID),
		CustomerName:      strings.TrimSpace(in.CustomerName),
		CreatedBy:         actorID,
		Version:           1,
	}

	created, err := u.repo.Create(ctx, job, actorID)
	if err != nil {
		u.log.Error("[job][usecase] create failed", zap.String("job_number", job.JobNumber), zap.Error(err))
		return entities.Job{}, err
	}
	u.log.Info("[job][usecase] job created", zap.String("job_id", created.ID), zap.String("job_number", created.JobNumber))
	return created, nil
}

func (u *JobUseCase) GetJob(ctx context.Context, id string) (JobWithHealth, error) {
	job, err := u.load(ctx, id)
	if err != nil {
		return JobWithHealth{}, err
	}
	return JobWithHealth{Job: job, Health: health.Score(job, u.now())}, nil
}

func (u *JobUseCase) ListJobs(ctx context.Context, filter ListJobsFilter) ([]JobWithHealth, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()

	if filter.Status != "" {
		kept := jobs[:0]
		for _, j := range jobs {
			if j.Status == filter.Status {
				kept = append(kept, j)
			}
		}
		jobs = kept
	}
	if filter.Health != "" {
		jobs = health.FilterJobsByHealth(jobs, filter.Health, now)
	}

	sorted := health.SortJobsByHealth(jobs, now)
	out := make([]JobWithHealth, len(sorted))
	for i, j := range sorted {
		out[i] = JobWithHealth{Job: j, Health: health.Score(j, now)}
	}
	return out, nil
}

func (u *JobUseCase) AllowedTransitions(ctx context.Context, id string) ([]entities.JobStatus, error) {
	job, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return lifecycle.AllowedNextStatuses(job.Status), nil
}

// ApplyStatusChange validates the change with the lifecycle before anything is
// written. Entering waiting_for_parts requires part categories, merged by id
// with those already recorded; entering completed requires a confirmation, which
// reconciles the work order and deducts the consumed parts from stock.
func (u *JobUseCase) ApplyStatusChange(ctx context.Context, in StatusChangeInput, actor entities.Actor) (entities.Job, error) {
	actorID := strings.TrimSpace(actor.ID)
	if actorID == "" {
		return entities.Job{}, ErrInvalidActor
	}
	job, err := u.load(ctx, in.JobID)
	if err != nil {
		return entities.Job{}, err
	}

	if d := lifecycle.Evaluate(job.Status, in.Status); !d.Allowed {
		u.log.Info("[job][usecase] transition rejected",
			zap.String("job_id", job.ID), zap.String("from", string(job.Status)), zap.String("to", string(in.Status)))
		return entities.Job{}, &TransitionError{From: job.Status, To: in.Status, Reason: d.Reason}
	}

	version := in.Version
	if version == 0 {
		version = job.Version
	}
	now := u.now()
	status := in.Status
	upd := entities.JobUpdate{Status: &status}

	switch in.Status {
	case entities.JobStatusInProgress:
		if job.WorkOrderData == nil {
			doc := workorder.NewComposer(nil, now).Document()
			stage := workorder.InferStage(doc)
			upd.WorkOrderData = doc
			upd.WorkOrderStage = &stage
		}
	case entities.JobStatusWaitingForParts:
		if in.PartsNeeded == nil || len(in.PartsNeeded.Categories) == 0 {
			return entities.Job{}, ErrPartsNeededRequired
		}
		merged := mergePartCategories(job.PartsNeeded, in.PartsNeeded.Categories)
		if len(merged) == 0 {
			return entities.Job{}, ErrPartsNeededRequired
		}
		upd.PartsNeeded = merged
		if notes := strings.TrimSpace(in.PartsNeeded.Notes); notes != "" {
			upd.PartsNeededNotes = &notes
		}
	case entities.JobStatusCompleted:
		if job.Status == entities.JobStatusCompleted {
			return job, nil
		}
		if in.Completion == nil {
			return entities.Job{}, ErrCompletionRequired
		}
		upd.CompletedAt = &now
		notes := strings.TrimSpace(in.Completion.Notes)
		upd.CompletionNotes = &notes
		if job.WorkOrderData != nil {
			doc := workorder.Reconcile(job.WorkOrderData, *in.Completion, now)
			stage := workorder.InferStage(doc)
			upd.WorkOrderData = doc
			upd.WorkOrderStage = &stage
		}
	}

	if job.Status == in.Status && upd.PartsNeeded == nil {
		return job, nil
	}

	updated, err := u.commit(ctx, job.ID, upd, version, actorID)
	if err != nil {
		return entities.Job{}, err
	}
	u.log.Info("[job][usecase] status changed",
		zap.String("job_id", updated.ID), zap.String("from", string(job.Status)), zap.String("to", string(updated.Status)),
		zap.Int64("version", updated.Version))

	switch updated.Status {
	case entities.JobStatusCompleted:
		u.deductInventory(ctx, updated, actorID)
		summary := fmt.Sprintf("Job %s completed", updated.JobNumber)
		u.notify(ctx, "completed", updated.ID, func(ctx context.Context) error {
			return u.notifier.NotifyJobCompleted(ctx, updated.ID, summary, actorID)
		})
	case entities.JobStatusWaitingForParts:
		summary := fmt.Sprintf("Job %s waiting for parts: %s", updated.JobNumber, categoryNames(updated.PartsNeeded))
		u.notify(ctx, "parts_needed", updated.ID, func(ctx context.Context) error {
			return u.notifier.NotifyPartsNeeded(ctx, updated.ID, summary, actorID)
		})
	}
	return updated, nil
}

func (u *JobUseCase) AssignMechanic(ctx context.Context, jobID, mechanicID, mechanicName string, version int64, actor entities.Actor) (entities.Job, error) {
	actorID := strings.TrimSpace(actor.ID)
	if actorID == "" {
		return entities.Job{}, ErrInvalidActor
	}
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return entities.Job{}, fmt.Errorf("%w: mechanic_id is required", ErrInvalidJobInput)
	}
	job, err := u.load(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.Status == entities.JobStatusCompleted {
		return entities.Job{}, ErrJobCompleted
	}
	if version == 0 {
		version = job.Version
	}

	now := u.now()
	name := strings.TrimSpace(mechanicName)
	updated, err := u.commit(ctx, job.ID, entities.JobUpdate{
		AssignedMechanicID:   &mechanicID,
		AssignedMechanicName: &name,
		AssignedAt:           &now,
	}, version, actorID)
	if err != nil {
		return entities.Job{}, err
	}

	summary := fmt.Sprintf("Job %s assigned to %s", updated.JobNumber, firstNonEmpty(name, mechanicID))
	u.notify(ctx, "assigned", updated.ID, func(ctx context.Context) error {
		return u.notifier.NotifyJobAssigned(ctx, updated.ID, summary, actorID)
	})
	return updated, nil
}

// SaveWorkOrder stores a finalized work order on the job. Totals and stage are
// recomputed from the document. A job waiting for parts goes back to
// in_progress when the save strikes out the last part its work order listed;
// a job whose work order never listed parts keeps waiting.
func (u *JobUseCase) SaveWorkOrder(ctx context.Context, jobID string, doc *entities.WorkOrderDocument, version int64, actor entities.Actor) (entities.Job, error) {
	actorID := strings.TrimSpace(actor.ID)
	if actorID == "" {
		return entities.Job{}, ErrInvalidActor
	}
	if doc == nil {
		return entities.Job{}, fmt.Errorf("%w: work order is required", ErrInvalidJobInput)
	}
	job, err := u.load(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.Status == entities.JobStatusCompleted {
		return entities.Job{}, ErrWorkOrderFrozen
	}
	if version == 0 {
		version = job.Version
	}

	doc = doc.Clone()
	workorder.Stamp(doc)
	stage := workorder.InferStage(doc)
	upd := entities.JobUpdate{WorkOrderData: doc, WorkOrderStage: &stage}

	if job.Status == entities.JobStatusWaitingForParts &&
		workorder.HasActiveParts(job.WorkOrderData) && !workorder.HasActiveParts(doc) &&
		lifecycle.IsValidTransition(job.Status, entities.JobStatusInProgress) {
		back := entities.JobStatusInProgress
		upd.Status = &back
		u.log.Info("[job][usecase] no parts left; back to in_progress", zap.String("job_id", job.ID))
	}

	updated, err := u.commit(ctx, job.ID, upd, version, actorID)
	if err != nil {
		return entities.Job{}, err
	}
	u.log.Info("[job][usecase] work order saved",
		zap.String("job_id", updated.ID), zap.Int("stage", stage), zap.Float64("grand_total", doc.GrandTotal))
	return updated, nil
}

func (u *JobUseCase) WatchJob(ctx context.Context, id string, onChange func(JobWithHealth)) (func(), error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.Subscribe(ctx, id, func(j entities.Job) {
		onChange(JobWithHealth{Job: j, Health: health.Score(j, u.now())})
	})
}

func (u *JobUseCase) load(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

// commit writes upd and returns the job as stored, never the local guess.
func (u *JobUseCase) commit(ctx context.Context, id string, upd entities.JobUpdate, version int64, actorID string) (entities.Job, error) {
	updated, err := u.repo.Update(ctx, id, upd, version, actorID)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.log.Warn("[job][usecase] version conflict", zap.String("job_id", id), zap.Int64("version", version))
		} else {
			u.log.Error("[job][usecase] update failed", zap.String("job_id", id), zap.Error(err))
		}
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}

// deductInventory takes consumed parts out of stock. Parts without a catalog
// reference are looked up by part number; parts that resolve to nothing are
// skipped. Failures are logged and never fail the completion.
func (u *JobUseCase) deductInventory(ctx context.Context, job entities.Job, actorID string) {
	if u.inventory == nil {
		return
	}
	parts := workorder.ConsumedParts(job.WorkOrderData)
	deductions := make([]entities.StockDeduction, 0, len(parts))
	for _, p := range parts {
		partID := p.CatalogPartID
		if partID == "" && p.PartNumber != "" {
			found, err := u.inventory.LookupPartByNumber(ctx, p.PartNumber)
			if err != nil {
				u.log.Warn("[job][inventory] part lookup failed; skipped",
					zap.String("job_id", job.ID), zap.String("part_number", p.PartNumber), zap.Error(err))
				continue
			}
			partID = found.ID
		}
		if partID == "" {
			u.log.Warn("[job][inventory] part has no catalog match; skipped",
				zap.String("job_id", job.ID), zap.String("part", p.Name), zap.String("part_number", p.PartNumber))
			continue
		}
		deductions = append(deductions, entities.StockDeduction{PartID: partID, Quantity: p.Quantity})
	}
	if len(deductions) == 0 {
		return
	}
	if err := u.inventory.DeductStockForJob(ctx, deductions, job.ID, actorID); err != nil {
		u.log.Warn("[job][inventory] stock deduction incomplete", zap.String("job_id", job.ID), zap.Error(err))
		return
	}
	u.log.Info("[job][inventory] stock deducted", zap.String("job_id", job.ID), zap.Int("parts", len(deductions)))
}

// notify runs a notification without holding up the caller.
func (u *JobUseCase) notify(ctx context.Context, kind, jobID string, send func(context.Context) error) {
	if u.notifier == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	u.async(func() {
		if err := send(ctx); err != nil {
			u.log.Warn("[job][notify] dispatch failed", zap.String("kind", kind), zap.String("job_id", jobID), zap.Error(err))
		}
	})
}

// mergePartCategories unions categories by id, keeping the first occurrence.
func mergePartCategories(existing, incoming []entities.PartCategory) []entities.PartCategory {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]entities.PartCategory, 0, len(existing)+len(incoming))
	for _, c := range append(append([]entities.PartCategory{}, existing...), incoming...) {
		c.ID = strings.TrimSpace(c.ID)
		if c.ID == "" || !seen.Add(c.ID) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func categoryNames(cats []entities.PartCategory) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = firstNonEmpty(c.Name, c.ID)
	}
	return strings.Join(names, ", ")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
