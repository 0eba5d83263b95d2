package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/usecase/interfaces"
	mock_interfaces "mecanica_jobs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

type jobDeps struct {
	repo      *mock_interfaces.MockIJobRepository
	inventory *mock_interfaces.MockIInventoryAdjuster
	notifier  *mock_interfaces.MockINotificationDispatcher
}

func newTestJobUseCase(t *testing.T) (*JobUseCase, jobDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := jobDeps{
		repo:      mock_interfaces.NewMockIJobRepository(ctrl),
		inventory: mock_interfaces.NewMockIInventoryAdjuster(ctrl),
		notifier:  mock_interfaces.NewMockINotificationDispatcher(ctrl),
	}
	uc := NewJobUseCase(deps.repo, deps.inventory, deps.notifier, zap.NewNop())
	uc.now = func() time.Time { return fixedNow }
	uc.async = func(f func()) { f() }
	return uc, deps
}

// applyUpdate mimics the store: apply the non-nil fields and bump the version.
func applyUpdate(j entities.Job, upd entities.JobUpdate) entities.Job {
	if upd.Status != nil {
		j.Status = *upd.Status
	}
	if upd.AssignedMechanicID != nil {
		j.AssignedMechanicID = *upd.AssignedMechanicID
	}
	if upd.AssignedMechanicName != nil {
		j.AssignedMechanicName = *upd.AssignedMechanicName
	}
	if upd.AssignedAt != nil {
		j.AssignedAt = upd.AssignedAt
	}
	if upd.CompletedAt != nil {
		j.CompletedAt = upd.CompletedAt
	}
	if upd.WorkOrderData != nil {
		j.WorkOrderData = upd.WorkOrderData
	}
	if upd.WorkOrderStage != nil {
		j.WorkOrderStage = *upd.WorkOrderStage
	}
	if upd.PartsNeeded != nil {
		j.PartsNeeded = upd.PartsNeeded
	}
	if upd.PartsNeededNotes != nil {
		j.PartsNeededNotes = *upd.PartsNeededNotes
	}
	if upd.CompletionNotes != nil {
		j.CompletionNotes = *upd.CompletionNotes
	}
	j.Version++
	return j
}

func storedJob(status entities.JobStatus) entities.Job {
	return entities.Job{
		ID:          "job-1",
		JobNumber:   "JOB-ABCD1234",
		Status:      status,
		Priority:    entities.JobPriorityNormal,
		ServiceType: "brakes",
		VehicleID:   "veh-1",
		CreatedAt:   fixedNow.Add(-24 * time.Hour),
		UpdatedAt:   fixedNow.Add(-time.Hour),
		Version:     3,
	}
}

var office = entities.Actor{ID: "user-1", Role: entities.RoleOffice}

func TestJobUseCase_CreateJob_Validations(t *testing.T) {
	uc, _ := newTestJobUseCase(t)

	if _, err := uc.CreateJob(context.Background(), CreateJobInput{VehicleID: "v", ServiceType: "s"}, entities.Actor{}); !errors.Is(err, ErrInvalidActor) {
		t.Fatalf("expected ErrInvalidActor, got %v", err)
	}
	if _, err := uc.CreateJob(context.Background(), CreateJobInput{ServiceType: "s"}, office); !errors.Is(err, ErrInvalidJobInput) {
		t.Fatalf("expected ErrInvalidJobInput for missing vehicle, got %v", err)
	}
	if _, err := uc.CreateJob(context.Background(), CreateJobInput{VehicleID: "v", ServiceType: "s", Priority: "asap"}, office); !errors.Is(err, ErrInvalidJobInput) {
		t.Fatalf("expected ErrInvalidJobInput for bad priority, got %v", err)
	}
	zero := 0
	if _, err := uc.CreateJob(context.Background(), CreateJobInput{VehicleID: "v", ServiceType: "s", EstimatedDuration: &zero}, office); !errors.Is(err, ErrInvalidJobInput) {
		t.Fatalf("expected ErrInvalidJobInput for zero duration, got %v", err)
	}
}

func TestJobUseCase_CreateJob_Success(t *testing.T) {
	uc, deps := newTestJobUseCase(t)

	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any(), "user-1").
		DoAndReturn(func(_ context.Context, j entities.Job, _ string) (entities.Job, error) {
			return j, nil
		})

	job, err := uc.CreateJob(context.Background(), CreateJobInput{VehicleID: " veh-1 ", ServiceType: "oil change"}, office)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if job.Status != entities.JobStatusNotStarted || job.Priority != entities.JobPriorityNormal {
		t.Fatalf("unexpected defaults: %+v", job)
	}
	if !strings.HasPrefix(job.JobNumber, "JOB-") || len(job.JobNumber) != 12 {
		t.Fatalf("unexpected job number %q", job.JobNumber)
	}
	if job.VehicleID != "veh-1" || job.CreatedBy != "user-1" || job.Version != 1 {
		t.Fatalf("unexpected job: %+v", job)
	}
}

func TestJobUseCase_CreateJob_SubmissionInFlight(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	entered := make(chan struct{})
	release := make(chan struct{})

	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j entities.Job, _ string) (entities.Job, error) {
			close(entered)
			<-release
			return j, nil
		}).Times(1)

	in := CreateJobInput{SubmissionKey: "form-1", VehicleID: "veh-1", ServiceType: "brakes"}
	done := make(chan error, 1)
	go func() {
		_, err := uc.CreateJob(context.Background(), in, office)
		done <- err
	}()
	<-entered

	if _, err := uc.CreateJob(context.Background(), in, office); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
}

func TestJobUseCase_GetJob_NotFound(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	deps.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Job{}, nil)

	if _, err := uc.GetJob(context.Background(), " missing "); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	if _, err := uc.GetJob(context.Background(), "  "); !errors.Is(err, ErrInvalidJobID) {
		t.Fatalf("expected ErrInvalidJobID, got %v", err)
	}
}

func TestJobUseCase_ListJobs_FiltersAndSortsByHealth(t *testing.T) {
	uc, deps := newTestJobUseCase(t)

	fresh := storedJob(entities.JobStatusInProgress)
	fresh.ID = "fresh"
	fresh.CreatedAt = fixedNow.Add(-time.Hour)
	fresh.UpdatedAt = fixedNow

	stale := storedJob(entities.JobStatusInProgress)
	stale.ID = "stale"
	stale.CreatedAt = fixedNow.Add(-20 * 24 * time.Hour)
	stale.UpdatedAt = fixedNow.Add(-10 * 24 * time.Hour)

	done := storedJob(entities.JobStatusCompleted)
	done.ID = "done"

	deps.repo.EXPECT().List(gomock.Any()).Return([]entities.Job{fresh, stale, done}, nil)

	got, err := uc.ListJobs(context.Background(), ListJobsFilter{Status: entities.JobStatusInProgress})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].Job.ID != "stale" || got[1].Job.ID != "fresh" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if !got[0].Health.IsInactive {
		t.Fatalf("expected stale job to be inactive: %+v", got[0].Health)
	}
}

func TestJobUseCase_ApplyStatusChange_TerminalRejected(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(storedJob(entities.JobStatusCompleted), nil)

	_, err := uc.ApplyStatusChange(context.Background(), StatusChangeInput{JobID: "job-1", Status: entities.JobStatusInProgress}, office)
	if !errors.Is(err, ErrInvalidTransition) || !errors.Is(err, ErrJobCompleted) {
		t.Fatalf("expected terminal transition error, got %v", err)
	}
	var te *TransitionError
	if !errors.As(err, &te) || te.From != entities.JobStatusCompleted {
		t.Fatalf("expected TransitionError, got %#v", err)
	}
}

func TestJobUseCase_ApplyStatusChange_IllegalEdge(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(storedJob(entities.JobStatusNotStarted), nil)

	_, err := uc.ApplyStatusChange(context.Background(), StatusChangeInput{JobID: "job-1", Status: entities.JobStatusReadyForPickup}, office)
	if !errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrJobCompleted) {
		t.Fatalf("expected plain transition error, got %v", err)
	}
	if err.Error() != "cannot change status from not_started to ready_for_pickup" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestJobUseCase_ApplyStatusChange_StartInitializesWorkOrder(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	job := storedJob(entities.JobStatusNotStarted)
	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	deps.repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "user-1").
		DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
			if upd.WorkOrderData == nil || upd.WorkOrderStage == nil || *upd.WorkOrderStage != 1 {
				t.Fatalf("expected an empty work order at stage 1, got %+v", upd)
			}
			return applyUpdate(job, upd), nil
		})

	updated, err := uc.ApplyStatusChange(context.Background(), StatusChangeInput{JobID: "job-1", Status: entities.JobStatusInProgress}, office)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != entities.JobStatusInProgress || updated.Version != 4 {
		t.Fatalf("unexpected job: %+v", updated)
	}
}

func TestJobUseCase_ApplyStatusChange_PartsNeededMerged(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	job := storedJob(entities.JobStatusInProgress)
	job.PartsNeeded = []entities.PartCategory{{ID: "brakes", Name: "Brakes"}}

	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	deps.repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "user-1").
		DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
			return applyUpdate(job, upd), nil
		})
	deps.notifier.EXPECT().NotifyPartsNeeded(gomock.Any(), "job-1", gomock.Any(), "user-1").Return(nil)

	updated, err := uc.ApplyStatusChange(context.Background(), StatusChangeInput{
		JobID:  "job-1",
		Status: entities.JobStatusWaitingForParts,
		PartsNeeded: &entities.PartsNeededRequest{Categories: []entities.PartCategory{
			{ID: "brakes", Name: "Brakes"},
			{ID: "electrical", Name: "Electrical"},
		}},
	}, office)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []entities.PartCategory{{ID: "brakes", Name: "Brakes"}, {ID: "electrical", Name: "Electrical"}}
	if !reflect.DeepEqual(updated.PartsNeeded, want) {
		t.Fatalf("expected %v, got %v", want, updated.PartsNeeded)
	}
}

func TestJobUseCase_ApplyStatusChange_PartsNeededRequired(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(storedJob(entities.JobStatusInProgress), nil)

	_, err := uc.ApplyStatusChange(context.Background(), StatusChangeInput{JobID: "job-1", Status: entities.JobStatusWaitingForParts}, office)
	if !errors.Is(err, ErrPartsNeededRequired) {
		t.Fatalf("expected ErrPartsNeededRequired, got %v", err)
	}
}

func TestJobUseCase_ApplyStatusChange_CompletionRequired(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(storedJob(entities.JobStatusReadyForPickup), nil)

	_, err := uc.ApplyStatusChange(context.Background(), StatusChangeInput{JobID: "job-1", Status: entities.JobStatusCompleted}, office)
	if !errors.Is(err, ErrCompletionRequired) {
		t.Fatalf("expected ErrCompletionRequired, got %v", err)
	}
}

func TestJobUseCase_ApplyStatusChange_CompleteReconcilesAndDeducts(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	job := storedJob(entities.JobStatusReadyForPickup)
	job.WorkOrderData = &entities.WorkOrderDocument{
		Findings: []entities.Finding{
			{ID: "f-1", Description: "worn pads"},
			{ID: "f-2", Description: "noisy belt"},
		},
		Parts: []entities.Part{
			{ID: "p-1", CatalogPartID: "cat-pads", Name: "Pads", Quantity: 1, UnitPrice: 40},
			{ID: "p-2", PartNumber: "BLT-9", Name: "Belt", Quantity: 1, UnitPrice: 25},
			{ID: "p-3", Name: "Shop rag", Quantity: 2, UnitPrice: 1, IsCustom: true},
			{ID: "p-4", CatalogPartID: "cat-filter", Name: "Filter", Quantity: 1, UnitPrice: 10},
		},
	}

	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	deps.repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "user-1").
		DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
			doc := upd.WorkOrderData
			if doc == nil || doc.ReconciledAt == nil {
				t.Fatalf("expected reconciled work order, got %+v", doc)
			}
			if !doc.Findings[1].Removed || doc.Findings[0].Removed {
				t.Fatalf("expected only f-2 struck out: %+v", doc.Findings)
			}
			if !doc.Parts[3].Removed || doc.Parts[0].Quantity != 2 {
				t.Fatalf("unexpected parts: %+v", doc.Parts)
			}
			if upd.WorkOrderStage == nil || *upd.WorkOrderStage != 6 {
				t.Fatalf("expected stage 6, got %v", upd.WorkOrderStage)
			}
			return applyUpdate(job, upd), nil
		})
	deps.inventory.EXPECT().LookupPartByNumber(gomock.Any(), "BLT-9").Return(entities.CatalogPart{ID: "cat-belt"}, nil)
	deps.inventory.EXPECT().DeductStockForJob(gomock.Any(), []entities.StockDeduction{
		{PartID: "cat-pads", Quantity: 2},
		{PartID: "cat-belt", Quantity: 1},
	}, "job-1", "user-1").Return(nil)
	deps.notifier.EXPECT().NotifyJobCompleted(gomock.Any(), "job-1", gomock.Any(), "user-1").Return(nil)

	updated, err := uc.ApplyStatusChange(context.Background(), StatusChangeInput{
		JobID:  "job-1",
		Status: entities.JobStatusCompleted,
		Completion: &entities.CompletionConfirmation{
			CheckedFindingIDs: []string{"f-1"},
			PartQuantities:    map[string]int{"p-1": 2, "p-4": 0},
			Notes:             " all good ",
		},
	}, office)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != entities.JobStatusCompleted || updated.CompletedAt == nil || updated.CompletionNotes != "all good" {
		t.Fatalf("unexpected job: %+v", updated)
	}
}

func TestJobUseCase_ApplyStatusChange_DeductionFailureDoesNotFailCompletion(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	job := storedJob(entities.JobStatusInProgress)
	job.WorkOrderData = &entities.WorkOrderDocument{
		Parts: []entities.Part{{ID: "p-1", CatalogPartID: "cat-pads", Name: "Pads", Quantity: 1}},
	}

	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	deps.repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "user-1").
		DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
			return applyUpdate(job, upd), nil
		})
	deps.inventory.EXPECT().DeductStockForJob(gomock.Any(), gomock.Any(), "job-1", "user-1").Return(errors.New("stock table down"))
	deps.notifier.EXPECT().NotifyJobCompleted(gomock.Any(), "job-1", gomock.Any(), "user-1").Return(errors.New("broker down"))

	updated, err := uc.ApplyStatusChange(context.Background(), StatusChangeInput{
		JobID: "job-1", Status: entities.JobStatusCompleted, Completion: &entities.CompletionConfirmation{},
	}, office)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != entities.JobStatusCompleted {
		t.Fatalf("expected completed, got %s", updated.Status)
	}
}

func TestJobUseCase_ApplyStatusChange_VersionConflict(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(storedJob(entities.JobStatusNotStarted), nil)
	deps.repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(2), "user-1").
		Return(entities.Job{}, interfaces.ErrVersionConflict)

	_, err := uc.ApplyStatusChange(context.Background(), StatusChangeInput{JobID: "job-1", Status: entities.JobStatusInProgress, Version: 2}, office)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestJobUseCase_ApplyStatusChange_SelfTransitionIsNoop(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	job := storedJob(entities.JobStatusReadyForPickup)
	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

	got, err := uc.ApplyStatusChange(context.Background(), StatusChangeInput{JobID: "job-1", Status: entities.JobStatusReadyForPickup}, office)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Version != job.Version {
		t.Fatalf("expected no write, got version %d", got.Version)
	}
}

func TestJobUseCase_AssignMechanic(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	job := storedJob(entities.JobStatusNotStarted)
	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	deps.repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "user-1").
		DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
			return applyUpdate(job, upd), nil
		})
	deps.notifier.EXPECT().NotifyJobAssigned(gomock.Any(), "job-1", "Job JOB-ABCD1234 assigned to Ana", "user-1").Return(nil)

	updated, err := uc.AssignMechanic(context.Background(), "job-1", "mech-7", "Ana", 0, office)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.AssignedMechanicID != "mech-7" || updated.AssignedAt == nil {
		t.Fatalf("unexpected job: %+v", updated)
	}
}

func TestJobUseCase_SaveWorkOrder_AutoDemotesWhenNoPartsLeft(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	job := storedJob(entities.JobStatusWaitingForParts)
	job.WorkOrderData = &entities.WorkOrderDocument{
		Parts: []entities.Part{{ID: "p-1", Name: "Pad set", Quantity: 1, UnitPrice: 40}},
	}
	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	deps.repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "user-1").
		DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
			if upd.Status == nil || *upd.Status != entities.JobStatusInProgress {
				t.Fatalf("expected demotion to in_progress, got %v", upd.Status)
			}
			return applyUpdate(job, upd), nil
		})

	doc := &entities.WorkOrderDocument{WorkItems: []entities.WorkItem{{ID: "w-1", Name: "Labor", DurationHours: 2, PricePerHour: 50}}}
	updated, err := uc.SaveWorkOrder(context.Background(), "job-1", doc, 3, office)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.WorkOrderData.GrandTotal != 100 || updated.WorkOrderStage != 2 {
		t.Fatalf("expected totals recomputed, got %+v", updated.WorkOrderData)
	}
}

func TestJobUseCase_SaveWorkOrder_NoDemoteWithoutPriorParts(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	job := storedJob(entities.JobStatusWaitingForParts)
	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	deps.repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "user-1").
		DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
			if upd.Status != nil {
				t.Fatalf("expected status untouched, got %v", *upd.Status)
			}
			return applyUpdate(job, upd), nil
		})

	doc := &entities.WorkOrderDocument{Findings: []entities.Finding{{ID: "f-1", Description: "Pads worn"}}}
	updated, err := uc.SaveWorkOrder(context.Background(), "job-1", doc, 3, office)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != entities.JobStatusWaitingForParts || updated.WorkOrderStage != 3 {
		t.Fatalf("expected job still waiting for parts, got %+v", updated)
	}
}

func TestJobUseCase_SaveWorkOrder_FrozenWhenCompleted(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	deps.repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(storedJob(entities.JobStatusCompleted), nil)

	_, err := uc.SaveWorkOrder(context.Background(), "job-1", &entities.WorkOrderDocument{}, 3, office)
	if !errors.Is(err, ErrWorkOrderFrozen) {
		t.Fatalf("expected ErrWorkOrderFrozen, got %v", err)
	}
}

func TestJobUseCase_WatchJob_AnnotatesHealth(t *testing.T) {
	uc, deps := newTestJobUseCase(t)
	deps.repo.EXPECT().Subscribe(gomock.Any(), "job-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, onChange func(entities.Job)) (func(), error) {
			onChange(storedJob(entities.JobStatusInProgress))
			return func() {}, nil
		})

	var seen []JobWithHealth
	cancel, err := uc.WatchJob(context.Background(), "job-1", func(j JobWithHealth) { seen = append(seen, j) })
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer cancel()
	if len(seen) != 1 || seen[0].Health.Health == "" {
		t.Fatalf("unexpected events: %+v", seen)
	}
}
