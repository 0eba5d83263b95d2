package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/domain/workorder"
	"mecanica_jobs/internal/usecase/interfaces"
	mock_interfaces "mecanica_jobs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type sessionDeps struct {
	jobRepo     *mock_interfaces.MockIJobRepository
	catalogRepo *mock_interfaces.MockICatalogRepository
	quoteRepo   *mock_interfaces.MockIQuoteRepository
}

var technician = entities.Actor{ID: "tech-1", Role: entities.RoleTechnician}

func newTestSessionUseCase(t *testing.T) (*WorkOrderSessionUseCase, sessionDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := sessionDeps{
		jobRepo:     mock_interfaces.NewMockIJobRepository(ctrl),
		catalogRepo: mock_interfaces.NewMockICatalogRepository(ctrl),
		quoteRepo:   mock_interfaces.NewMockIQuoteRepository(ctrl),
	}
	jobs := NewJobUseCase(deps.jobRepo, nil, nil, zap.NewNop())
	jobs.now = func() time.Time { return fixedNow }
	catalog := NewCatalogUseCase(deps.catalogRepo, time.Minute, zap.NewNop())
	quotes := NewQuoteUseCase(deps.quoteRepo)

	uc := NewWorkOrderSessionUseCase(jobs, catalog, quotes, time.Hour, zap.NewNop())
	uc.now = func() time.Time { return fixedNow }
	uc.async = func(f func()) { f() }
	t.Cleanup(uc.Close)
	return uc, deps
}

func TestWorkOrderSession_OpenIsExclusivePerJob(t *testing.T) {
	uc, deps := newTestSessionUseCase(t)
	deps.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(storedJob(entities.JobStatusInProgress), nil).AnyTimes()

	first, err := uc.Open(context.Background(), "job-1", technician)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first.Stage != 1 || first.Totals.GrandTotal != 0 {
		t.Fatalf("expected an empty draft, got %+v", first)
	}

	again, err := uc.Open(context.Background(), "job-1", technician)
	if err != nil || again.SessionID != first.SessionID {
		t.Fatalf("expected the same session back, got %v %v", again.SessionID, err)
	}

	if _, err := uc.Open(context.Background(), "job-1", office); !errors.Is(err, ErrSessionAlreadyOpen) {
		t.Fatalf("expected ErrSessionAlreadyOpen, got %v", err)
	}
	if _, err := uc.Get(first.SessionID, office); !errors.Is(err, ErrSessionNotOwned) {
		t.Fatalf("expected ErrSessionNotOwned, got %v", err)
	}
}

func TestWorkOrderSession_OpenRejectsCompletedJob(t *testing.T) {
	uc, deps := newTestSessionUseCase(t)
	deps.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(storedJob(entities.JobStatusCompleted), nil)

	if _, err := uc.Open(context.Background(), "job-1", technician); !errors.Is(err, ErrWorkOrderFrozen) {
		t.Fatalf("expected ErrWorkOrderFrozen, got %v", err)
	}
}

func TestWorkOrderSession_EditingFlow(t *testing.T) {
	uc, deps := newTestSessionUseCase(t)
	deps.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(storedJob(entities.JobStatusInProgress), nil)
	deps.catalogRepo.EXPECT().ListActiveServices(gomock.Any()).Return([]entities.CatalogService{
		{ID: "svc-1", Name: "Brake pads", DurationHours: 2, PricePerHour: 50, Active: true},
	}, nil).Times(1)
	deps.catalogRepo.EXPECT().ListActiveParts(gomock.Any()).Return([]entities.CatalogPart{
		{ID: "part-1", Name: "Pad set", UnitPrice: 30, StockQuantity: 0, Active: true},
	}, nil).Times(1)

	s, err := uc.Open(context.Background(), "job-1", technician)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	id := s.SessionID

	if s, err = uc.AddCatalogService(context.Background(), id, "svc-1", technician); err != nil || s.Notice != "" {
		t.Fatalf("unexpected add: %+v %v", s, err)
	}
	s, err = uc.AddCatalogService(context.Background(), id, "svc-1", technician)
	if err != nil || s.Notice != NoticeServiceAlreadyAdded || len(s.Document.WorkItems) != 1 {
		t.Fatalf("expected duplicate notice, got %+v %v", s, err)
	}

	s, err = uc.AddFinding(id, "worn pads", technician)
	if err != nil || s.Stage != 3 {
		t.Fatalf("expected stage 3 after a finding, got %+v %v", s, err)
	}

	s, err = uc.AddCatalogPart(context.Background(), id, "part-1", technician)
	if err != nil || s.Stage != 4 || !s.Document.Parts[0].NeedsOrdering {
		t.Fatalf("expected out-of-stock part at stage 4, got %+v %v", s, err)
	}
	qty := 2
	s, err = uc.UpdatePart(id, s.Document.Parts[0].ID, workorder.PartPatch{Quantity: &qty}, technician)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	s, err = uc.SetDiscount(id, 10, technician)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Totals.LaborSubtotal != 100 || s.Totals.PartsSubtotal != 60 || s.Totals.GrandTotal != 144 {
		t.Fatalf("unexpected totals: %+v", s.Totals)
	}

	if _, err := uc.SetDiscount(id, 120, technician); !errors.Is(err, workorder.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := uc.RemoveWorkItem(id, "nope", technician); !errors.Is(err, workorder.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := uc.AddCatalogService(context.Background(), id, "svc-404", technician); !errors.Is(err, ErrCatalogItemNotFound) {
		t.Fatalf("expected ErrCatalogItemNotFound, got %v", err)
	}

	if err := uc.Discard(id, technician); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Get(id, technician); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after discard, got %v", err)
	}
}

func TestWorkOrderSession_FinalizeFailureKeepsEdits(t *testing.T) {
	uc, deps := newTestSessionUseCase(t)
	deps.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(storedJob(entities.JobStatusInProgress), nil).AnyTimes()
	deps.jobRepo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "tech-1").
		Return(entities.Job{}, interfaces.ErrVersionConflict)

	s, _ := uc.Open(context.Background(), "job-1", technician)
	if _, err := uc.AddCustomService(s.SessionID, "Rust treatment", technician); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.Finalize(context.Background(), s.SessionID, technician); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	kept, err := uc.Get(s.SessionID, technician)
	if err != nil {
		t.Fatalf("expected session to survive, got %v", err)
	}
	if len(kept.Document.WorkItems) != 1 || kept.Document.CompletedAt != nil {
		t.Fatalf("expected the draft unchanged, got %+v", kept.Document)
	}
	if _, err := uc.AddFinding(s.SessionID, "still editable", technician); err != nil {
		t.Fatalf("expected edits after a failed finalize, got %v", err)
	}
}

func TestWorkOrderSession_FinalizeInFlightGuard(t *testing.T) {
	uc, deps := newTestSessionUseCase(t)
	job := storedJob(entities.JobStatusInProgress)
	entered := make(chan struct{})
	release := make(chan struct{})

	deps.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil).AnyTimes()
	deps.jobRepo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "tech-1").
		DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
			close(entered)
			<-release
			return applyUpdate(job, upd), nil
		}).Times(1)

	s, _ := uc.Open(context.Background(), "job-1", technician)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = uc.Finalize(context.Background(), s.SessionID, technician)
	}()
	<-entered

	if _, err := uc.Finalize(context.Background(), s.SessionID, technician); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}
	if _, err := uc.AddFinding(s.SessionID, "late edit", technician); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected edits to be rejected while saving, got %v", err)
	}
	close(release)
	wg.Wait()
	if firstErr != nil {
		t.Fatalf("first finalize failed: %v", firstErr)
	}
	if _, err := uc.Get(s.SessionID, technician); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected session closed after finalize, got %v", err)
	}
}

func TestWorkOrderSession_FinalizePromotesAndQuotes(t *testing.T) {
	uc, deps := newTestSessionUseCase(t)
	job := storedJob(entities.JobStatusInProgress)
	deps.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil).AnyTimes()
	deps.jobRepo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "tech-1").
		DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
			if upd.WorkOrderData.CompletedAt == nil || upd.WorkOrderData.CompletedBy != "tech-1" {
				t.Fatalf("expected a finalized document, got %+v", upd.WorkOrderData)
			}
			return applyUpdate(job, upd), nil
		})
	deps.catalogRepo.EXPECT().ListActiveServices(gomock.Any()).Return(nil, nil)
	deps.catalogRepo.EXPECT().ListActiveParts(gomock.Any()).Return(nil, nil)
	deps.catalogRepo.EXPECT().AddService(gomock.Any(), gomock.Any(), "tech-1").
		Return(entities.CatalogService{}, errors.New("duplicate name"))
	deps.catalogRepo.EXPECT().AddPart(gomock.Any(), gomock.Any(), "tech-1").
		DoAndReturn(func(_ context.Context, p entities.CatalogPart, _ string) (entities.CatalogPart, error) {
			if p.Name != "Gasket" || !p.Active {
				t.Fatalf("unexpected promoted part: %+v", p)
			}
			p.ID = "part-new"
			return p, nil
		})
	deps.quoteRepo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Quote{}, nil)
	deps.quoteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			if q.JobID != "job-1" || q.Price != 95 || q.Status != entities.QuoteStatusPending {
				t.Fatalf("unexpected quote: %+v", q)
			}
			return q, nil
		})

	s, _ := uc.Open(context.Background(), "job-1", technician)
	w, _ := uc.AddCustomService(s.SessionID, "Rust treatment", technician)
	price := 80.0
	if _, err := uc.UpdateWorkItem(s.SessionID, w.Document.WorkItems[0].ID, workorder.WorkItemPatch{FixedPrice: &price}, technician); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	p, _ := uc.AddCustomPart(s.SessionID, "Gasket", technician)
	unit := 15.0
	if _, err := uc.UpdatePart(s.SessionID, p.Document.Parts[0].ID, workorder.PartPatch{UnitPrice: &unit}, technician); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	updated, err := uc.Finalize(context.Background(), s.SessionID, technician)
	if err != nil {
		t.Fatalf("promotion or quote failures must not fail finalize: %v", err)
	}
	if updated.WorkOrderData.GrandTotal != 95 || updated.Version != 4 {
		t.Fatalf("unexpected job: %+v", updated)
	}
}

// statefulJobRepo serves job-1 from a local copy that Update writes back to.
func statefulJobRepo(deps sessionDeps, current *entities.Job) {
	deps.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").
		DoAndReturn(func(context.Context, string) (entities.Job, error) { return *current, nil }).AnyTimes()
}

func TestWorkOrderSession_FinalizeRebasesAfterUnrelatedJobWrite(t *testing.T) {
	uc, deps := newTestSessionUseCase(t)
	uc.quotes = nil
	current := storedJob(entities.JobStatusInProgress)
	statefulJobRepo(deps, &current)
	gomock.InOrder(
		deps.jobRepo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "tech-1").
			Return(entities.Job{}, interfaces.ErrVersionConflict),
		deps.jobRepo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(4), "tech-1").
			DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
				current = applyUpdate(current, upd)
				return current, nil
			}),
	)

	s, _ := uc.Open(context.Background(), "job-1", technician)
	if _, err := uc.AddFinding(s.SessionID, "Worn pads", technician); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// the office assigns a mechanic while the technician is editing
	current.Version = 4
	current.AssignedMechanicID = "mech-7"

	job, err := uc.Finalize(context.Background(), s.SessionID, technician)
	if err != nil {
		t.Fatalf("expected finalize to rebase, got %v", err)
	}
	if job.Version != 5 || job.AssignedMechanicID != "mech-7" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if len(job.WorkOrderData.Findings) != 1 || job.WorkOrderData.Findings[0].Description != "Worn pads" {
		t.Fatalf("expected the edits saved, got %+v", job.WorkOrderData)
	}
}

func TestWorkOrderSession_FinalizeRetrySucceedsAfterConflict(t *testing.T) {
	uc, deps := newTestSessionUseCase(t)
	uc.quotes = nil
	current := storedJob(entities.JobStatusInProgress)
	statefulJobRepo(deps, &current)
	gomock.InOrder(
		deps.jobRepo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "tech-1").
			Return(entities.Job{}, interfaces.ErrVersionConflict),
		deps.jobRepo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(4), "tech-1").
			Return(entities.Job{}, interfaces.ErrVersionConflict),
		deps.jobRepo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(4), "tech-1").
			DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
				current = applyUpdate(current, upd)
				return current, nil
			}),
	)

	s, _ := uc.Open(context.Background(), "job-1", technician)
	if _, err := uc.AddFinding(s.SessionID, "Worn pads", technician); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	current.Version = 4

	if _, err := uc.Finalize(context.Background(), s.SessionID, technician); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	kept, err := uc.Get(s.SessionID, technician)
	if err != nil || len(kept.Document.Findings) != 1 {
		t.Fatalf("expected the session and its edits kept, got %+v %v", kept, err)
	}

	job, err := uc.Finalize(context.Background(), s.SessionID, technician)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if job.Version != 5 || len(job.WorkOrderData.Findings) != 1 || job.WorkOrderData.CompletedAt == nil {
		t.Fatalf("unexpected job: %+v", job)
	}
}

func TestWorkOrderSession_FinalizeRejectsChangedWorkOrder(t *testing.T) {
	uc, deps := newTestSessionUseCase(t)
	current := storedJob(entities.JobStatusInProgress)
	statefulJobRepo(deps, &current)
	deps.jobRepo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), int64(3), "tech-1").
		Return(entities.Job{}, interfaces.ErrVersionConflict).Times(1)

	s, _ := uc.Open(context.Background(), "job-1", technician)
	if _, err := uc.AddFinding(s.SessionID, "Worn pads", technician); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	current.Version = 4
	current.WorkOrderData = &entities.WorkOrderDocument{
		Findings: []entities.Finding{{ID: "f-9", Description: "Leaking hose"}},
	}

	if _, err := uc.Finalize(context.Background(), s.SessionID, technician); !errors.Is(err, ErrWorkOrderChanged) {
		t.Fatalf("expected ErrWorkOrderChanged, got %v", err)
	}
	kept, err := uc.Get(s.SessionID, technician)
	if err != nil || len(kept.Document.Findings) != 1 || kept.Document.Findings[0].Description != "Worn pads" {
		t.Fatalf("expected the draft kept, got %+v %v", kept, err)
	}
}

func TestWorkOrderSession_RefinalizeDoesNotDuplicateCatalogEntries(t *testing.T) {
	uc, deps := newTestSessionUseCase(t)
	uc.quotes = nil
	current := storedJob(entities.JobStatusInProgress)
	statefulJobRepo(deps, &current)
	deps.jobRepo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any(), gomock.Any(), "tech-1").
		DoAndReturn(func(_ context.Context, _ string, upd entities.JobUpdate, _ int64, _ string) (entities.Job, error) {
			current = applyUpdate(current, upd)
			return current, nil
		}).Times(2)
	gomock.InOrder(
		deps.catalogRepo.EXPECT().ListActiveServices(gomock.Any()).Return(nil, nil),
		deps.catalogRepo.EXPECT().ListActiveServices(gomock.Any()).
			Return([]entities.CatalogService{{ID: "svc-new", Name: "Rust treatment", Active: true}}, nil),
	)
	deps.catalogRepo.EXPECT().AddService(gomock.Any(), gomock.Any(), "tech-1").
		DoAndReturn(func(_ context.Context, s entities.CatalogService, _ string) (entities.CatalogService, error) {
			s.ID = "svc-new"
			return s, nil
		}).Times(1)

	first, _ := uc.Open(context.Background(), "job-1", technician)
	if _, err := uc.AddCustomService(first.SessionID, "Rust treatment", technician); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Finalize(context.Background(), first.SessionID, technician); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	second, err := uc.Open(context.Background(), "job-1", technician)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second.Document.WorkItems) != 1 || !second.Document.WorkItems[0].IsCustom {
		t.Fatalf("expected the saved custom line back, got %+v", second.Document)
	}
	job, err := uc.Finalize(context.Background(), second.SessionID, technician)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if job.Version != 5 {
		t.Fatalf("expected two saves, got version %d", job.Version)
	}
}
