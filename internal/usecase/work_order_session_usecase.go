package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/domain/workorder"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound    = errors.New("work order session not found")
	ErrSessionAlreadyOpen = errors.New("work order is being edited in another session")
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrSessionNotOwned    = errors.New("work order session belongs to another user")
	ErrWorkOrderChanged   = errors.New("work order was changed since the session was opened")
)

const (
	NoticeServiceAlreadyAdded = "service is already in the work order"
	NoticePartAlreadyAdded    = "part is already in the work order"
)

// SessionSnapshot is what an editor sees after each operation.
type SessionSnapshot struct {
	SessionID string
	JobID     string
	Document  *entities.WorkOrderDocument
	Totals    workorder.Totals
	Stage     int
	Notice    string
}

// IWorkOrderSessionUseCase manages work-order editing sessions. Edits stay in the
// session until Finalize saves them; Discard or idle expiry drops them.
type IWorkOrderSessionUseCase interface {
	Open(ctx context.Context, jobID string, actor entities.Actor) (SessionSnapshot, error)
	Get(sessionID string, actor entities.Actor) (SessionSnapshot, error)
	Discard(sessionID string, actor entities.Actor) error

	AddCatalogService(ctx context.Context, sessionID, serviceID string, actor entities.Actor) (SessionSnapshot, error)
	AddCustomService(sessionID, name string, actor entities.Actor) (SessionSnapshot, error)
	UpdateWorkItem(sessionID, itemID string, patch workorder.WorkItemPatch, actor entities.Actor) (SessionSnapshot, error)
	RemoveWorkItem(sessionID, itemID string, actor entities.Actor) (SessionSnapshot, error)

	AddFinding(sessionID, description string, actor entities.Actor) (SessionSnapshot, error)
	UpdateFinding(sessionID, itemID string, patch workorder.FindingPatch, actor entities.Actor) (SessionSnapshot, error)
	RemoveFinding(sessionID, itemID string, actor entities.Actor) (SessionSnapshot, error)

	AddCatalogPart(ctx context.Context, sessionID, partID string, actor entities.Actor) (SessionSnapshot, error)
	AddCustomPart(sessionID, name string, actor entities.Actor) (SessionSnapshot, error)
	UpdatePart(sessionID, itemID string, patch workorder.PartPatch, actor entities.Actor) (SessionSnapshot, error)
	RemovePart(sessionID, itemID string, actor entities.Actor) (SessionSnapshot, error)

	SetDiscount(sessionID string, percent float64, actor entities.Actor) (SessionSnapshot, error)
	Finalize(ctx context.Context, sessionID string, actor entities.Actor) (entities.Job, error)
}

type editSession struct {
	id          string
	jobID       string
	actorID     string
	baseVersion int64
	baseDoc     *entities.WorkOrderDocument

	mu         sync.Mutex
	composer   *workorder.Composer
	finalizing bool
}

type WorkOrderSessionUseCase struct {
	jobs     IJobUseCase
	catalog  ICatalogUseCase
	quotes   IQuoteUseCase
	log      *zap.Logger
	sessions *ttlcache.Cache[string, *editSession]

	openMu sync.Mutex
	now    func() time.Time
	async  func(func())
}

var _ IWorkOrderSessionUseCase = (*WorkOrderSessionUseCase)(nil)

// NewWorkOrderSessionUseCase keeps sessions for idleTTL after their last use.
// Call Close to stop the expiry loop.
func NewWorkOrderSessionUseCase(jobs IJobUseCase, catalog ICatalogUseCase, quotes IQuoteUseCase, idleTTL time.Duration, log *zap.Logger) *WorkOrderSessionUseCase {
	u := &WorkOrderSessionUseCase{
		jobs:     jobs,
		catalog:  catalog,
		quotes:   quotes,
		log:      log,
		sessions: ttlcache.New(ttlcache.WithTTL[string, *editSession](idleTTL)),
		now:      func() time.Time { return time.Now().UTC() },
		async:    func(f func()) { go f() },
	}
	u.sessions.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *editSession]) {
		if reason == ttlcache.EvictionReasonExpired {
			u.log.Info("[workorder][session] idle session discarded",
				zap.String("session_id", item.Key()), zap.String("job_id", item.Value().jobID))
		}
	})
	go u.sessions.Start()
	return u
}

func (u *WorkOrderSessionUseCase) Close() {
	u.sessions.Stop()
}

// Open starts editing the job's work order. A user reopening a job they are
// already editing gets their existing session back.
func (u *WorkOrderSessionUseCase) Open(ctx context.Context, jobID string, actor entities.Actor) (SessionSnapshot, error) {
	actorID := strings.TrimSpace(actor.ID)
	if actorID == "" {
		return SessionSnapshot{}, ErrInvalidActor
	}
	jwh, err := u.jobs.GetJob(ctx, jobID)
	if err != nil {
		return SessionSnapshot{}, err
	}
	job := jwh.Job
	if job.Status == entities.JobStatusCompleted {
		return SessionSnapshot{}, ErrWorkOrderFrozen
	}

	u.openMu.Lock()
	defer u.openMu.Unlock()

	for _, item := range u.sessions.Items() {
		s := item.Value()
		if item.IsExpired() || s.jobID != job.ID {
			continue
		}
		if s.actorID != actorID {
			return SessionSnapshot{}, ErrSessionAlreadyOpen
		}
		u.sessions.Get(s.id)
		return u.snapshot(s, ""), nil
	}

	s := &editSession{
		id:          uuid.NewString(),
		jobID:       job.ID,
		actorID:     actorID,
		baseVersion: job.Version,
		baseDoc:     job.WorkOrderData.Clone(),
		composer:    workorder.NewComposer(job.WorkOrderData, u.now()),
	}
	u.sessions.Set(s.id, s, ttlcache.DefaultTTL)
	u.log.Info("[workorder][session] opened",
		zap.String("session_id", s.id), zap.String("job_id", s.jobID), zap.Int64("base_version", s.baseVersion))
	return u.snapshot(s, ""), nil
}

func (u *WorkOrderSessionUseCase) Get(sessionID string, actor entities.Actor) (SessionSnapshot, error) {
	return u.edit(sessionID, actor, func(*workorder.Composer) (string, error) { return "", nil })
}

func (u *WorkOrderSessionUseCase) Discard(sessionID string, actor entities.Actor) error {
	s, err := u.lookup(sessionID, actor)
	if err != nil {
		return err
	}
	u.sessions.Delete(s.id)
	u.log.Info("[workorder][session] discarded", zap.String("session_id", s.id), zap.String("job_id", s.jobID))
	return nil
}

func (u *WorkOrderSessionUseCase) AddCatalogService(ctx context.Context, sessionID, serviceID string, actor entities.Actor) (SessionSnapshot, error) {
	svc, err := u.catalog.FindService(ctx, serviceID)
	if err != nil {
		return SessionSnapshot{}, err
	}
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		if _, added := c.AddServiceFromCatalog(svc); !added {
			return NoticeServiceAlreadyAdded, nil
		}
		return "", nil
	})
}

func (u *WorkOrderSessionUseCase) AddCustomService(sessionID, name string, actor entities.Actor) (SessionSnapshot, error) {
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		c.AddCustomService(name)
		return "", nil
	})
}

func (u *WorkOrderSessionUseCase) UpdateWorkItem(sessionID, itemID string, patch workorder.WorkItemPatch, actor entities.Actor) (SessionSnapshot, error) {
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		_, err := c.UpdateWorkItem(itemID, patch)
		return "", err
	})
}

func (u *WorkOrderSessionUseCase) RemoveWorkItem(sessionID, itemID string, actor entities.Actor) (SessionSnapshot, error) {
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		return "", c.RemoveWorkItem(itemID)
	})
}

func (u *WorkOrderSessionUseCase) AddFinding(sessionID, description string, actor entities.Actor) (SessionSnapshot, error) {
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		c.AddFinding(description)
		return "", nil
	})
}

func (u *WorkOrderSessionUseCase) UpdateFinding(sessionID, itemID string, patch workorder.FindingPatch, actor entities.Actor) (SessionSnapshot, error) {
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		_, err := c.UpdateFinding(itemID, patch)
		return "", err
	})
}

func (u *WorkOrderSessionUseCase) RemoveFinding(sessionID, itemID string, actor entities.Actor) (SessionSnapshot, error) {
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		return "", c.RemoveFinding(itemID)
	})
}

func (u *WorkOrderSessionUseCase) AddCatalogPart(ctx context.Context, sessionID, partID string, actor entities.Actor) (SessionSnapshot, error) {
	part, err := u.catalog.FindPart(ctx, partID)
	if err != nil {
		return SessionSnapshot{}, err
	}
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		if _, added := c.AddPartFromCatalog(part); !added {
			return NoticePartAlreadyAdded, nil
		}
		return "", nil
	})
}

func (u *WorkOrderSessionUseCase) AddCustomPart(sessionID, name string, actor entities.Actor) (SessionSnapshot, error) {
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		c.AddCustomPart(name)
		return "", nil
	})
}

func (u *WorkOrderSessionUseCase) UpdatePart(sessionID, itemID string, patch workorder.PartPatch, actor entities.Actor) (SessionSnapshot, error) {
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		_, err := c.UpdatePart(itemID, patch)
		return "", err
	})
}

func (u *WorkOrderSessionUseCase) RemovePart(sessionID, itemID string, actor entities.Actor) (SessionSnapshot, error) {
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		return "", c.RemovePart(itemID)
	})
}

func (u *WorkOrderSessionUseCase) SetDiscount(sessionID string, percent float64, actor entities.Actor) (SessionSnapshot, error) {
	return u.edit(sessionID, actor, func(c *workorder.Composer) (string, error) {
		return "", c.SetDiscount(percent)
	})
}

// Finalize freezes the draft and saves it on the job. A second Finalize on the
// same session while the first is running is rejected. When the save fails the
// session and its edits are kept so the user can retry. Catalog promotion and
// quote sync run in the background after a successful save. A version conflict
// caused by a job write that left the work order alone is absorbed by saving
// again on top of the newer version.
func (u *WorkOrderSessionUseCase) Finalize(ctx context.Context, sessionID string, actor entities.Actor) (entities.Job, error) {
	s, err := u.lookup(sessionID, actor)
	if err != nil {
		return entities.Job{}, err
	}

	s.mu.Lock()
	if s.finalizing {
		s.mu.Unlock()
		return entities.Job{}, ErrSubmissionInFlight
	}
	s.finalizing = true
	fin := s.composer.Finalize(u.now(), s.actorID)
	s.mu.Unlock()

	job, err := u.save(ctx, s, fin.Document, entities.Actor{ID: s.actorID, Role: actor.Role})
	if err != nil {
		s.mu.Lock()
		s.finalizing = false
		s.mu.Unlock()
		u.log.Warn("[workorder][session] finalize failed; edits kept",
			zap.String("session_id", s.id), zap.String("job_id", s.jobID), zap.Error(err))
		return entities.Job{}, err
	}
	u.sessions.Delete(s.id)
	u.log.Info("[workorder][session] finalized",
		zap.String("session_id", s.id), zap.String("job_id", job.ID), zap.Int64("version", job.Version))

	bg := context.WithoutCancel(ctx)
	u.async(func() {
		if u.catalog != nil {
			u.catalog.Promote(bg, fin, s.actorID)
		}
		if u.quotes != nil {
			if _, err := u.quotes.SyncFromWorkOrder(bg, job.ID, job.WorkOrderData); err != nil {
				u.log.Warn("[workorder][session] quote sync skipped", zap.String("job_id", job.ID), zap.Error(err))
			}
		}
	})
	return job, nil
}

// save writes doc at the session's base version. On a conflict the job is
// reloaded: if its work order still matches what the session opened with, the
// session moves to the current version and the write is tried once more.
// Only the finalizing caller touches baseVersion and baseDoc.
func (u *WorkOrderSessionUseCase) save(ctx context.Context, s *editSession, doc *entities.WorkOrderDocument, by entities.Actor) (entities.Job, error) {
	job, err := u.jobs.SaveWorkOrder(ctx, s.jobID, doc, s.baseVersion, by)
	if !errors.Is(err, ErrVersionConflict) {
		return job, err
	}
	jwh, lerr := u.jobs.GetJob(ctx, s.jobID)
	if lerr != nil {
		return entities.Job{}, lerr
	}
	current := jwh.Job
	if current.Status == entities.JobStatusCompleted {
		return entities.Job{}, ErrWorkOrderFrozen
	}
	if current.Version == s.baseVersion {
		return entities.Job{}, err
	}
	if !sameWorkOrder(current.WorkOrderData, s.baseDoc) {
		return entities.Job{}, ErrWorkOrderChanged
	}
	u.log.Info("[workorder][session] rebased on newer job version",
		zap.String("session_id", s.id), zap.String("job_id", s.jobID),
		zap.Int64("from", s.baseVersion), zap.Int64("to", current.Version))
	s.baseVersion = current.Version
	return u.jobs.SaveWorkOrder(ctx, s.jobID, doc, s.baseVersion, by)
}

// sameWorkOrder compares two stored documents by content. Clone normalizes
// nil and empty line slices before encoding.
func sameWorkOrder(a, b *entities.WorkOrderDocument) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ab, err := json.Marshal(a.Clone())
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b.Clone())
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}

func (u *WorkOrderSessionUseCase) lookup(sessionID string, actor entities.Actor) (*editSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	item := u.sessions.Get(sessionID)
	if item == nil {
		return nil, ErrSessionNotFound
	}
	s := item.Value()
	if s.actorID != strings.TrimSpace(actor.ID) {
		return nil, ErrSessionNotOwned
	}
	return s, nil
}

func (u *WorkOrderSessionUseCase) edit(sessionID string, actor entities.Actor, fn func(*workorder.Composer) (string, error)) (SessionSnapshot, error) {
	s, err := u.lookup(sessionID, actor)
	if err != nil {
		return SessionSnapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalizing {
		return SessionSnapshot{}, ErrSubmissionInFlight
	}
	notice, err := fn(s.composer)
	if err != nil {
		return SessionSnapshot{}, err
	}
	return u.snapshotLocked(s, notice), nil
}

func (u *WorkOrderSessionUseCase) snapshot(s *editSession, notice string) SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return u.snapshotLocked(s, notice)
}

func (u *WorkOrderSessionUseCase) snapshotLocked(s *editSession, notice string) SessionSnapshot {
	return SessionSnapshot{
		SessionID: s.id,
		JobID:     s.jobID,
		Document:  s.composer.Document(),
		Totals:    s.composer.Totals(),
		Stage:     s.composer.Stage(),
		Notice:    notice,
	}
}
