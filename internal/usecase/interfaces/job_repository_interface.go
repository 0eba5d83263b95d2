package interfaces

import (
	"context"
	"errors"

	"mecanica_jobs/internal/domain/entities"
)

//go:generate mockgen -source=job_repository_interface.go -destination=mocks/mock_job_repository.go -package=mock_interfaces

// ErrVersionConflict is returned by IJobRepository.Update when the stored version
// no longer matches the caller's token. Callers may reload and retry.
var ErrVersionConflict = errors.New("job was modified by someone else")

// IJobRepository abstracts the job store.
//
// Not found is reported as a zero-value Job (empty ID), not as an error.
// Update applies a partial write only when the stored version equals
// expectedVersion, bumps the version and returns the stored result.
type IJobRepository interface {
	Create(ctx context.Context, job entities.Job, actorID string) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	Update(ctx context.Context, id string, upd entities.JobUpdate, expectedVersion int64, actorID string) (entities.Job, error)
	// Subscribe calls onChange with every new version of the job until ctx is
	// done or the returned cancel func is called.
	Subscribe(ctx context.Context, id string, onChange func(entities.Job)) (cancel func(), err error)
}
