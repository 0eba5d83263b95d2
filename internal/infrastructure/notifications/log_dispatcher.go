package notifications

import (
	"context"

	"mecanica_jobs/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogDispatcher records job events in the log only. It is used when no
// Kafka brokers are configured.
type LogDispatcher struct {
	log *zap.Logger
}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(log *zap.Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

func (d *LogDispatcher) NotifyJobAssigned(_ context.Context, jobID, summary, actorID string) error {
	d.emit(EventJobAssigned, jobID, summary, actorID)
	return nil
}

func (d *LogDispatcher) NotifyJobCompleted(_ context.Context, jobID, summary, actorID string) error {
	d.emit(EventJobCompleted, jobID, summary, actorID)
	return nil
}

func (d *LogDispatcher) NotifyPartsNeeded(_ context.Context, jobID, summary, actorID string) error {
	d.emit(EventPartsNeeded, jobID, summary, actorID)
	return nil
}

func (d *LogDispatcher) emit(kind, jobID, summary, actorID string) {
	d.log.Info("[notify][log] "+summary,
		zap.String("type", kind), zap.String("job_id", jobID), zap.String("actor_id", actorID))
}
