package notifications

import (
	"context"
	"encoding/json"
	"time"

	"mecanica_jobs/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventJobAssigned  = "job.assigned"
	EventJobCompleted = "job.completed"
	EventPartsNeeded  = "job.parts_needed"
)

// Event is the JSON payload published for every job notification.
type Event struct {
	Type       string    `json:"type"`
	JobID      string    `json:"job_id"`
	Summary    string    `json:"summary"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaDispatcher publishes job events keyed by job id, so all events of one
// job land on the same partition in order.
type KafkaDispatcher struct {
	writer messageWriter
	log    *zap.Logger
	now    func() time.Time
}

var _ interfaces.INotificationDispatcher = (*KafkaDispatcher)(nil)

func NewKafkaDispatcher(brokers []string, topic string, log *zap.Logger) *KafkaDispatcher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    1,
		RequiredAcks: kafka.RequireOne,
	}
	return newKafkaDispatcher(w, log)
}

func newKafkaDispatcher(w messageWriter, log *zap.Logger) *KafkaDispatcher {
	return &KafkaDispatcher{writer: w, log: log, now: func() time.Time { return time.Now().UTC() }}
}

func (d *KafkaDispatcher) NotifyJobAssigned(ctx context.Context, jobID, summary, actorID string) error {
	return d.publish(ctx, EventJobAssigned, jobID, summary, actorID)
}

func (d *KafkaDispatcher) NotifyJobCompleted(ctx context.Context, jobID, summary, actorID string) error {
	return d.publish(ctx, EventJobCompleted, jobID, summary, actorID)
}

func (d *KafkaDispatcher) NotifyPartsNeeded(ctx context.Context, jobID, summary, actorID string) error {
	return d.publish(ctx, EventPartsNeeded, jobID, summary, actorID)
}

func (d *KafkaDispatcher) Close() error {
	return d.writer.Close()
}

func (d *KafkaDispatcher) publish(ctx context.Context, kind, jobID, summary, actorID string) error {
	payload, err := json.Marshal(Event{
		Type:       kind,
		JobID:      jobID,
		Summary:    summary,
		ActorID:    actorID,
		OccurredAt: d.now(),
	})
	if err != nil {
		return err
	}
	if err := d.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(jobID),
		Value:   payload,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(kind)}},
	}); err != nil {
		return err
	}
	d.log.Debug("[notify][kafka] event published", zap.String("type", kind), zap.String("job_id", jobID))
	return nil
}
