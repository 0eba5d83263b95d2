package interfaces

import "context"

//go:generate mockgen -source=notification_interface.go -destination=mocks/mock_notification.go -package=mock_interfaces

// INotificationDispatcher delivers job events. Calls happen after the state is
// committed and their failures never undo it.
type INotificationDispatcher interface {
	NotifyJobAssigned(ctx context.Context, jobID, summary, actorID string) error
	NotifyJobCompleted(ctx context.Context, jobID, summary, actorID string) error
	NotifyPartsNeeded(ctx context.Context, jobID, summary, actorID string) error
}
