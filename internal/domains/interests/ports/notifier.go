package ports

import "context"

// StatusNotification carries everything needed to tell an applicant about a
// decision on their submission.
type StatusNotification struct {
	To      string
	Name    string
	PetName string
	Status  string
}

// Notifier delivers a status notification to the applicant.
type Notifier interface {
	SendStatusUpdate(ctx context.Context, notification StatusNotification) error
}

// NotificationDispatcher decouples the status-update operation from delivery.
// A dispatch failure is reported to the caller for logging only; the workflow
// discards it and the status change stands regardless.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notification StatusNotification) error
}
