package notifications

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/havendogs/api-server/internal/domains/interests/ports"
)

// SendStatusEmailActivityName delivers one adoption status email to the applicant.
const SendStatusEmailActivityName = "interests.activities.SendStatusEmail"

// Activities groups activities that operate on adoption notifications.
type Activities struct {
	notifier ports.Notifier
}

// NewActivities wires the notifier into the Temporal activities bundle.
func NewActivities(notifier ports.Notifier) *Activities {
	return &Activities{notifier: notifier}
}

// SendStatusEmail delivers the notification through the configured channel.
func (a *Activities) SendStatusEmail(ctx context.Context, notification ports.StatusNotification) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.notifier == nil {
		logger.Error("status email activity not initialized", "to", notification.To)
		return errors.New("status email activity not initialized")
	}
	logger.Info("SendStatusEmail activity started", "to", notification.To, "status", notification.Status)
	if err := a.notifier.SendStatusUpdate(ctx, notification); err != nil {
		logger.Error("SendStatusEmail activity failed", "to", notification.To, "error", err)
		return err
	}
	logger.Info("SendStatusEmail activity completed", "to", notification.To)
	return nil
}
