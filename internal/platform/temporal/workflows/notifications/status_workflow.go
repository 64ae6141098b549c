package notifications

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/havendogs/api-server/internal/domains/interests/ports"
	notifyactivities "github.com/havendogs/api-server/internal/platform/temporal/activities/notifications"
)

const (
	// StatusNotificationWorkflowName is the public identifier for registering the workflow.
	StatusNotificationWorkflowName = "interests.workflows.StatusNotification"
	// StatusNotificationTaskQueue is the queue consumed by the worker delivering adoption emails.
	StatusNotificationTaskQueue = "ADOPTION_NOTIFICATIONS"
)

// StatusNotificationWorkflowInput captures the payload for one applicant email.
type StatusNotificationWorkflowInput struct {
	Notification ports.StatusNotification
	TraceID      string
}

// StatusNotificationWorkflow delivers a single adoption status email. Delivery
// gets a short retry budget; exhausting it fails only the workflow, never the
// status change that triggered it.
func StatusNotificationWorkflow(ctx workflow.Context, input StatusNotificationWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("StatusNotificationWorkflow started", withTraceID(input.TraceID, "to", input.Notification.To, "status", input.Notification.Status)...)

	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    3,
		},
	}
	err := workflow.ExecuteActivity(
		workflow.WithActivityOptions(ctx, options),
		notifyactivities.SendStatusEmailActivityName,
		input.Notification,
	).Get(ctx, nil)
	if err != nil {
		logger.Error("StatusNotificationWorkflow failed", withTraceID(input.TraceID, "to", input.Notification.To, "error", err)...)
		return err
	}
	logger.Info("StatusNotificationWorkflow completed", withTraceID(input.TraceID, "to", input.Notification.To)...)
	return nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
