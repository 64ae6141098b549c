package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/havendogs/api-server/internal/domains/interests/ports"
	notifyworkflows "github.com/havendogs/api-server/internal/platform/temporal/workflows/notifications"
)

var (
	_ ports.NotificationDispatcher = (*TemporalDispatcher)(nil)
	_ ports.NotificationDispatcher = (*InlineDispatcher)(nil)
)

// TemporalDispatcher starts the status-notification workflow on a Temporal
// cluster and returns once the workflow is accepted; delivery happens on the
// worker.
type TemporalDispatcher struct {
	client    client.Client
	taskQueue string
}

// NewTemporalDispatcher wires a Temporal client into the dispatcher.
func NewTemporalDispatcher(c client.Client) *TemporalDispatcher {
	return &TemporalDispatcher{client: c, taskQueue: notifyworkflows.StatusNotificationTaskQueue}
}

// Dispatch starts the delivery workflow without waiting for its result.
func (d *TemporalDispatcher) Dispatch(ctx context.Context, notification ports.StatusNotification) error {
	if d == nil || d.client == nil {
		return errors.New("temporal notification dispatcher not configured")
	}
	options := client.StartWorkflowOptions{
		ID:        buildNotificationWorkflowID(notification, workflowTraceComponent(ctx)),
		TaskQueue: d.taskQueue,
	}
	_, err := d.client.ExecuteWorkflow(
		ctx,
		options,
		notifyworkflows.StatusNotificationWorkflow,
		notifyworkflows.StatusNotificationWorkflowInput{Notification: notification, TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil
		}
		return err
	}
	return nil
}

// InlineDispatcher delivers synchronously through the notifier, useful for
// tests or deployments without a Temporal cluster.
type InlineDispatcher struct {
	notifier ports.Notifier
}

// NewInlineDispatcher wraps the notifier for synchronous delivery.
func NewInlineDispatcher(notifier ports.Notifier) *InlineDispatcher {
	return &InlineDispatcher{notifier: notifier}
}

// Dispatch sends the notification directly without durable orchestration.
func (d *InlineDispatcher) Dispatch(ctx context.Context, notification ports.StatusNotification) error {
	if d == nil || d.notifier == nil {
		return errors.New("inline notification dispatcher not configured")
	}
	return d.notifier.SendStatusUpdate(ctx, notification)
}

func buildNotificationWorkflowID(notification ports.StatusNotification, traceComponent string) string {
	return fmt.Sprintf("adoption-status-%s-%s-%s", notification.Status, notification.To, traceComponent)
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
