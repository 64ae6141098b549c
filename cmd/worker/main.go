package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	interestnotifications "github.com/havendogs/api-server/internal/domains/interests/adapters/notifications"
	interestports "github.com/havendogs/api-server/internal/domains/interests/ports"
	platformobservability "github.com/havendogs/api-server/internal/platform/observability"
	notifyactivities "github.com/havendogs/api-server/internal/platform/temporal/activities/notifications"
	notifyworkflows "github.com/havendogs/api-server/internal/platform/temporal/workflows/notifications"
)

func main() {
	ctx := context.Background()
	const serviceName = "havendogs-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	activities := notifyactivities.NewActivities(buildNotifier(logger))

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, notifyworkflows.StatusNotificationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(notifyworkflows.StatusNotificationWorkflow, workflow.RegisterOptions{Name: notifyworkflows.StatusNotificationWorkflowName})
	w.RegisterActivityWithOptions(activities.SendStatusEmail, activity.RegisterOptions{Name: notifyactivities.SendStatusEmailActivityName})

	logger.Info("worker listening", slog.String("taskQueue", notifyworkflows.StatusNotificationTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildNotifier(logger *slog.Logger) interestports.Notifier {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		logger.Warn("SENDGRID_API_KEY not set, recording notifications in memory")
		return interestnotifications.NewRecorder()
	}
	return interestnotifications.NewSendGridNotifier(apiKey, os.Getenv("SENDGRID_FROM_EMAIL"))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
