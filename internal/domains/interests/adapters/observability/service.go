package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/havendogs/api-server/internal/domains/interests/domain"
	"github.com/havendogs/api-server/internal/domains/interests/ports"
)

const tracerName = "github.com/havendogs/api-server/internal/domains/interests/adapters/observability/service"

// Service decorates the interests application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// SubmitInterest records a new application with instrumentation.
func (s *Service) SubmitInterest(ctx context.Context, petID string, form domain.Form) (*ports.InterestProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.SubmitInterest", attribute.String("pet.id", petID))
	defer span.End()

	s.logInfo(ctx, "submitting interest", slog.String("pet.id", petID))
	result, err := s.inner.SubmitInterest(ctx, petID, form)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to submit interest", slog.String("pet.id", petID))
	}
	if result != nil && result.Entity != nil {
		s.metrics.recordSubmitted(ctx)
		s.logInfo(ctx, "interest submitted", slog.String("interest.id", result.Entity.ID), slog.String("pet.id", petID))
	}
	return result, nil
}

// ListByPet loads submissions for one listing.
func (s *Service) ListByPet(ctx context.Context, petID string) ([]*ports.InterestProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.ListByPet", attribute.String("pet.id", petID))
	defer span.End()

	s.logInfo(ctx, "listing interests for pet", slog.String("pet.id", petID))
	result, err := s.inner.ListByPet(ctx, petID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list interests for pet", slog.String("pet.id", petID))
	}
	span.SetAttributes(attribute.Int("interest.result.count", len(result)))
	s.logInfo(ctx, "listed interests for pet", slog.Int("count", len(result)))
	return result, nil
}

// ListAll loads submissions for review, optionally filtered by status.
func (s *Service) ListAll(ctx context.Context, status string) ([]*ports.InterestView, error) {
	ctx, span := s.startSpan(ctx, "Service.ListAll", attribute.String("interest.status.requested", status))
	defer span.End()

	s.logInfo(ctx, "listing interests", slog.String("status", status))
	result, err := s.inner.ListAll(ctx, status)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list interests", slog.String("status", status))
	}
	span.SetAttributes(attribute.Int("interest.result.count", len(result)))
	s.logInfo(ctx, "listed interests", slog.Int("count", len(result)))
	return result, nil
}

// UpdateStatus applies a review decision.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*ports.InterestProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.UpdateStatus",
		attribute.String("interest.id", id),
		attribute.String("interest.status.requested", status),
	)
	defer span.End()

	s.logInfo(ctx, "updating interest status", slog.String("interest.id", id), slog.String("status", status))
	result, err := s.inner.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update interest status", slog.String("interest.id", id))
	}
	if result != nil && result.Entity != nil {
		s.metrics.recordDecision(ctx, result.Entity.Status)
		s.logInfo(ctx, "interest status updated", slog.String("interest.id", result.Entity.ID), slog.String("status", string(result.Entity.Status)))
	}
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	submitted metric.Int64Counter
	decisions metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	submitted, _ := m.Int64Counter("interests.service.submitted", metric.WithDescription("Number of adoption interests submitted"))
	decisions, _ := m.Int64Counter("interests.service.decisions", metric.WithDescription("Number of review decisions applied"))
	return serviceMetrics{submitted: submitted, decisions: decisions}
}

func (m serviceMetrics) recordSubmitted(ctx context.Context) {
	addCounter(ctx, m.submitted, 1)
}

func (m serviceMetrics) recordDecision(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.decisions, 1, attribute.String("interest.status", string(status)))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
