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

	"github.com/havendogs/api-server/internal/domains/listings/domain"
	"github.com/havendogs/api-server/internal/domains/listings/ports"
)

const tracerName = "github.com/havendogs/api-server/internal/domains/listings/adapters/observability/service"

// Service decorates the listings application port with tracing, logging, and metrics.
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

// Create publishes a new listing with instrumentation.
func (s *Service) Create(ctx context.Context, input ports.CreateListingInput) (*ports.ListingProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.Create", attribute.String("listing.name", input.Name))
	defer span.End()

	s.logInfo(ctx, "creating listing", slog.String("listing.name", input.Name))
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create listing", slog.String("listing.name", input.Name))
	}
	if result != nil && result.Entity != nil {
		s.metrics.recordCreated(ctx, result.Entity.Status)
		s.logInfo(ctx, "listing created", slog.String("listing.id", result.Entity.ID))
	}
	return result, nil
}

// GetByID loads a single listing.
func (s *Service) GetByID(ctx context.Context, id string) (*ports.ListingProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.String("listing.id", id))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load listing", slog.String("listing.id", id))
	}
	return result, nil
}

// Update applies a partial mutation.
func (s *Service) Update(ctx context.Context, id string, input ports.UpdateListingInput) (*ports.ListingProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.Update", attribute.String("listing.id", id))
	defer span.End()

	s.logInfo(ctx, "updating listing", slog.String("listing.id", id))
	result, err := s.inner.Update(ctx, id, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update listing", slog.String("listing.id", id))
	}
	if result != nil && result.Entity != nil {
		s.metrics.recordUpdated(ctx, result.Entity.Status)
		s.logInfo(ctx, "listing updated", slog.String("listing.id", result.Entity.ID), slog.String("status", string(result.Entity.Status)))
	}
	return result, nil
}

// Delete removes a listing.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.String("listing.id", id))
	defer span.End()

	s.logInfo(ctx, "deleting listing", slog.String("listing.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete listing", slog.String("listing.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "listing deleted", slog.String("listing.id", id))
	return nil
}

// List exposes the full board.
func (s *Service) List(ctx context.Context) ([]*ports.ListingProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list listings")
	}
	span.SetAttributes(attribute.Int("listing.result.count", len(result)))
	return result, nil
}

// FindByLocation searches available listings near a location fragment.
func (s *Service) FindByLocation(ctx context.Context, location string) ([]*ports.ListingProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.FindByLocation", attribute.String("listing.location.requested", location))
	defer span.End()

	result, err := s.inner.FindByLocation(ctx, location)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to search listings by location", slog.String("location", location))
	}
	span.SetAttributes(attribute.Int("listing.result.count", len(result)))
	return result, nil
}

// FindByBreed searches available listings by breed fragment.
func (s *Service) FindByBreed(ctx context.Context, breed string) ([]*ports.ListingProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.FindByBreed", attribute.String("listing.breed.requested", breed))
	defer span.End()

	result, err := s.inner.FindByBreed(ctx, breed)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to search listings by breed", slog.String("breed", breed))
	}
	span.SetAttributes(attribute.Int("listing.result.count", len(result)))
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
	created metric.Int64Counter
	updated metric.Int64Counter
	deleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("listings.service.created", metric.WithDescription("Number of listings created"))
	updated, _ := m.Int64Counter("listings.service.updated", metric.WithDescription("Number of listings updated"))
	deleted, _ := m.Int64Counter("listings.service.deleted", metric.WithDescription("Number of listings deleted"))
	return serviceMetrics{created: created, updated: updated, deleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.created, 1, attribute.String("listing.status", string(status)))
}

func (m serviceMetrics) recordUpdated(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.updated, 1, attribute.String("listing.status", string(status)))
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	addCounter(ctx, m.deleted, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
