package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	routesdomain "github.com/pickbotics/storefront/internal/domains/routes/domain"
	routesports "github.com/pickbotics/storefront/internal/domains/routes/ports"
)

const tracerName = "github.com/pickbotics/storefront/internal/domains/routes/adapters/observability/service"

// Service decorates the route service with tracing, logging, and metrics.
type Service struct {
	inner   routesports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core route service.
func New(inner routesports.Service, opts ...Option) routesports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
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
	return s
}

func (s *Service) Routes(ctx context.Context, orderID int64, parallel bool) ([]*routesdomain.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "RouteService.Routes",
		trace.WithAttributes(
			attribute.Int64("order.id", orderID),
			attribute.Bool("routes.parallel", parallel),
		))
	defer span.End()

	s.logInfo(ctx, "planning routes", slog.Int64("order.id", orderID), slog.Bool("routes.parallel", parallel))
	plans, err := s.inner.Routes(ctx, orderID, parallel)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if s.logger != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "failed to plan routes",
				slog.Int64("order.id", orderID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	span.SetAttributes(attribute.Int("routes.count", len(plans)))
	s.metrics.recordPlanning(ctx, parallel)
	s.logInfo(ctx, "routes planned", slog.Int64("order.id", orderID), slog.Int("routes.count", len(plans)))
	return plans, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

type serviceMetrics struct {
	plannings metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	plannings, _ := m.Int64Counter("routes.service.plannings", metric.WithDescription("Number of route planning runs"))
	return serviceMetrics{plannings: plannings}
}

func (m serviceMetrics) recordPlanning(ctx context.Context, parallel bool) {
	if m.plannings != nil {
		m.plannings.Add(ctx, 1, metric.WithAttributes(attribute.Bool("routes.parallel", parallel)))
	}
}

var _ routesports.Service = (*Service)(nil)
