package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersdomain "github.com/pickbotics/storefront/internal/domains/orders/domain"
	ordersports "github.com/pickbotics/storefront/internal/domains/orders/ports"
)

const tracerName = "github.com/pickbotics/storefront/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
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

// New wraps the core order service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
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

func (s *Service) PlaceOrder(ctx context.Context, lines []ordersdomain.OrderLine) (*ordersdomain.Placement, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder",
		trace.WithAttributes(attribute.Int("order.lines", len(lines))))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.Int("order.lines", len(lines)))
	placement, err := s.inner.PlaceOrder(ctx, lines)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order")
	}
	span.SetAttributes(attribute.String("order.status", string(placement.Status)))
	s.metrics.recordPlacement(ctx, string(placement.Status))
	if placement.Status == ordersdomain.StatusSuccess {
		s.logInfo(ctx, "order placed", slog.Int64("order.id", placement.OrderID))
	} else {
		s.logInfo(ctx, "order rejected", slog.Int("order.missing", len(placement.MissingItems)))
	}
	return placement, nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.FindByID",
		trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	order, err := s.inner.FindByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	return order, nil
}

func (s *Service) FindAll(ctx context.Context) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.FindAll")
	defer span.End()

	orders, err := s.inner.FindAll(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(orders)))
	return orders, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	placements metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	placements, _ := m.Int64Counter("orders.service.placements", metric.WithDescription("Number of order placements by outcome"))
	return serviceMetrics{placements: placements}
}

func (m serviceMetrics) recordPlacement(ctx context.Context, status string) {
	if m.placements != nil {
		m.placements.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", status)))
	}
}

var _ ordersports.Service = (*Service)(nil)
