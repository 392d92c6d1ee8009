package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"restaurant-orders/internal/domains/orders/application"
	"restaurant-orders/internal/domains/orders/domain"
	"restaurant-orders/internal/domains/orders/ports"
)

const tracerName = "restaurant-orders/internal/domains/orders/adapters/observability/service"

// Service decorates the orders application service with tracing,
// logging, and metrics.
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

// Create places a new order with instrumentation.
func (s *Service) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.Create",
		attribute.String("restaurant.id", input.RestaurantID),
		attribute.Int("order.items.count", len(input.Items)),
	)
	defer span.End()

	s.logInfo(ctx, "placing order", slog.String("restaurant.id", input.RestaurantID))
	order, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.String("restaurant.id", input.RestaurantID))
	}
	span.SetAttributes(attribute.String("order.id", order.ID))
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "order placed",
		slog.String("order.id", order.ID),
		slog.String("restaurant.id", order.RestaurantID),
		slog.Int64("order.total_cents", order.TotalCents()))
	return order, nil
}

// Get loads a single order.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.Get", attribute.String("order.id", id))
	defer span.End()

	order, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id))
	}
	return order, nil
}

// ListByRestaurant returns a restaurant's orders in creation order.
func (s *Service) ListByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.ListByRestaurant", attribute.String("restaurant.id", restaurantID))
	defer span.End()

	orders, err := s.inner.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders", slog.String("restaurant.id", restaurantID))
	}
	span.SetAttributes(attribute.Int("order.result.count", len(orders)))
	return orders, nil
}

// SetStatus applies a status transition with instrumentation. Rejected
// transitions are recorded as a metric, not as span errors; they are a
// normal outcome of the transition rules.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.SetStatus",
		attribute.String("order.id", id),
		attribute.String("order.status.requested", string(status)),
	)
	defer span.End()

	s.logInfo(ctx, "changing order status", slog.String("order.id", id), slog.String("status", string(status)))
	order, err := s.inner.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, application.ErrRejected) {
			reason := domain.RejectionReason(err)
			span.SetAttributes(attribute.String("order.transition.rejected", reason))
			s.metrics.recordRejected(ctx, reason)
			s.logInfo(ctx, "order status change rejected",
				slog.String("order.id", id),
				slog.String("status", string(status)),
				slog.String("reason", reason))
			return nil, err
		}
		return nil, s.handleError(ctx, span, err, "failed to change order status", slog.String("order.id", id))
	}
	s.metrics.recordStatusChanged(ctx, order.Status)
	s.logInfo(ctx, "order status changed",
		slog.String("order.id", order.ID),
		slog.String("status", string(order.Status)))
	return order, nil
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
	ordersCreated metric.Int64Counter
	statusChanges metric.Int64Counter
	rejectedMoves metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersCreated, _ := m.Int64Counter("orders.service.created", metric.WithDescription("Number of orders placed"))
	statusChanges, _ := m.Int64Counter("orders.service.status_changed", metric.WithDescription("Number of committed status transitions"))
	rejectedMoves, _ := m.Int64Counter("orders.service.transition_rejected", metric.WithDescription("Number of rejected status transitions"))
	return serviceMetrics{
		ordersCreated: ordersCreated,
		statusChanges: statusChanges,
		rejectedMoves: rejectedMoves,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	addCounter(ctx, m.ordersCreated, 1)
}

func (m serviceMetrics) recordStatusChanged(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.statusChanges, 1, attribute.String("order.status", string(status)))
}

func (m serviceMetrics) recordRejected(ctx context.Context, reason string) {
	addCounter(ctx, m.rejectedMoves, 1, attribute.String("order.rejection.reason", reason))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
