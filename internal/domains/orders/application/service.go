package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"restaurant-orders/internal/domains/orders/domain"
	"restaurant-orders/internal/domains/orders/ports"
	"restaurant-orders/internal/shared/locking"
)

// Service orchestrates order use cases. Two locks uphold the delivery
// contract: orderLocks serializes mutations per order id (at most one
// in-flight status change per order), and commitLocks is held across
// store commit plus event publish so per-restaurant event order always
// matches commit order. Lock order is order first, then restaurant.
type Service struct {
	repo        ports.Repository
	events      ports.EventPublisher
	orderLocks  *locking.KeyedMutex
	commitLocks *locking.KeyedMutex
	now         func() time.Time
}

type Option func(*Service)

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo ports.Repository, events ports.EventPublisher, opts ...Option) *Service {
	if events == nil {
		events = ports.NoopPublisher
	}
	s := &Service{
		repo:        repo,
		events:      events,
		orderLocks:  locking.NewKeyedMutex(),
		commitLocks: locking.NewKeyedMutex(),
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	now := s.now()
	order, err := domain.NewOrder(uuid.NewString(), input.RestaurantID, input.Items, input.Note, now)
	if err != nil {
		return nil, mapError(err)
	}

	unlock := s.commitLocks.Lock(order.RestaurantID)
	defer unlock()

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	s.events.Publish(ctx, created.RestaurantID, domain.OrderPlaced{
		BaseEvent:    domain.BaseEvent{Timestamp: now},
		OrderID:      created.ID,
		RestaurantID: created.RestaurantID,
		TotalCents:   created.TotalCents(),
	})
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Order, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

func (s *Service) SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	unlockOrder := s.orderLocks.Lock(id)
	defer unlockOrder()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Transition(current.Status, status); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRejected, err)
	}

	unlockCommit := s.commitLocks.Lock(current.RestaurantID)
	defer unlockCommit()

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.events.Publish(ctx, updated.RestaurantID, domain.OrderStatusChanged{
		BaseEvent:    domain.BaseEvent{Timestamp: s.now()},
		OrderID:      updated.ID,
		RestaurantID: updated.RestaurantID,
		From:         current.Status,
		To:           updated.Status,
	})
	return updated, nil
}

var _ ports.Service = (*Service)(nil)
