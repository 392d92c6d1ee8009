package sse

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"restaurant-orders/internal/domains/stream/domain"
	"restaurant-orders/internal/domains/stream/ports"
)

var _ ports.Subscriber = (*Subscriber)(nil)

// Subscriber is a channel-backed handle for one SSE connection. Sends
// block at most sendTimeout; a timed-out or closed handle reports an
// error so the registry drops it.
type Subscriber struct {
	id           string
	restaurantID string
	events       chan domain.Event
	closed       chan struct{}
	closeOnce    sync.Once
	sendTimeout  time.Duration
}

func NewSubscriber(restaurantID string, buffer int, sendTimeout time.Duration) *Subscriber {
	if buffer < 1 {
		buffer = 1
	}
	return &Subscriber{
		id:           uuid.NewString(),
		restaurantID: restaurantID,
		events:       make(chan domain.Event, buffer),
		closed:       make(chan struct{}),
		sendTimeout:  sendTimeout,
	}
}

func (s *Subscriber) ID() string           { return s.id }
func (s *Subscriber) RestaurantID() string { return s.restaurantID }

// Events is drained by the connection's streaming loop.
func (s *Subscriber) Events() <-chan domain.Event { return s.events }

func (s *Subscriber) Send(ctx context.Context, event domain.Event) error {
	timer := time.NewTimer(s.sendTimeout)
	defer timer.Stop()
	select {
	case <-s.closed:
		return ports.ErrSubscriberClosed
	default:
	}
	select {
	case s.events <- event:
		return nil
	case <-s.closed:
		return ports.ErrSubscriberClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ports.ErrSendTimeout
	}
}

// Close is idempotent; concurrent Sends unblock with an error.
func (s *Subscriber) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
}
