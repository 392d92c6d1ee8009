package application

import (
	"context"

	"restaurant-orders/internal/domains/stream/domain"
	"restaurant-orders/internal/domains/stream/ports"
	"restaurant-orders/internal/shared/locking"
)

var _ ports.Dispatcher = (*Dispatcher)(nil)

// Dispatcher relays committed mutations into the registry. It holds a
// per-restaurant lock for the duration of the fan-out, so two publishes
// for the same restaurant can never overtake each other; publishes for
// different restaurants proceed independently.
type Dispatcher struct {
	registry ports.Registry
	locks    *locking.KeyedMutex
}

func NewDispatcher(registry ports.Registry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		locks:    locking.NewKeyedMutex(),
	}
}

// Publish hands the event to the registry synchronously. Slow
// subscribers are bounded by their own send timeout, after which the
// registry drops them, so a stalled connection cannot wedge the
// restaurant's event sequence.
func (d *Dispatcher) Publish(ctx context.Context, restaurantID string, event domain.Event) {
	unlock := d.locks.Lock(restaurantID)
	defer unlock()
	d.registry.Fanout(ctx, restaurantID, event)
}
