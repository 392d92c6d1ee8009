package ports

import (
	"context"
	"errors"

	"restaurant-orders/internal/domains/stream/domain"
)

var (
	// ErrSubscriberClosed reports a send to a closed handle.
	ErrSubscriberClosed = errors.New("subscriber is closed")
	// ErrSendTimeout reports a subscriber that did not accept the
	// event within the configured deadline.
	ErrSendTimeout = errors.New("subscriber send timed out")
)

// Subscriber is an opaque sink for one live connection, scoped to a
// single restaurant for its whole lifetime.
type Subscriber interface {
	ID() string
	RestaurantID() string
	// Send delivers one event with a bounded wait. A non-nil error
	// marks the handle as undeliverable; the registry drops it.
	Send(ctx context.Context, event domain.Event) error
	// Close releases the handle. Safe to call more than once.
	Close()
}

// Registry tracks live subscribers per restaurant.
type Registry interface {
	Subscribe(sub Subscriber)
	// Unsubscribe is idempotent: removing an already-removed handle
	// is a no-op.
	Unsubscribe(sub Subscriber)
	// Fanout delivers the event to every current subscriber of the
	// restaurant, best effort. A failing handle is removed without
	// blocking delivery to the others.
	Fanout(ctx context.Context, restaurantID string, event domain.Event)
}

// Dispatcher is the single funnel between committed mutations and the
// registry. Per restaurant, events reach subscribers in publish order.
type Dispatcher interface {
	Publish(ctx context.Context, restaurantID string, event domain.Event)
}
