package application

import (
	"context"
	"log/slog"
	"sync"

	"restaurant-orders/internal/domains/stream/domain"
	"restaurant-orders/internal/domains/stream/ports"
)

var _ ports.Registry = (*Registry)(nil)

// Registry is the in-memory subscriber registry. Buckets are keyed by
// restaurant id; mutation and fan-out are safe under concurrent use.
type Registry struct {
	mu      sync.RWMutex
	buckets map[string]map[ports.Subscriber]struct{}
	logger  *slog.Logger
}

type RegistryOption func(*Registry)

// WithLogger injects a slog logger for delivery diagnostics.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{buckets: map[string]map[ports.Subscriber]struct{}{}}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Subscribe registers the handle under its restaurant bucket.
func (r *Registry) Subscribe(sub ports.Subscriber) {
	if sub == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	bucket, ok := r.buckets[sub.RestaurantID()]
	if !ok {
		bucket = map[ports.Subscriber]struct{}{}
		r.buckets[sub.RestaurantID()] = bucket
	}
	bucket[sub] = struct{}{}
}

// Unsubscribe removes the handle. Removing an unknown or already
// removed handle is a no-op, which absorbs disconnect races.
func (r *Registry) Unsubscribe(sub ports.Subscriber) {
	if sub == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	bucket, ok := r.buckets[sub.RestaurantID()]
	if !ok {
		return
	}
	delete(bucket, sub)
	if len(bucket) == 0 {
		delete(r.buckets, sub.RestaurantID())
	}
}

// Count reports the live subscriber count for a restaurant.
func (r *Registry) Count(restaurantID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.buckets[restaurantID])
}

// Fanout delivers the event to a snapshot of the restaurant's bucket.
// Each subscriber sees either the old or the new membership, never a
// torn read. A failed delivery drops that handle and moves on.
func (r *Registry) Fanout(ctx context.Context, restaurantID string, event domain.Event) {
	r.mu.RLock()
	bucket := r.buckets[restaurantID]
	subs := make([]ports.Subscriber, 0, len(bucket))
	for sub := range bucket {
		subs = append(subs, sub)
	}
	r.mu.RUnlock()

	for _, sub := range subs {
		if err := sub.Send(ctx, event); err != nil {
			r.Unsubscribe(sub)
			sub.Close()
			if r.logger != nil {
				r.logger.Warn("dropping subscriber after failed delivery",
					slog.String("subscriber.id", sub.ID()),
					slog.String("restaurant.id", restaurantID),
					slog.String("event.type", string(event.Type)),
					slog.String("error", err.Error()))
			}
		}
	}
}
