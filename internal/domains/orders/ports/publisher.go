package ports

import (
	"context"

	"restaurant-orders/internal/domains/orders/domain"
)

// EventPublisher hands committed mutations to the live-update fan-out.
// Publishing is fire-and-forget: delivery failures are contained
// downstream and never fail the triggering mutation.
type EventPublisher interface {
	Publish(ctx context.Context, restaurantID string, event domain.Event)
}

// NoopPublisher is a safe default when callers do not need live updates.
var NoopPublisher EventPublisher = noopPublisher{}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _ string, _ domain.Event) {}
