package domain

import "time"

// Event is the base interface for order domain events.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent provides common event metadata.
type BaseEvent struct {
	Timestamp time.Time
}

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// OrderPlaced is raised after a new order is committed to the store.
type OrderPlaced struct {
	BaseEvent
	OrderID      string
	RestaurantID string
	TotalCents   int64
}

// EventName returns the event type identifier.
func (e OrderPlaced) EventName() string {
	return "orders.order.placed"
}

// OrderStatusChanged is raised after a status transition is committed.
type OrderStatusChanged struct {
	BaseEvent
	OrderID      string
	RestaurantID string
	From         Status
	To           Status
}

// EventName returns the event type identifier.
func (e OrderStatusChanged) EventName() string {
	return "orders.order.status_changed"
}
