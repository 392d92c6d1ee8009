// Package domain defines the wire-level live-update event model.
// Events are ephemeral notifications: they are never persisted and
// never replayed to late subscribers, who rely on an initial snapshot
// fetch instead.
package domain

// EventType tags the payload so clients can dispatch without
// inspecting the rest of the message.
type EventType string

const (
	EventNewOrder      EventType = "new_order"
	EventStatusChanged EventType = "status_changed"
)

// Event is the serialized payload pushed to subscribers. Status is
// only set for status_changed events.
type Event struct {
	Type    EventType `json:"type"`
	OrderID string    `json:"order_id"`
	Status  string    `json:"status,omitempty"`
}
