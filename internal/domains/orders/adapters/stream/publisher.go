// Package stream translates order domain events into the wire-level
// live-update events the dispatcher fans out.
package stream

import (
	"context"

	ordersdomain "restaurant-orders/internal/domains/orders/domain"
	ordersports "restaurant-orders/internal/domains/orders/ports"
	streamdomain "restaurant-orders/internal/domains/stream/domain"
	streamports "restaurant-orders/internal/domains/stream/ports"
)

var _ ordersports.EventPublisher = (*Publisher)(nil)

// Publisher adapts the orders EventPublisher port onto the dispatcher.
type Publisher struct {
	dispatcher streamports.Dispatcher
}

func NewPublisher(dispatcher streamports.Dispatcher) *Publisher {
	return &Publisher{dispatcher: dispatcher}
}

// Publish maps the domain event to its wire shape. Events without a
// wire representation are dropped; subscribers only ever see the tagged
// payloads the stream contract names.
func (p *Publisher) Publish(ctx context.Context, restaurantID string, event ordersdomain.Event) {
	switch e := event.(type) {
	case ordersdomain.OrderPlaced:
		p.dispatcher.Publish(ctx, restaurantID, streamdomain.Event{
			Type:    streamdomain.EventNewOrder,
			OrderID: e.OrderID,
		})
	case ordersdomain.OrderStatusChanged:
		p.dispatcher.Publish(ctx, restaurantID, streamdomain.Event{
			Type:    streamdomain.EventStatusChanged,
			OrderID: e.OrderID,
			Status:  string(e.To),
		})
	}
}
