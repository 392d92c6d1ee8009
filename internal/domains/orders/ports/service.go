package ports

import (
	"context"

	"restaurant-orders/internal/domains/orders/domain"
)

// CreateOrderInput carries the order-creation use case parameters.
type CreateOrderInput struct {
	RestaurantID string
	Items        []domain.LineItem
	Note         string
}

// Service exposes order use cases to adapters.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Order, error)
	SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
}
