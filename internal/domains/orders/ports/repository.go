package ports

import (
	"context"
	"errors"

	"restaurant-orders/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders and maintains the per-restaurant index.
// Transition policy is not its concern; callers validate before
// UpdateStatus.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// ListByRestaurant returns the restaurant's orders in creation
	// order. Unknown restaurants yield an empty slice, not an error.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
}
