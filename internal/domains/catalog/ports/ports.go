package ports

import (
	"context"
	"errors"

	"restaurant-orders/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("restaurant not found")

// Repository persists restaurants and their menus.
type Repository interface {
	Save(ctx context.Context, restaurant *domain.Restaurant, menu []domain.MenuItem) (*domain.Restaurant, error)
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	// List returns restaurants in creation order.
	List(ctx context.Context) ([]*domain.Restaurant, error)
	GetMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
}

// Service exposes catalog use cases to adapters.
type Service interface {
	ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error)
	GetMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	CreateRestaurant(ctx context.Context, name string) (*domain.Restaurant, error)
}
