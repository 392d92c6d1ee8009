package ports

import (
	"context"

	"restaurant-orders/internal/domains/identity/domain"
)

// Session pairs an issued bearer token with its user.
type Session struct {
	Token string
	User  *domain.User
}

// Service exposes demo-auth use cases.
type Service interface {
	// DemoLogin upserts the user and issues a fresh bearer token. A
	// restaurant-role user gets their restaurant created on first
	// login.
	DemoLogin(ctx context.Context, email, name string, role domain.Role) (*Session, error)
	// Authenticate resolves a bearer token to its user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	// AuthorizeRestaurant authenticates and additionally requires the
	// restaurant role scoped to the given restaurant.
	AuthorizeRestaurant(ctx context.Context, token, restaurantID string) (*domain.User, error)
}
