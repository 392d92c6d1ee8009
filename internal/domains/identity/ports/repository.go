package ports

import (
	"context"
	"errors"
	"time"

	"restaurant-orders/internal/domains/identity/domain"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidToken = errors.New("token is missing, unknown, or expired")
	ErrWrongScope   = errors.New("credential does not grant access to this restaurant")
)

// Repository persists demo users keyed by email.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}

// TokenStore persists bearer tokens with their expiry.
type TokenStore interface {
	Save(ctx context.Context, token, email string, expiresAt time.Time) error
	// Lookup resolves a live token to the owning email. Expired or
	// unknown tokens yield ErrInvalidToken.
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
	// PurgeExpired drops expired tokens and reports how many went.
	PurgeExpired(ctx context.Context) int
}
