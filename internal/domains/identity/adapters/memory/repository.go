package memory

import (
	"context"
	"sync"

	"restaurant-orders/internal/domains/identity/domain"
	"restaurant-orders/internal/domains/identity/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory user store keyed by email.
type Repository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewRepository() *Repository {
	return &Repository{users: map[string]*domain.User{}}
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[email]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *Repository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}
	clone := *user
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[clone.Email] = &clone
	out := clone
	return &out, nil
}
