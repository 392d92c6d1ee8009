package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"restaurant-orders/internal/domains/orders/domain"
	"restaurant-orders/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the in-memory order store: a primary map by order id
// plus a per-restaurant index that preserves insertion order for
// stable listings.
type Repository struct {
	mu           sync.RWMutex
	orders       map[string]*domain.Order
	byRestaurant map[string][]string
}

func NewRepository() *Repository {
	return &Repository{
		orders:       map[string]*domain.Order{},
		byRestaurant: map[string][]string{},
	}
}

func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	clone := order.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[clone.ID]; exists {
		return nil, errors.New("order id already exists")
	}
	r.orders[clone.ID] = clone
	r.byRestaurant[clone.RestaurantID] = append(r.byRestaurant[clone.RestaurantID], clone.ID)
	return clone.Clone(), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

func (r *Repository) ListByRestaurant(_ context.Context, restaurantID string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byRestaurant[restaurantID]
	list := make([]*domain.Order, 0, len(ids))
	for _, id := range ids {
		list = append(list, r.orders[id].Clone())
	}
	return list, nil
}

func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	return order.Clone(), nil
}
