package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"restaurant-orders/internal/domains/catalog/domain"
	"restaurant-orders/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the in-memory catalog store. Restaurants keep their
// creation order for stable listings.
type Repository struct {
	mu          sync.RWMutex
	restaurants map[string]*domain.Restaurant
	order       []string
	menus       map[string][]domain.MenuItem
}

func NewRepository() *Repository {
	return &Repository{
		restaurants: map[string]*domain.Restaurant{},
		menus:       map[string][]domain.MenuItem{},
	}
}

// NewSeededRepository returns a repository preloaded with demo venues.
func NewSeededRepository() *Repository {
	repo := NewRepository()
	ctx := context.Background()
	seeds := []struct {
		name string
		menu []domain.MenuItem
	}{
		{
			name: "Blue Flame Grill",
			menu: []domain.MenuItem{
				{Name: "Flame-Grilled Ribs", PriceCents: 1800},
				{Name: "Smoked Brisket Plate", PriceCents: 1600},
				{Name: "Charred Corn", PriceCents: 500},
				{Name: "Iced Tea", PriceCents: 300},
			},
		},
		{
			name: "Pizzeria Vesuvio",
			menu: []domain.MenuItem{
				{Name: "Margherita", PriceCents: 900},
				{Name: "Diavola", PriceCents: 1100},
				{Name: "Quattro Formaggi", PriceCents: 1200},
				{Name: "Tiramisu", PriceCents: 600},
			},
		},
	}
	for _, seed := range seeds {
		restaurant, err := domain.NewRestaurant(uuid.NewString(), seed.name)
		if err != nil {
			continue
		}
		menu := make([]domain.MenuItem, len(seed.menu))
		for i, item := range seed.menu {
			item.ID = uuid.NewString()
			menu[i] = item
		}
		_, _ = repo.Save(ctx, restaurant, menu)
	}
	return repo
}

func (r *Repository) Save(_ context.Context, restaurant *domain.Restaurant, menu []domain.MenuItem) (*domain.Restaurant, error) {
	if restaurant == nil {
		return nil, errors.New("restaurant is nil")
	}
	if err := domain.ValidateMenu(menu); err != nil {
		return nil, err
	}
	clone := *restaurant
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.restaurants[clone.ID]; !exists {
		r.order = append(r.order, clone.ID)
	}
	r.restaurants[clone.ID] = &clone
	r.menus[clone.ID] = append([]domain.MenuItem(nil), menu...)
	out := clone
	return &out, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *restaurant
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Restaurant, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.restaurants[id]
		list = append(list, &clone)
	}
	return list, nil
}

func (r *Repository) GetMenu(_ context.Context, restaurantID string) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	menu, ok := r.menus[restaurantID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return append([]domain.MenuItem(nil), menu...), nil
}
