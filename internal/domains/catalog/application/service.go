package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"restaurant-orders/internal/domains/catalog/domain"
	"restaurant-orders/internal/domains/catalog/ports"
)

// starterMenu seeds a freshly provisioned restaurant so the demo UI
// has something to order right away.
var starterMenu = []domain.MenuItem{
	{Name: "Margherita Pizza", PriceCents: 900},
	{Name: "House Burger", PriceCents: 1100},
	{Name: "Caesar Salad", PriceCents: 700},
	{Name: "Lemonade", PriceCents: 300},
}

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	return s.repo.GetMenu(ctx, restaurantID)
}

func (s *Service) CreateRestaurant(ctx context.Context, name string) (*domain.Restaurant, error) {
	restaurant, err := domain.NewRestaurant(uuid.NewString(), name)
	if err != nil {
		return nil, err
	}
	menu := make([]domain.MenuItem, len(starterMenu))
	for i, item := range starterMenu {
		item.ID = uuid.NewString()
		menu[i] = item
	}
	return s.repo.Save(ctx, restaurant, menu)
}

// ProvisionRestaurant adapts CreateRestaurant for the identity context,
// which only needs the new id.
func (s *Service) ProvisionRestaurant(ctx context.Context, ownerName string) (string, error) {
	restaurant, err := s.CreateRestaurant(ctx, fmt.Sprintf("%s's Kitchen", ownerName))
	if err != nil {
		return "", err
	}
	return restaurant.ID, nil
}

var _ ports.Service = (*Service)(nil)
