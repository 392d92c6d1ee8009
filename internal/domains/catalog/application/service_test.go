package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders/internal/domains/catalog/adapters/memory"
	"restaurant-orders/internal/domains/catalog/domain"
	"restaurant-orders/internal/domains/catalog/ports"
)

func TestCreateRestaurant_GetsStarterMenu(t *testing.T) {
	svc := NewService(memory.NewRepository())
	ctx := context.Background()

	restaurant, err := svc.CreateRestaurant(ctx, "Chez Demo")
	require.NoError(t, err)
	assert.Equal(t, "Chez Demo", restaurant.Name)

	menu, err := svc.GetMenu(ctx, restaurant.ID)
	require.NoError(t, err)
	require.NotEmpty(t, menu)
	for _, item := range menu {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Name)
		assert.GreaterOrEqual(t, item.PriceCents, int64(0))
	}
}

func TestCreateRestaurant_EmptyName(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.CreateRestaurant(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestListRestaurants_PreservesCreationOrder(t *testing.T) {
	svc := NewService(memory.NewRepository())
	ctx := context.Background()

	first, err := svc.CreateRestaurant(ctx, "First")
	require.NoError(t, err)
	second, err := svc.CreateRestaurant(ctx, "Second")
	require.NoError(t, err)

	list, err := svc.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestGetMenu_UnknownRestaurant(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.GetMenu(context.Background(), "nope")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestProvisionRestaurant_NamesAfterOwner(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo)
	ctx := context.Background()

	id, err := svc.ProvisionRestaurant(ctx, "Chef")
	require.NoError(t, err)

	restaurant, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Chef's Kitchen", restaurant.Name)
}

func TestSeededRepository_HasDemoVenues(t *testing.T) {
	svc := NewService(memory.NewSeededRepository())
	ctx := context.Background()

	list, err := svc.ListRestaurants(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)

	menu, err := svc.GetMenu(ctx, list[0].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, menu)
}
