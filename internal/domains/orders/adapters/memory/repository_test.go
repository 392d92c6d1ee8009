package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders/internal/domains/orders/domain"
	"restaurant-orders/internal/domains/orders/ports"
)

func newOrder(t *testing.T, id, restaurantID string) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(id, restaurantID, []domain.LineItem{
		{ItemID: "i1", Name: "Pizza", Quantity: 1, UnitPriceCents: 900},
	}, "", time.Now().UTC())
	require.NoError(t, err)
	return order
}

func TestCreateAndGet(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newOrder(t, "o1", "r1"))
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, domain.StatusPlaced, fetched.Status)
}

func TestCreate_DuplicateID(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newOrder(t, "o1", "r1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newOrder(t, "o1", "r1"))
	require.Error(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := NewRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListByRestaurant_OrderAndIsolation(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, newOrder(t, fmt.Sprintf("a%d", i), "r1"))
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, newOrder(t, "other", "r2"))
	require.NoError(t, err)

	list, err := repo.ListByRestaurant(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i, order := range list {
		assert.Equal(t, fmt.Sprintf("a%d", i), order.ID)
		assert.Equal(t, "r1", order.RestaurantID)
	}

	empty, err := repo.ListByRestaurant(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateStatus(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newOrder(t, "o1", "r1"))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID, domain.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = repo.UpdateStatus(ctx, "missing", domain.StatusReady)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestClonesAreDefensive(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newOrder(t, "o1", "r1"))
	require.NoError(t, err)
	created.Items[0].Quantity = 99
	created.Status = domain.StatusCancelled

	fetched, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.Items[0].Quantity)
	assert.Equal(t, domain.StatusPlaced, fetched.Status)
}
