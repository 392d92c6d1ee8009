//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"restaurant-orders/internal/domains/orders/domain"
	"restaurant-orders/internal/domains/orders/ports"
	"restaurant-orders/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("orders_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func newOrder(t *testing.T, restaurantID string) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(uuid.NewString(), restaurantID, []domain.LineItem{
		{ItemID: uuid.NewString(), Name: "Margherita", Quantity: 2, UnitPriceCents: 900},
		{ItemID: uuid.NewString(), Name: "Tiramisu", Quantity: 1, UnitPriceCents: 600},
	}, "no basil", time.Now().UTC())
	require.NoError(t, err)
	return order
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	order := newOrder(t, "r1")
	saved, err := repo.Create(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, order.ID, saved.ID)
	assert.Equal(t, domain.StatusPlaced, saved.Status)

	fetched, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, order.Items, fetched.Items)
	assert.Equal(t, int64(2400), fetched.TotalCents())
}

func TestRepository_UpdateStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	order := newOrder(t, "r1")
	_, err := repo.Create(ctx, order)
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, order.ID, domain.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, updated.Status)

	_, err = repo.UpdateStatus(ctx, uuid.NewString(), domain.StatusAccepted)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_ListByRestaurantKeepsCreationOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		order := newOrder(t, "r1")
		_, err := repo.Create(ctx, order)
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}
	_, err := repo.Create(ctx, newOrder(t, "r2"))
	require.NoError(t, err)

	list, err := repo.ListByRestaurant(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, order := range list {
		assert.Equal(t, ids[i], order.ID)
	}

	empty, err := repo.ListByRestaurant(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
