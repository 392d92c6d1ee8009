package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders/internal/domains/orders/adapters/memory"
	"restaurant-orders/internal/domains/orders/domain"
	"restaurant-orders/internal/domains/orders/ports"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, event domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) all() []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Event(nil), p.events...)
}

func newTestService() (*Service, *recordingPublisher) {
	pub := &recordingPublisher{}
	return NewService(memory.NewRepository(), pub), pub
}

func exampleInput() ports.CreateOrderInput {
	return ports.CreateOrderInput{
		RestaurantID: "r1",
		Items: []domain.LineItem{
			{ItemID: "i1", Name: "Pizza", Quantity: 2, UnitPriceCents: 500},
			{ItemID: "i2", Name: "Salad", Quantity: 1, UnitPriceCents: 300},
		},
	}
}

func TestCreate_ComputesTotalAndPublishes(t *testing.T) {
	svc, pub := newTestService()

	order, err := svc.Create(context.Background(), exampleInput())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.StatusPlaced, order.Status)
	assert.Equal(t, int64(1300), order.TotalCents())

	events := pub.all()
	require.Len(t, events, 1)
	placed, ok := events[0].(domain.OrderPlaced)
	require.True(t, ok)
	assert.Equal(t, order.ID, placed.OrderID)
	assert.Equal(t, int64(1300), placed.TotalCents)
}

func TestCreate_InvalidInputLeavesStoreUntouchedAndSilent(t *testing.T) {
	repo := memory.NewRepository()
	pub := &recordingPublisher{}
	svc := NewService(repo, pub)
	ctx := context.Background()

	input := exampleInput()
	input.Items[0].Quantity = 0
	_, err := svc.Create(ctx, input)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	list, err := repo.ListByRestaurant(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, pub.all())
}

func TestSetStatus_PublishesInCommitOrder(t *testing.T) {
	svc, pub := newTestService()
	ctx := context.Background()

	order, err := svc.Create(ctx, exampleInput())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, order.ID, domain.StatusAccepted)
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, order.ID, domain.StatusPreparing)
	require.NoError(t, err)

	events := pub.all()
	require.Len(t, events, 3)
	first, ok := events[1].(domain.OrderStatusChanged)
	require.True(t, ok)
	second, ok := events[2].(domain.OrderStatusChanged)
	require.True(t, ok)
	assert.Equal(t, domain.StatusAccepted, first.To)
	assert.Equal(t, domain.StatusPlaced, first.From)
	assert.Equal(t, domain.StatusPreparing, second.To)
	assert.Equal(t, domain.StatusAccepted, second.From)
}

func TestSetStatus_RejectedEmitsNoEvent(t *testing.T) {
	svc, pub := newTestService()
	ctx := context.Background()

	order, err := svc.Create(ctx, exampleInput())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, order.ID, domain.StatusCompleted)
	require.NoError(t, err)
	before := len(pub.all())

	_, err = svc.SetStatus(ctx, order.ID, domain.StatusPreparing)
	require.ErrorIs(t, err, ErrRejected)
	require.ErrorIs(t, err, domain.ErrTerminalState)

	// The rejected mutation must not change state or emit anything.
	current, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, current.Status)
	assert.Len(t, pub.all(), before)
}

func TestSetStatus_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SetStatus(context.Background(), "missing", domain.StatusAccepted)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

// Mirrors the workflow a dashboard drives: place, skip to preparing,
// complete, then attempt to reopen.
func TestOrderLifecycleScenario(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	order, err := svc.Create(ctx, ports.CreateOrderInput{
		RestaurantID: "r1",
		Items: []domain.LineItem{
			{ItemID: "i1", Name: "Pizza", Quantity: 2, UnitPriceCents: 500},
			{ItemID: "i2", Name: "Salad", Quantity: 1, UnitPriceCents: 300},
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1300), order.TotalCents())
	require.Equal(t, domain.StatusPlaced, order.Status)

	updated, err := svc.SetStatus(ctx, order.ID, domain.StatusPreparing)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPreparing, updated.Status)

	_, err = svc.SetStatus(ctx, order.ID, domain.StatusCompleted)
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, order.ID, domain.StatusPreparing)
	require.ErrorIs(t, err, domain.ErrTerminalState)
	assert.Equal(t, domain.ReasonTerminalState, domain.RejectionReason(err))
}

func TestSetStatus_ConcurrentChangesSerialize(t *testing.T) {
	svc, pub := newTestService()
	ctx := context.Background()

	order, err := svc.Create(ctx, exampleInput())
	require.NoError(t, err)

	statuses := []domain.Status{domain.StatusAccepted, domain.StatusPreparing, domain.StatusReady, domain.StatusCompleted}
	var wg sync.WaitGroup
	for _, status := range statuses {
		wg.Add(1)
		go func(status domain.Status) {
			defer wg.Done()
			_, _ = svc.SetStatus(ctx, order.ID, status)
		}(status)
	}
	wg.Wait()

	// Whatever interleaving won, every published change must be a
	// valid edge of the transition graph.
	for _, ev := range pub.all() {
		if changed, ok := ev.(domain.OrderStatusChanged); ok {
			assert.NoError(t, domain.Transition(changed.From, changed.To),
				"published %s -> %s", changed.From, changed.To)
		}
	}
}
