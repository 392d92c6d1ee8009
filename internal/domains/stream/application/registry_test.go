package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders/internal/domains/stream/domain"
)

type fakeSubscriber struct {
	mu           sync.Mutex
	id           string
	restaurantID string
	received     []domain.Event
	failWith     error
	closed       bool
}

func newFakeSubscriber(id, restaurantID string) *fakeSubscriber {
	return &fakeSubscriber{id: id, restaurantID: restaurantID}
}

func (f *fakeSubscriber) ID() string           { return f.id }
func (f *fakeSubscriber) RestaurantID() string { return f.restaurantID }

func (f *fakeSubscriber) Send(_ context.Context, ev domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.received = append(f.received, ev)
	return nil
}

func (f *fakeSubscriber) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeSubscriber) events() []domain.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Event(nil), f.received...)
}

func TestRegistry_FanoutDeliversToRestaurantOnly(t *testing.T) {
	reg := NewRegistry()
	subA := newFakeSubscriber("a", "r1")
	subB := newFakeSubscriber("b", "r2")
	reg.Subscribe(subA)
	reg.Subscribe(subB)

	reg.Fanout(context.Background(), "r1", domain.Event{Type: domain.EventNewOrder, OrderID: "o1"})

	require.Len(t, subA.events(), 1)
	assert.Empty(t, subB.events())
}

func TestRegistry_UnsubscribeIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	subA := newFakeSubscriber("a", "r1")
	subB := newFakeSubscriber("b", "r1")
	reg.Subscribe(subA)
	reg.Subscribe(subB)

	reg.Unsubscribe(subA)
	reg.Unsubscribe(subA)
	reg.Unsubscribe(newFakeSubscriber("ghost", "r9"))

	reg.Fanout(context.Background(), "r1", domain.Event{Type: domain.EventNewOrder, OrderID: "o1"})

	assert.Empty(t, subA.events())
	assert.Len(t, subB.events(), 1)
	assert.Equal(t, 1, reg.Count("r1"))
}

func TestRegistry_FailingSubscriberDoesNotBlockOthers(t *testing.T) {
	reg := NewRegistry()
	broken := newFakeSubscriber("broken", "r1")
	broken.failWith = errors.New("transport gone")
	healthy := newFakeSubscriber("healthy", "r1")
	reg.Subscribe(broken)
	reg.Subscribe(healthy)

	reg.Fanout(context.Background(), "r1", domain.Event{Type: domain.EventNewOrder, OrderID: "o1"})

	require.Len(t, healthy.events(), 1)
	assert.True(t, broken.closed)
	assert.Equal(t, 1, reg.Count("r1"))

	// The broken handle must not see further delivery attempts.
	reg.Fanout(context.Background(), "r1", domain.Event{Type: domain.EventNewOrder, OrderID: "o2"})
	assert.Len(t, healthy.events(), 2)
	assert.Empty(t, broken.events())
}

func TestRegistry_ConcurrentSubscribeAndFanout(t *testing.T) {
	reg := NewRegistry()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := newFakeSubscriber("s", "r1")
			reg.Subscribe(sub)
			reg.Unsubscribe(sub)
		}()
		go func() {
			defer wg.Done()
			reg.Fanout(ctx, "r1", domain.Event{Type: domain.EventNewOrder, OrderID: "o"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, reg.Count("r1"))
}
