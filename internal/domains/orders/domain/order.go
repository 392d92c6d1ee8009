package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyRestaurant = errors.New("restaurant id is required")
	ErrNoItems         = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be at least one")
	ErrInvalidPrice    = errors.New("item unit price must not be negative")
	ErrEmptyItemName   = errors.New("item name is required")
)

// LineItem is one menu item position on an order. Prices are minor
// currency units (cents).
type LineItem struct {
	ItemID         string
	Name           string
	Quantity       int
	UnitPriceCents int64
}

// Order models a customer's purchase request against one restaurant.
// The total is always derived from the line items, never stored on the
// aggregate, so it cannot drift.
type Order struct {
	ID           string
	RestaurantID string
	Items        []LineItem
	Note         string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewOrder validates and constructs an order in the placed state.
func NewOrder(id, restaurantID string, items []LineItem, note string, now time.Time) (*Order, error) {
	order := &Order{
		ID:           id,
		RestaurantID: strings.TrimSpace(restaurantID),
		Items:        append([]LineItem(nil), items...),
		Note:         strings.TrimSpace(note),
		Status:       StatusPlaced,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces the aggregate invariants.
func (o *Order) Validate() error {
	if o.RestaurantID == "" {
		return ErrEmptyRestaurant
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range o.Items {
		if strings.TrimSpace(item.Name) == "" {
			return ErrEmptyItemName
		}
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if item.UnitPriceCents < 0 {
			return ErrInvalidPrice
		}
	}
	if !o.Status.Known() {
		return ErrUnknownStatus
	}
	return nil
}

// TotalCents is the sum of quantity times unit price across all items.
func (o *Order) TotalCents() int64 {
	var total int64
	for _, item := range o.Items {
		total += int64(item.Quantity) * item.UnitPriceCents
	}
	return total
}

// Clone returns a deep copy safe to hand across goroutine boundaries.
func (o *Order) Clone() *Order {
	clone := *o
	clone.Items = append([]LineItem(nil), o.Items...)
	return &clone
}
