package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName        = errors.New("restaurant name is required")
	ErrInvalidItemPrice = errors.New("menu item price must not be negative")
	ErrEmptyItemName    = errors.New("menu item name is required")
)

// Restaurant is a venue customers can order from.
type Restaurant struct {
	ID   string
	Name string
}

// MenuItem is one orderable position, priced in minor currency units.
type MenuItem struct {
	ID         string
	Name       string
	PriceCents int64
}

// NewRestaurant validates and constructs a restaurant.
func NewRestaurant(id, name string) (*Restaurant, error) {
	restaurant := &Restaurant{ID: id, Name: strings.TrimSpace(name)}
	if restaurant.Name == "" {
		return nil, ErrEmptyName
	}
	return restaurant, nil
}

// ValidateMenu checks menu invariants before it is attached.
func ValidateMenu(items []MenuItem) error {
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return ErrEmptyItemName
		}
		if item.PriceCents < 0 {
			return ErrInvalidItemPrice
		}
	}
	return nil
}
