package mapper

import "restaurant-orders/internal/domains/catalog/domain"

// Restaurant represents the transport-level venue payload.
type Restaurant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MenuItem represents the transport-level menu entry payload.
type MenuItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// FromRestaurant maps the domain venue to its transport shape.
func FromRestaurant(restaurant *domain.Restaurant) Restaurant {
	return Restaurant{ID: restaurant.ID, Name: restaurant.Name}
}

// FromRestaurantList maps a slice of venues preserving order.
func FromRestaurantList(restaurants []*domain.Restaurant) []Restaurant {
	result := make([]Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		result = append(result, FromRestaurant(restaurant))
	}
	return result
}

// FromMenu maps a menu preserving order.
func FromMenu(menu []domain.MenuItem) []MenuItem {
	result := make([]MenuItem, 0, len(menu))
	for _, item := range menu {
		result = append(result, MenuItem{ID: item.ID, Name: item.Name, PriceCents: item.PriceCents})
	}
	return result
}
