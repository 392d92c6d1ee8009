package ports

import "context"

// RestaurantProvisioner creates a restaurant for a first-time
// restaurant-role login. Implemented by the catalog context; identity
// only needs the new id back.
type RestaurantProvisioner interface {
	ProvisionRestaurant(ctx context.Context, name string) (string, error)
}
