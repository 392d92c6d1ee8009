package mapper

import (
	identitydomain "restaurant-orders/internal/domains/identity/domain"
	"restaurant-orders/internal/domains/identity/ports"
)

// DemoLoginRequest is the transport-level demo login payload.
type DemoLoginRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// User represents the transport-level user payload.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	RestaurantID string `json:"restaurant_id,omitempty"`
}

// SessionResponse carries the issued token and its user.
type SessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// FromUser maps the domain user to its transport shape.
func FromUser(user *identitydomain.User) User {
	return User{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         string(user.Role),
		RestaurantID: user.RestaurantID,
	}
}

// FromSession maps an issued session to its transport shape.
func FromSession(session *ports.Session) SessionResponse {
	return SessionResponse{
		Token: session.Token,
		User:  FromUser(session.User),
	}
}
