package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("email must contain '@'")
	ErrEmptyName    = errors.New("name is required")
	ErrUnknownRole  = errors.New("role must be customer or restaurant")
)

// Role distinguishes customers placing orders from restaurant staff
// managing them.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
)

// User is a demo-auth identity. Restaurant-role users own exactly one
// restaurant, assigned on first login.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	RestaurantID string
}

// NewUser validates and constructs a user.
func NewUser(id, email, name string, role Role) (*User, error) {
	user := &User{
		ID:    id,
		Email: strings.ToLower(strings.TrimSpace(email)),
		Name:  strings.TrimSpace(name),
		Role:  role,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate enforces identity invariants.
func (u *User) Validate() error {
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Role != RoleCustomer && u.Role != RoleRestaurant {
		return ErrUnknownRole
	}
	return nil
}
