package application

import (
	"errors"
	"fmt"

	"restaurant-orders/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrRejected signals a refused status transition; the wrapped
	// domain error carries the reason.
	ErrRejected = errors.New("status transition rejected")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyRestaurant) ||
		errors.Is(err, domain.ErrNoItems) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidPrice) ||
		errors.Is(err, domain.ErrEmptyItemName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
