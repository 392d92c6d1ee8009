package mapper

import (
	"time"

	"restaurant-orders/internal/domains/orders/domain"
	"restaurant-orders/internal/domains/orders/ports"
)

// LineItem represents the transport-level order line payload.
type LineItem struct {
	ItemID         string `json:"item_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// CreateOrderRequest is the order placement payload.
type CreateOrderRequest struct {
	RestaurantID string     `json:"restaurant_id" binding:"required"`
	Items        []LineItem `json:"items" binding:"required"`
	Note         string     `json:"note"`
}

// UpdateStatusRequest carries the requested status value.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Order represents the transport-level order payload.
type Order struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	Items        []LineItem `json:"items"`
	Note         string     `json:"note,omitempty"`
	Status       string     `json:"status"`
	TotalCents   int64      `json:"total_cents"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToCreateInput maps the request payload to the use case input.
func ToCreateInput(req CreateOrderRequest) ports.CreateOrderInput {
	items := make([]domain.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.LineItem{
			ItemID:         item.ItemID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return ports.CreateOrderInput{
		RestaurantID: req.RestaurantID,
		Items:        items,
		Note:         req.Note,
	}
}

// FromOrder maps the aggregate to its transport shape.
func FromOrder(order *domain.Order) Order {
	items := make([]LineItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, LineItem{
			ItemID:         item.ItemID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return Order{
		ID:           order.ID,
		RestaurantID: order.RestaurantID,
		Items:        items,
		Note:         order.Note,
		Status:       string(order.Status),
		TotalCents:   order.TotalCents(),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// FromOrderList maps a slice of aggregates preserving order.
func FromOrderList(orders []*domain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromOrder(order))
	}
	return result
}
