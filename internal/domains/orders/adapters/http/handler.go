// Package http wires the orders bounded context to the HTTP transport.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	identityhttp "restaurant-orders/internal/domains/identity/adapters/http"
	identitydomain "restaurant-orders/internal/domains/identity/domain"
	"restaurant-orders/internal/domains/orders/adapters/http/mapper"
	"restaurant-orders/internal/domains/orders/application"
	"restaurant-orders/internal/domains/orders/domain"
	"restaurant-orders/internal/domains/orders/ports"
	apierrors "restaurant-orders/internal/shared/errors"
)

// OrderAPI wires HTTP transport with the orders bounded context service.
type OrderAPI struct {
	service ports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Post /orders
// Place a new order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload mapper.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	order, err := api.service.Create(c.Request.Context(), mapper.ToCreateInput(payload))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.FromOrder(order))
}

// Get /orders?restaurant_id=...
// List a restaurant's orders in creation order
func (api *OrderAPI) ListOrders(c *gin.Context) {
	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail("restaurant_id query parameter is required"))
		return
	}
	if !callerManagesRestaurant(c, restaurantID) {
		apierrors.Respond(c, apierrors.ErrForbidden.WithDetail("orders are only visible to the restaurant's staff"))
		return
	}
	orders, err := api.service.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromOrderList(orders))
}

// Patch /orders/:id/status
// Apply a status transition
func (api *OrderAPI) UpdateStatus(c *gin.Context) {
	var payload mapper.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	id := c.Param("id")

	current, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	if !callerManagesRestaurant(c, current.RestaurantID) {
		apierrors.Respond(c, apierrors.ErrForbidden.WithDetail("only the restaurant's staff may change order status"))
		return
	}

	order, err := api.service.SetStatus(c.Request.Context(), id, domain.Status(payload.Status))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromOrder(order))
}

func callerManagesRestaurant(c *gin.Context, restaurantID string) bool {
	user, ok := identityhttp.CurrentUser(c)
	if !ok {
		return false
	}
	return user.Role == identitydomain.RoleRestaurant && user.RestaurantID == restaurantID
}

func respondOrderServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		apierrors.Respond(c, apierrors.NewNotFoundProblem("order", c.Param("id")))
	case errors.Is(err, application.ErrInvalidInput):
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
	case errors.Is(err, application.ErrRejected):
		apierrors.Respond(c, apierrors.NewTransitionRejectedProblem(domain.RejectionReason(err), err.Error()))
	default:
		apierrors.RespondError(c, err)
	}
}
