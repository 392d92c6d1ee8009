// Package http wires the catalog bounded context to the HTTP transport.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-orders/internal/domains/catalog/adapters/http/mapper"
	"restaurant-orders/internal/domains/catalog/ports"
	apierrors "restaurant-orders/internal/shared/errors"
)

// CatalogAPI wires HTTP transport with the catalog bounded context service.
type CatalogAPI struct {
	service ports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service ports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Get /restaurants
// List the venues customers can order from
func (api *CatalogAPI) ListRestaurants(c *gin.Context) {
	restaurants, err := api.service.ListRestaurants(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromRestaurantList(restaurants))
}

// Get /restaurants/:id/menu
// Fetch a venue's menu
func (api *CatalogAPI) GetMenu(c *gin.Context) {
	menu, err := api.service.GetMenu(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromMenu(menu))
}

func respondCatalogServiceError(c *gin.Context, err error) {
	if errors.Is(err, ports.ErrNotFound) {
		apierrors.Respond(c, apierrors.NewNotFoundProblem("restaurant", c.Param("id")))
		return
	}
	apierrors.RespondError(c, err)
}
