package api

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	cataloghttp "restaurant-orders/internal/domains/catalog/adapters/http"
	identityhttp "restaurant-orders/internal/domains/identity/adapters/http"
	identityports "restaurant-orders/internal/domains/identity/ports"
	ordershttp "restaurant-orders/internal/domains/orders/adapters/http"
	streamsse "restaurant-orders/internal/domains/stream/adapters/sse"
)

// handlers groups the per-context HTTP APIs mounted on the router.
type handlers struct {
	auth    identityhttp.AuthAPI
	catalog cataloghttp.CatalogAPI
	orders  ordershttp.OrderAPI
	stream  *streamsse.Handler
}

// newRouter mounts all routes. The stream endpoint authenticates via a
// query-parameter token because EventSource cannot set headers; every
// other protected route uses the Authorization header.
func newRouter(serviceName string, h handlers, auth identityports.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))

	router.POST("/auth/demo", h.auth.DemoLogin)
	router.GET("/restaurants", h.catalog.ListRestaurants)
	router.GET("/restaurants/:id/menu", h.catalog.GetMenu)
	router.GET("/restaurants/:id/orders/stream", h.stream.Stream)

	protected := router.Group("/", identityhttp.RequireAuth(auth))
	protected.POST("/orders", h.orders.CreateOrder)
	protected.GET("/orders", h.orders.ListOrders)
	protected.PATCH("/orders/:id/status", h.orders.UpdateStatus)

	return router
}
