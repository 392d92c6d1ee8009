package sse

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	identityhttp "restaurant-orders/internal/domains/identity/adapters/http"
	identityports "restaurant-orders/internal/domains/identity/ports"
	"restaurant-orders/internal/domains/stream/ports"
)

// Handler serves the per-restaurant order event stream. EventSource
// cannot set headers, so the credential travels as a query parameter.
type Handler struct {
	registry  ports.Registry
	auth      identityports.Service
	keepAlive time.Duration
	buffer    int
	sendTO    time.Duration
	logger    *slog.Logger
}

func NewHandler(registry ports.Registry, auth identityports.Service, keepAlive time.Duration, buffer int, sendTimeout time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		registry:  registry,
		auth:      auth,
		keepAlive: keepAlive,
		buffer:    buffer,
		sendTO:    sendTimeout,
		logger:    logger,
	}
}

// Stream handles GET /restaurants/:id/orders/stream?token=...
func (h *Handler) Stream(c *gin.Context) {
	restaurantID := c.Param("id")
	user, err := h.auth.AuthorizeRestaurant(c.Request.Context(), c.Query("token"), restaurantID)
	if err != nil {
		identityhttp.RespondAuthError(c, err)
		return
	}

	sub := NewSubscriber(restaurantID, h.buffer, h.sendTO)
	h.registry.Subscribe(sub)
	defer func() {
		h.registry.Unsubscribe(sub)
		sub.Close()
	}()

	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	if h.logger != nil {
		h.logger.Info("subscriber connected",
			slog.String("subscriber.id", sub.ID()),
			slog.String("restaurant.id", restaurantID),
			slog.String("user.id", user.ID))
		defer h.logger.Info("subscriber disconnected",
			slog.String("subscriber.id", sub.ID()),
			slog.String("restaurant.id", restaurantID))
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// SSE comment line; clients ignore it but learn the
			// connection is alive.
			if _, err := fmt.Fprint(c.Writer, ": keep-alive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		case event := <-sub.Events():
			if err := sse.Encode(c.Writer, sse.Event{Data: event}); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
