package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	identitydomain "restaurant-orders/internal/domains/identity/domain"
	"restaurant-orders/internal/domains/identity/ports"
)

const userContextKey = "identity.user"

// RequireAuth authenticates the Authorization bearer token and stores
// the user on the request context for downstream handlers.
func RequireAuth(service ports.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		user, err := service.Authenticate(c.Request.Context(), token)
		if err != nil {
			RespondAuthError(c, err)
			c.Abort()
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed by RequireAuth.
func CurrentUser(c *gin.Context) (*identitydomain.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*identitydomain.User)
	return user, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
