// Package http wires the demo-auth use cases to the HTTP transport.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-orders/internal/domains/identity/adapters/http/mapper"
	identitydomain "restaurant-orders/internal/domains/identity/domain"
	"restaurant-orders/internal/domains/identity/ports"
	apierrors "restaurant-orders/internal/shared/errors"
)

// AuthAPI wires HTTP transport with the identity bounded context service.
type AuthAPI struct {
	service ports.Service
}

// NewAuthAPI creates an AuthAPI backed by the provided service.
func NewAuthAPI(service ports.Service) AuthAPI {
	return AuthAPI{service: service}
}

// Post /auth/demo
// Demo login: upsert the user and issue a bearer token
func (api *AuthAPI) DemoLogin(c *gin.Context) {
	var payload mapper.DemoLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	session, err := api.service.DemoLogin(c.Request.Context(), payload.Email, payload.Name, identitydomain.Role(payload.Role))
	if err != nil {
		respondLoginError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromSession(session))
}

func respondLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, identitydomain.ErrInvalidEmail),
		errors.Is(err, identitydomain.ErrEmptyName),
		errors.Is(err, identitydomain.ErrUnknownRole):
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		apierrors.RespondError(c, err)
	}
}

// RespondAuthError maps authentication and authorization failures onto
// problem responses. Invalid credentials stay 401; a valid credential
// lacking the required restaurant scope is 403.
func RespondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ports.ErrInvalidToken), errors.Is(err, ports.ErrNotFound):
		apierrors.Respond(c, apierrors.ErrUnauthorized.WithDetail("missing or invalid bearer token"))
	case errors.Is(err, ports.ErrWrongScope):
		apierrors.Respond(c, apierrors.ErrForbidden.WithDetail(err.Error()))
	default:
		apierrors.RespondError(c, err)
	}
}
