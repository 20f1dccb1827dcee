package middleware

import (
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyPrincipal = "principal"
	contextKeyAdmin     = "admin"

	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Gate usecase.AccessGate
}

// AuthMiddleware puts the access gate in front of protected route groups.
type AuthMiddleware struct {
	gate usecase.AccessGate
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{gate: params.Gate}
}

// Authenticate validates the bearer identity token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawToken, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		principal, err := m.gate.Authenticate(c.Request().Context(), strings.TrimSpace(rawToken))
		if err != nil {
			return err
		}

		c.Set(contextKeyPrincipal, principal)

		return next(c)
	}
}

// RequireAdmin lets only admins through. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		user, err := m.gate.AuthorizeAdmin(c.Request().Context(), principal)
		if err != nil {
			return err
		}

		c.Set(contextKeyAdmin, user)

		return next(c)
	}
}

// GetPrincipal returns the caller stored by Authenticate.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(contextKeyPrincipal).(*entity.Principal)

	return principal, ok && principal != nil
}

// GetAdmin returns the admin user loaded by RequireAdmin.
func GetAdmin(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyAdmin).(*entity.User)

	return user, ok && user != nil
}
