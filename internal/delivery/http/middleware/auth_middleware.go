package middleware

import (
	"slices"
	"strings"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller and guards routes by role.
type AuthMiddleware struct {
	apiSecrets usecase.APISecretUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(apiSecrets usecase.APISecretUsecase) *AuthMiddleware {
	return &AuthMiddleware{apiSecrets: apiSecrets}
}

// RequireAuthenticated accepts either an "Authorization: Bearer <key>:<secret>"
// header or an authenticated session. A bearer header that fails is never
// retried against the session.
func (m *AuthMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
			credential, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok {
				return domainerrors.ErrUnauthorized.WithDetails("authorization header is not a bearer token")
			}

			principal, err := m.apiSecrets.Authenticate(c.Request().Context(), strings.TrimSpace(credential))
			if err != nil {
				return err
			}
			deliverycontext.SetPrincipal(c, principal)

			return next(c)
		}

		sess := deliverycontext.GetSession(c)
		if sess == nil || !sess.IsAuthenticated() {
			return domainerrors.ErrUnauthorized
		}
		deliverycontext.SetPrincipal(c, sess.Principal)

		return next(c)
	}
}

// RequireRole admits principals holding any of roles.
// It must be used AFTER RequireAuthenticated.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return domainerrors.ErrUnauthorized
			}

			if !slices.Contains(roles, principal.Role) {
				return domainerrors.ErrForbidden.WithDetails("role " + principal.Role.String())
			}

			return next(c)
		}
	}
}

// AdminOnly admits ADMIN and SUPER.
func (m *AuthMiddleware) AdminOnly() echo.MiddlewareFunc {
	return m.RequireRole(entity.RoleAdmin, entity.RoleSuper)
}

// SuperOnly admits SUPER.
func (m *AuthMiddleware) SuperOnly() echo.MiddlewareFunc {
	return m.RequireRole(entity.RoleSuper)
}
