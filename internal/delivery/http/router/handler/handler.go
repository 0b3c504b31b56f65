// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/delivery/http/response"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// currentSession returns the session loaded by the session middleware.
func currentSession(c echo.Context) (*entity.Session, error) {
	sess := deliverycontext.GetSession(c)
	if sess == nil {
		return nil, domainerrors.ErrInternalError.WithDetails("session middleware not installed")
	}

	return sess, nil
}

// currentPrincipal returns the caller resolved by the auth middleware.
func currentPrincipal(c echo.Context) (*entity.Principal, error) {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return principal, nil
}

// bindAndValidate decodes the request into input and runs the echo validator.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrBadRequest.WithDetails(err.Error())
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	return nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

func redirectTo(c echo.Context, url string) error {
	return c.Redirect(http.StatusFound, url)
}
