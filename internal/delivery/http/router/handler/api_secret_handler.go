package handler

import (
	"net/http"

	"authhub/internal/delivery/http/response"
	"authhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// APISecretHandler manages the caller's own api secrets.
type APISecretHandler struct {
	uc usecase.APISecretUsecase
}

func NewAPISecretHandler(uc usecase.APISecretUsecase) *APISecretHandler {
	return &APISecretHandler{uc: uc}
}

// Create returns the plaintext secret; it is not shown again.
func (h *APISecretHandler) Create(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateAPISecretInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), principal.IdentityID, input)
	if err != nil {
		return err
	}

	return response.Created(c, output)
}

func (h *APISecretHandler) List(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	secrets, err := h.uc.List(c.Request().Context(), principal.IdentityID)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"api_secrets": secrets})
}

func (h *APISecretHandler) Revoke(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.uc.Revoke(c.Request().Context(), principal.IdentityID, c.Param("key")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
