package handler

import (
	"authhub/internal/delivery/http/response"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// ListUsers returns one page of identities, newest first.
func (h *UserHandler) ListUsers(c echo.Context) error {
	input := new(usecase.ListUsersInput)
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, input); err != nil {
		return domainerrors.ErrBadRequest.WithDetails(err.Error())
	}

	output, err := h.uc.ListUsers(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.OK(c, output)
}
