package handler

import (
	"net/http"

	"authhub/internal/delivery/http/response"
	"authhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EVMHandler serves the Sign-In with Ethereum endpoints.
type EVMHandler struct {
	uc usecase.EVMAuthUsecase
}

func NewEVMHandler(uc usecase.EVMAuthUsecase) *EVMHandler {
	return &EVMHandler{uc: uc}
}

// Nonce returns a fresh nonce as text/plain.
func (h *EVMHandler) Nonce(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	nonce, err := h.uc.Nonce(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	return response.Text(c, http.StatusOK, nonce)
}

func (h *EVMHandler) Verify(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	input := new(usecase.EVMVerifyInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.Verify(c.Request().Context(), sess, input)
	if err != nil {
		return err
	}

	return response.OK(c, output)
}

func (h *EVMHandler) Session(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Session(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	return response.OK(c, output)
}

func (h *EVMHandler) SignOut(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	return response.OK(c, h.uc.SignOut(c.Request().Context(), sess))
}
