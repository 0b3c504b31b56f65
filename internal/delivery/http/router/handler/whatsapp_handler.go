package handler

import (
	"authhub/internal/delivery/http/response"
	"authhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WhatsAppHandler serves the WhatsApp OTP endpoints.
type WhatsAppHandler struct {
	uc usecase.WhatsAppAuthUsecase
}

func NewWhatsAppHandler(uc usecase.WhatsAppAuthUsecase) *WhatsAppHandler {
	return &WhatsAppHandler{uc: uc}
}

func (h *WhatsAppHandler) SendOTP(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	input := new(usecase.SendOTPInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.SendOTP(c.Request().Context(), sess, input)
	if err != nil {
		return err
	}

	return response.OK(c, output)
}

// VerifyOTP leaves the empty-code check to the use case so it answers with
// the flow's own error.
func (h *WhatsAppHandler) VerifyOTP(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	input := new(usecase.VerifyOTPInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.VerifyOTP(c.Request().Context(), sess, input)
	if err != nil {
		return err
	}

	return response.OK(c, output)
}

func (h *WhatsAppHandler) Session(c echo.Context) error {
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

func (h *WhatsAppHandler) SignOut(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	return response.OK(c, h.uc.SignOut(c.Request().Context(), sess))
}
