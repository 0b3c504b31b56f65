package handler

import (
	"context"
	"log/slog"

	"authhub/config"
	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/delivery/http/response"
	"authhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// XHandler serves the X OAuth2 endpoints.
type XHandler struct {
	uc      usecase.XAuthUsecase
	homeURL string
	logger  *slog.Logger
}

func NewXHandler(uc usecase.XAuthUsecase, cfg *config.Config, logger *slog.Logger) *XHandler {
	return &XHandler{
		uc:      uc,
		homeURL: cfg.HTTP.HomeURL,
		logger:  logger,
	}
}

func (h *XHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// Login redirects the browser to the X consent page.
func (h *XHandler) Login(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	authURL, err := h.uc.Login(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	return redirectTo(c, authURL)
}

// Callback always ends on the home page; failures only reach the logs.
func (h *XHandler) Callback(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	input := &usecase.XCallbackInput{
		Code:  c.QueryParam("code"),
		State: c.QueryParam("state"),
	}

	ctx := c.Request().Context()
	if err := h.uc.Callback(ctx, sess, input); err != nil {
		h.log(ctx).Warn("X callback failed", slog.Any("error", err))
	}

	return redirectTo(c, h.homeURL)
}

// CurrentUser backs both /current-user and /session.
func (h *XHandler) CurrentUser(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	output, err := h.uc.CurrentUser(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	return response.OK(c, output)
}

func (h *XHandler) Logout(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	return response.OK(c, h.uc.Logout(c.Request().Context(), sess))
}
