package handler

import (
	"authhub/internal/delivery/http/response"
	"authhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CleanupOutput reports how many records a maintenance run removed.
type CleanupOutput struct {
	Removed int64 `json:"removed"`
}

// MaintenanceHandler exposes the store cleanup jobs to SUPER callers.
type MaintenanceHandler struct {
	rateLimits usecase.XRateLimitUsecase
	sessions   usecase.SessionUsecase
}

func NewMaintenanceHandler(rateLimits usecase.XRateLimitUsecase, sessions usecase.SessionUsecase) *MaintenanceHandler {
	return &MaintenanceHandler{
		rateLimits: rateLimits,
		sessions:   sessions,
	}
}

func (h *MaintenanceHandler) CleanupRateLimits(c echo.Context) error {
	removed, err := h.rateLimits.Cleanup(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, CleanupOutput{Removed: removed})
}

func (h *MaintenanceHandler) CleanupSessions(c echo.Context) error {
	removed, err := h.sessions.PurgeExpired(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, CleanupOutput{Removed: removed})
}
