package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"time"

	"authhub/config"
	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/delivery/http/validator"
	"authhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.HomeURL = "http://localhost:3000/"

	return cfg
}

func newTestSession() *entity.Session {
	sess := entity.NewSession("sid-1", 30*24*time.Hour, time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))

	return sess
}

// newTestContext builds an echo.Context carrying sess, as the session
// middleware would.
func newTestContext(method, target, body string, sess *entity.Session) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		deliverycontext.SetSession(c, sess)
	}

	return c, rec
}
