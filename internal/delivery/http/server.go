package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"authhub/config"
	"authhub/internal/delivery"
	"authhub/internal/delivery/http/middleware"
	"authhub/internal/delivery/http/router"
	"authhub/internal/delivery/http/validator"
	deliverymiddleware "authhub/internal/delivery/middleware"
	"authhub/internal/domain/lifecycle"
	"authhub/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *middleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := newEcho(params.Config, params.Logger, params.ErrorMiddleware)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho builds the engine with the middleware chain but without routes.
func newEcho(cfg *config.Config, logger *slog.Logger, errorMiddleware *middleware.ErrorMiddleware) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics in later middleware are caught
	echoServer.Use(echomiddleware.Recover())

	// Request id before the access log so every line carries it
	requestIDMiddleware := deliverymiddleware.NewRequestIDMiddleware(logger)
	echoServer.Use(requestIDMiddleware.Process)

	echoServer.Use(slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    false,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath("/health"),
		},
	}))

	// Sessions travel in cookies, so the allowed origins must be explicit
	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.AllowOrigins,
		AllowCredentials: len(cfg.HTTP.AllowOrigins) > 0,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			"X-Request-Id",
		},
	}))

	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
