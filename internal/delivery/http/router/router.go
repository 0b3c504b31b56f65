// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"authhub/config"
	"authhub/internal/delivery/http/middleware"
	"authhub/internal/delivery/http/router/handler"
	"authhub/internal/delivery/http/session"
	"authhub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EVMHandler         *handler.EVMHandler
	XHandler           *handler.XHandler
	WhatsAppHandler    *handler.WhatsAppHandler
	UserHandler        *handler.UserHandler
	APISecretHandler   *handler.APISecretHandler
	MaintenanceHandler *handler.MaintenanceHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Sessions           *session.Manager
	Metrics            *metrics.Metrics
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	evmHandler         *handler.EVMHandler
	xHandler           *handler.XHandler
	whatsAppHandler    *handler.WhatsAppHandler
	userHandler        *handler.UserHandler
	apiSecretHandler   *handler.APISecretHandler
	maintenanceHandler *handler.MaintenanceHandler
	authMiddleware     *middleware.AuthMiddleware
	sessions           *session.Manager
	metrics            *metrics.Metrics
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		evmHandler:         params.EVMHandler,
		xHandler:           params.XHandler,
		whatsAppHandler:    params.WhatsAppHandler,
		userHandler:        params.UserHandler,
		apiSecretHandler:   params.APISecretHandler,
		maintenanceHandler: params.MaintenanceHandler,
		authMiddleware:     params.AuthMiddleware,
		sessions:           params.Sessions,
		metrics:            params.Metrics,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group(r.config.HTTP.APIPrefix)
	api.Use(r.sessions.Middleware)

	evmGroup := api.Group("/auth/evm")
	{
		evmGroup.GET("/nonce", r.evmHandler.Nonce)
		evmGroup.POST("/verify", r.evmHandler.Verify)
		evmGroup.GET("/session", r.evmHandler.Session)
		evmGroup.GET("/signout", r.evmHandler.SignOut)
	}

	xGroup := api.Group("/auth/x")
	{
		xGroup.GET("/login", r.xHandler.Login)
		xGroup.GET("/callback", r.xHandler.Callback)
		xGroup.GET("/current-user", r.xHandler.CurrentUser)
		xGroup.GET("/session", r.xHandler.CurrentUser)
		xGroup.GET("/logout", r.xHandler.Logout)
	}

	whatsAppGroup := api.Group("/auth/whatsapp")
	{
		whatsAppGroup.POST("/send-otp", r.whatsAppHandler.SendOTP)
		whatsAppGroup.POST("/verify-otp", r.whatsAppHandler.VerifyOTP)
		whatsAppGroup.GET("/session", r.whatsAppHandler.Session)
		whatsAppGroup.GET("/signout", r.whatsAppHandler.SignOut)
	}

	// Admin routes accept a session or a bearer api secret
	usersGroup := api.Group("/users")
	usersGroup.Use(r.authMiddleware.RequireAuthenticated, r.authMiddleware.AdminOnly())
	{
		usersGroup.GET("", r.userHandler.ListUsers)
	}

	apiSecretsGroup := api.Group("/api-secrets")
	apiSecretsGroup.Use(r.authMiddleware.RequireAuthenticated, r.authMiddleware.AdminOnly())
	{
		apiSecretsGroup.POST("", r.apiSecretHandler.Create)
		apiSecretsGroup.GET("", r.apiSecretHandler.List)
		apiSecretsGroup.DELETE("/:key", r.apiSecretHandler.Revoke)
	}

	maintenanceGroup := api.Group("/maintenance")
	maintenanceGroup.Use(r.authMiddleware.RequireAuthenticated, r.authMiddleware.SuperOnly())
	{
		maintenanceGroup.POST("/x-rate-limits/cleanup", r.maintenanceHandler.CleanupRateLimits)
		maintenanceGroup.POST("/sessions/cleanup", r.maintenanceHandler.CleanupSessions)
	}
}
