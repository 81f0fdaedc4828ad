// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"authsvc/config"
	"authsvc/internal/delivery/api/middleware"
	"authsvc/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	{
		apiV1.POST("/signup", r.accountHandler.SignUp)
		apiV1.POST("/signin", r.accountHandler.SignIn)
		apiV1.GET("/isAuthenticated", r.accountHandler.IsAuthenticated)
	}

	// Account management is open unless auth.protectManagementRoutes is set.
	var guards []echo.MiddlewareFunc
	if r.config.Auth != nil && r.config.Auth.ProtectManagementRoutes {
		guards = append(guards, r.authMiddleware.Authenticate)
	}
	apiV1.DELETE("/delete/:id", r.accountHandler.Delete, guards...)
	apiV1.GET("/isAdmin", r.accountHandler.IsAdmin, guards...)
}
