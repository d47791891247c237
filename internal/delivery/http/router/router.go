// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopsync/internal/delivery/http/middleware"
	"shopsync/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ListHandler    *handler.ListHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	listHandler    *handler.ListHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		listHandler:    params.ListHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
	}

	// List routes that require authentication
	listGroup := e.Group("/lists")
	listGroup.Use(r.authMiddleware.Authenticate)
	{
		listGroup.POST("", r.listHandler.Create)
		listGroup.GET("", r.listHandler.GetAll)
		listGroup.PUT("/:id/add-item", r.listHandler.AddItem)
		listGroup.PUT("/:id/toggle-item/:itemId", r.listHandler.ToggleItem)
		listGroup.PUT("/:id/share", r.listHandler.Share)
		listGroup.GET("/:id/share-qr", r.listHandler.ShareQR)
	}
}
