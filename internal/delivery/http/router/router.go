// Package router contains routing setup for the poll REST delivery.
package router

import (
	"lookate/internal/delivery/http/middleware"
	"lookate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	PresenceHandler *handler.PresenceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	presenceHandler *handler.PresenceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		presenceHandler: params.PresenceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else requires a valid access token
	locationGroup := e.Group("/locations")
	locationGroup.Use(r.authMiddleware.Authenticate)
	{
		locationGroup.GET("", r.locationHandler.GetLocations)
		locationGroup.POST("", r.locationHandler.UpdateLocation)
		locationGroup.DELETE("", r.locationHandler.DeleteLocation)
	}

	presenceGroup := e.Group("/presence")
	presenceGroup.Use(r.authMiddleware.Authenticate)
	{
		presenceGroup.GET("", r.presenceHandler.GetPresence)
	}
}
