// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tube/internal/delivery/api/middleware"
	"tube/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	subscriptionHandler *handler.SubscriptionHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		subscriptionHandler: params.SubscriptionHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/users", r.userHandler.Register)
	e.POST("/users/login", r.userHandler.Login)

	// Current user, requires a valid token
	currentGroup := e.Group("/user")
	currentGroup.Use(r.authMiddleware.Authenticate)
	{
		currentGroup.GET("", r.userHandler.GetCurrentUser)
		currentGroup.PATCH("", r.userHandler.UpdateCurrentUser)
	}

	// Channel routes
	channelGroup := e.Group("/users/:userId")
	{
		channelGroup.GET("", r.userHandler.GetUser, r.authMiddleware.OptionalAuthenticate)
		channelGroup.GET("/subscriptions", r.subscriptionHandler.ListSubscriptions)
		channelGroup.POST("/subscribe", r.subscriptionHandler.Subscribe, r.authMiddleware.Authenticate)
		channelGroup.POST("/unsubscribe", r.subscriptionHandler.Unsubscribe, r.authMiddleware.Authenticate)
	}
}
