// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roster/internal/delivery/api/middleware"
	"roster/internal/delivery/api/router/handler"
	"roster/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	AntiHeroHandler *handler.AntiHeroHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	antiHeroHandler *handler.AntiHeroHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		antiHeroHandler: params.AntiHeroHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	e.POST("/authenticate", r.authHandler.Authenticate)
	e.POST("/register", r.authHandler.Register)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	antiHeroesGroup := apiV1.Group("/anti-heroes")
	{
		antiHeroesGroup.GET("", r.antiHeroHandler.ListAntiHeroes)
		antiHeroesGroup.POST("", r.antiHeroHandler.CreateAntiHero)
		antiHeroesGroup.GET("/:id", r.antiHeroHandler.GetAntiHero)
		antiHeroesGroup.PUT("/:id", r.antiHeroHandler.UpdateAntiHero)
		antiHeroesGroup.DELETE("/:id", r.antiHeroHandler.DeleteAntiHero)
	}
}
