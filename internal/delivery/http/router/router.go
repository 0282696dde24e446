// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"seedshare/internal/delivery/http/middleware"
	"seedshare/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	OfferHandler   *handler.OfferHandler
	CatalogHandler *handler.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	offerHandler   *handler.OfferHandler
	catalogHandler *handler.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		offerHandler:   params.OfferHandler,
		catalogHandler: params.CatalogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Public routes
	e.POST("/users", r.userHandler.RegisterUser)
	e.GET("/offers/:id", r.offerHandler.GetOffer)
	e.GET("/species/:id", r.catalogHandler.GetSpecies)

	usersGroup := e.Group("/users", r.authMiddleware.Authenticate)
	{
		usersGroup.GET("/me", r.userHandler.GetProfile)
		usersGroup.PUT("/me/password", r.userHandler.ChangePassword)
		usersGroup.PUT("/me/name", r.userHandler.ChangeName)
		usersGroup.GET("/:id", r.userHandler.GetUser)
	}

	offersGroup := e.Group("/offers", r.authMiddleware.Authenticate)
	{
		offersGroup.POST("", r.offerHandler.CreateOffer)
		offersGroup.PUT("/:id", r.offerHandler.UpdateOffer)
		offersGroup.PUT("/:id/status", r.offerHandler.ChangeOfferStatus)
		offersGroup.POST("/:id/requests", r.offerHandler.RequestOffer)
	}

	e.POST("/species", r.catalogHandler.CreateSpecies, r.authMiddleware.Authenticate)
	e.POST("/addresses", r.catalogHandler.CreateAddress, r.authMiddleware.Authenticate)
	e.POST("/flower-shops", r.catalogHandler.CreateFlowerShop, r.authMiddleware.Authenticate)
}
