// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nearbuy/internal/delivery/http/middleware"
	"nearbuy/internal/delivery/http/router/handler"
	"nearbuy/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler      *handler.SearchHandler
	FavoriteHandler    *handler.FavoriteHandler
	StoreHandler       *handler.StoreHandler
	AdminHandler       *handler.AdminHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler      *handler.SearchHandler
	favoriteHandler    *handler.FavoriteHandler
	storeHandler       *handler.StoreHandler
	adminHandler       *handler.AdminHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:      params.SearchHandler,
		favoriteHandler:    params.FavoriteHandler,
		storeHandler:       params.StoreHandler,
		adminHandler:       params.AdminHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and metrics endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", metrics.Handler())

	// Identity resolution applies everywhere; search works anonymously.
	e.Use(r.identityMiddleware.Resolve)

	// Catalog search
	e.GET("/search", r.searchHandler.Search)

	// Favorites require a resolved caller identity
	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(r.identityMiddleware.RequireIdentity)
	{
		favoriteGroup.GET("", r.favoriteHandler.ListFavorites)
		favoriteGroup.POST("", r.favoriteHandler.AddFavorite)
		favoriteGroup.GET("/:productId", r.favoriteHandler.CheckFavorite)
		favoriteGroup.DELETE("/:productId", r.favoriteHandler.RemoveFavorite)
	}

	// Store-owner surface; ownership of the store itself is established by
	// the upstream gateway that terminates authentication.
	storeGroup := e.Group("/stores/:storeId")
	{
		storeGroup.GET("", r.storeHandler.GetStoreData)
		storeGroup.PUT("/settings", r.storeHandler.UpdateStoreSettings)
		storeGroup.POST("/products", r.storeHandler.AddProduct)
		storeGroup.PUT("/products/:productId", r.storeHandler.EditProduct)
		storeGroup.DELETE("/products/:productId", r.storeHandler.DeleteProduct)
	}

	// Admin surface
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/stats", r.adminHandler.GetMarketplaceStats)
		adminGroup.DELETE("/users/:userId", r.adminHandler.RemoveUser)
		adminGroup.DELETE("/stores/:storeId", r.adminHandler.RemoveStore)
	}
}
