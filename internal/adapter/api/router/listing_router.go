package router

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/adapter/api/handler"
	"mirnito/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, listingHandler *handler.ListingHandler, authMiddleware *middleware.AuthMiddleware) {
	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.ListListings)
	listings.GET("/:id", listingHandler.GetListing)

	// Favorites are session-scoped; no authentication required to
	// browse and mark them.
	listings.POST("/:id/favorite", listingHandler.ToggleFavorite)
	e.GET("/v1/favorites", listingHandler.ListFavorites)

	e.GET("/v1/sellers/:name/listings", listingHandler.ListBySeller)

	authed := e.Group("/v1/listings")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", listingHandler.CreateListing)
	authed.DELETE("/:id", listingHandler.DeleteListing)
	authed.POST("/describe", listingHandler.GenerateDescription)
}
