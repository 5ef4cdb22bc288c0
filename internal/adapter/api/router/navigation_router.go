package router

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/adapter/api/handler"
)

func SetupNavigationRouter(e *echo.Echo, navigationHandler *handler.NavigationHandler) {
	nav := e.Group("/v1/navigate")
	nav.GET("/:token", navigationHandler.Navigate)
	nav.POST("/select-listing", navigationHandler.SelectListing)
	nav.POST("/select-seller", navigationHandler.SelectSeller)
}
