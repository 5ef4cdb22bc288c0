package router

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/adapter/api/handler"
	"mirnito/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, adminHandler *handler.AdminHandler, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/stats", adminHandler.Stats)
	admin.PUT("/listings/:id/status", adminHandler.UpdateListingStatus)
	admin.DELETE("/listings/:id", adminHandler.DeleteListing)
}
