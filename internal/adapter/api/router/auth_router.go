package router

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/adapter/api/handler"
	"mirnito/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler, authMiddleware *middleware.AuthMiddleware) {
	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)
	auth.POST("/modal/open", authHandler.OpenAuthModal)
	auth.POST("/modal/close", authHandler.CloseAuthModal)
}
