package router

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/adapter/api/handler"
	"mirnito/internal/adapter/api/middleware"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Listing      *handler.ListingHandler
	Admin        *handler.AdminHandler
	Chat         *handler.ChatHandler
	Notification *handler.NotificationHandler
	Navigation   *handler.NavigationHandler
	WebSocket    *handler.WebSocketHandler
	Health       *handler.HealthHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupHealthRouter(e, h.Health)
	SetupAuthRouter(e, h.Auth, authMiddleware)
	SetupListingRouter(e, h.Listing, authMiddleware)
	SetupAdminRouter(e, h.Admin, authMiddleware, adminMiddleware)
	SetupChatRouter(e, h.Chat, authMiddleware)
	SetupNotificationRouter(e, h.Notification)
	SetupNavigationRouter(e, h.Navigation)
	SetupWebSocketRouter(e, h.WebSocket)
}
