package router

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/adapter/api/handler"
)

func SetupNotificationRouter(e *echo.Echo, notificationHandler *handler.NotificationHandler) {
	notifications := e.Group("/v1/notifications")
	notifications.GET("", notificationHandler.ListNotifications)
	notifications.GET("/unread-count", notificationHandler.UnreadCount)
	notifications.PUT("/read-all", notificationHandler.MarkAllRead)

	e.GET("/v1/toasts", notificationHandler.ListToasts)
}
