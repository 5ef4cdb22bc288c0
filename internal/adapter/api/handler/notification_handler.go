package handler

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/usecase"
	"mirnito/pkg/response"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	return response.Success(c, h.notificationUseCase.Notifications())
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	return response.Success(c, map[string]int{"unread_count": h.notificationUseCase.UnreadCount()})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	h.notificationUseCase.MarkAllRead()
	return response.Success(c, map[string]int{"unread_count": h.notificationUseCase.UnreadCount()})
}

func (h *NotificationHandler) ListToasts(c echo.Context) error {
	return response.Success(c, h.notificationUseCase.Toasts())
}
