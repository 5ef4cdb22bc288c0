package usecase

import (
	"sync"

	"github.com/google/uuid"

	"mirnito/internal/domain/entity"
	"mirnito/internal/infrastructure/metrics"
	"mirnito/internal/infrastructure/scheduler"
	ws "mirnito/internal/infrastructure/websocket"
)

// A toast lives for a fixed number of delay units and then removes
// itself unconditionally.
const toastLifetimeUnits = 3

// NotificationUseCase owns the ephemeral toast list and the persistent
// notification list. It has no failure modes.
type NotificationUseCase struct {
	mu            sync.Mutex
	toasts        []*entity.Toast
	notifications []*entity.Notification

	sched     scheduler.Scheduler
	wsManager *ws.Manager
}

func NewNotificationUseCase(sched scheduler.Scheduler, wsManager *ws.Manager, seed []*entity.Notification) *NotificationUseCase {
	notifications := make([]*entity.Notification, 0, len(seed))
	for _, n := range seed {
		copied := *n
		notifications = append(notifications, &copied)
	}

	return &NotificationUseCase{
		notifications: notifications,
		sched:         sched,
		wsManager:     wsManager,
	}
}

// ShowToast appends a toast and schedules its removal. An empty
// severity means success.
func (uc *NotificationUseCase) ShowToast(message, severity string) {
	if severity == "" {
		severity = entity.ToastSuccess
	}

	toast := &entity.Toast{
		ID:      uuid.New().String(),
		Message: message,
		Type:    severity,
	}

	uc.mu.Lock()
	uc.toasts = append(uc.toasts, toast)
	uc.mu.Unlock()

	metrics.ToastsShown.WithLabelValues(severity).Inc()
	uc.push(ws.EventToast, toast)

	id := toast.ID
	uc.sched.Schedule(toastLifetimeUnits, func() {
		uc.removeToast(id)
	})
}

func (uc *NotificationUseCase) removeToast(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i, t := range uc.toasts {
		if t.ID == id {
			uc.toasts = append(uc.toasts[:i], uc.toasts[i+1:]...)
			return
		}
	}
}

// AddNotification prepends a notification, newest first.
func (uc *NotificationUseCase) AddNotification(title, text, notificationType string) {
	notification := &entity.Notification{
		ID:    uuid.New().String(),
		Title: title,
		Text:  text,
		Time:  "Только что",
		Read:  false,
		Type:  notificationType,
	}

	uc.mu.Lock()
	uc.notifications = append([]*entity.Notification{notification}, uc.notifications...)
	uc.mu.Unlock()

	metrics.NotificationsAdded.Inc()
	uc.push(ws.EventNotification, notification)
}

// MarkAllRead is idempotent.
func (uc *NotificationUseCase) MarkAllRead() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, n := range uc.notifications {
		n.Read = true
	}
}

// UnreadCount is always recomputed from the list, never tracked
// separately.
func (uc *NotificationUseCase) UnreadCount() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	count := 0
	for _, n := range uc.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func (uc *NotificationUseCase) Notifications() []entity.Notification {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	result := make([]entity.Notification, 0, len(uc.notifications))
	for _, n := range uc.notifications {
		result = append(result, *n)
	}
	return result
}

func (uc *NotificationUseCase) Toasts() []entity.Toast {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	result := make([]entity.Toast, 0, len(uc.toasts))
	for _, t := range uc.toasts {
		result = append(result, *t)
	}
	return result
}

func (uc *NotificationUseCase) push(eventType string, payload interface{}) {
	if uc.wsManager == nil {
		return
	}
	uc.wsManager.Broadcast(ws.Event{Type: eventType, Payload: payload})
}
