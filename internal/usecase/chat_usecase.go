package usecase

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"mirnito/internal/domain/entity"
	"mirnito/internal/domain/repository"
	"mirnito/internal/infrastructure/metrics"
	"mirnito/internal/infrastructure/scheduler"
	ws "mirnito/internal/infrastructure/websocket"
)

// The counterpart reply is simulated with a fixed delay and fixed
// text; it is not cancelled when the thread goes away.
const replyDelayUnits = 2

const counterpartReplyText = "Спасибо за сообщение! Я сейчас занят, отвечу чуть позже."

type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	listingRepo repository.ListingRepository
	notifier    *NotificationUseCase
	sched       scheduler.Scheduler
	wsManager   *ws.Manager
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	listingRepo repository.ListingRepository,
	notifier *NotificationUseCase,
	sched scheduler.Scheduler,
	wsManager *ws.Manager,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:    chatRepo,
		listingRepo: listingRepo,
		notifier:    notifier,
		sched:       sched,
		wsManager:   wsManager,
	}
}

// CreateOrGetChat de-duplicates threads by counterpart display name.
// An existing thread is returned unchanged, even when the originating
// listing differs.
func (uc *ChatUseCase) CreateOrGetChat(ctx context.Context, listingID, counterpartName string) (string, error) {
	if existing, err := uc.chatRepo.GetByName(ctx, counterpartName); err == nil {
		return existing.ID, nil
	}

	listingTitle := "Объявление"
	if listing, err := uc.listingRepo.GetByID(ctx, listingID); err == nil {
		listingTitle = listing.Title
	}

	chat := &entity.Chat{
		ID:           uuid.New().String(),
		UserName:     counterpartName,
		UserAvatar:   "https://ui-avatars.com/api/?name=" + url.QueryEscape(counterpartName) + "&background=random",
		LastMessage:  "Начат диалог",
		UnreadCount:  0,
		ListingTitle: listingTitle,
		Time:         "Сейчас",
	}

	if err := uc.chatRepo.Create(ctx, chat); err != nil {
		return "", err
	}
	return chat.ID, nil
}

// SendMessage appends a self-authored message and schedules the
// simulated counterpart reply. An unknown thread id discards the
// append silently and must not disturb other threads.
func (uc *ChatUseCase) SendMessage(ctx context.Context, chatID, text string) (*entity.Message, error) {
	message := &entity.Message{
		ID:     uuid.New().String(),
		Text:   text,
		Sender: entity.SenderSelf,
		Time:   time.Now().Format("15:04"),
		Read:   false,
	}

	_ = uc.chatRepo.CreateMessage(ctx, chatID, message)

	if chat, err := uc.chatRepo.GetByID(ctx, chatID); err == nil {
		chat.LastMessage = text
		chat.Time = "Сейчас"
		_ = uc.chatRepo.Update(ctx, chat)
	}

	metrics.MessagesSent.Inc()
	uc.push(ws.EventMessage, map[string]interface{}{"chat_id": chatID, "message": message})

	uc.sched.Schedule(replyDelayUnits, func() {
		uc.deliverReply(chatID)
	})

	return message, nil
}

// deliverReply lands the simulated counterpart reply. The reply is
// stored already marked read; the thread-level unread counter carries
// the unread state instead.
func (uc *ChatUseCase) deliverReply(chatID string) {
	ctx := context.Background()

	reply := &entity.Message{
		ID:     uuid.New().String(),
		Text:   counterpartReplyText,
		Sender: entity.SenderCounterpart,
		Time:   time.Now().Format("15:04"),
		Read:   true,
	}

	// Both writes are silent no-ops when the thread has been deleted
	// in the meantime.
	_ = uc.chatRepo.CreateMessage(ctx, chatID, reply)

	if chat, err := uc.chatRepo.GetByID(ctx, chatID); err == nil {
		chat.LastMessage = reply.Text
		chat.UnreadCount++
		_ = uc.chatRepo.Update(ctx, chat)
	}

	uc.notifier.AddNotification("Новое сообщение", "Вам ответили в чате #"+chatID, entity.NotificationMessage)
	uc.notifier.ShowToast("Получен ответ от продавца", entity.ToastInfo)
	uc.push(ws.EventMessage, map[string]interface{}{"chat_id": chatID, "message": reply})
}

func (uc *ChatUseCase) Chats(ctx context.Context) ([]*entity.Chat, error) {
	return uc.chatRepo.List(ctx)
}

// Messages returns the thread's log; an unknown thread yields an
// empty log, not an error.
func (uc *ChatUseCase) Messages(ctx context.Context, chatID string) ([]*entity.Message, error) {
	return uc.chatRepo.ListMessages(ctx, chatID)
}

// DeleteChat drops a thread and its log; missing threads are ignored.
// A reply already scheduled against the thread still fires its
// notification.
func (uc *ChatUseCase) DeleteChat(ctx context.Context, chatID string) {
	_ = uc.chatRepo.Delete(ctx, chatID)
}

func (uc *ChatUseCase) push(eventType string, payload interface{}) {
	if uc.wsManager == nil {
		return
	}
	uc.wsManager.Broadcast(ws.Event{Type: eventType, Payload: payload})
}
