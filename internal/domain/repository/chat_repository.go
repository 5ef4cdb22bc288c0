package repository

import (
	"context"

	"mirnito/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	GetByName(ctx context.Context, userName string) (*entity.Chat, error)
	List(ctx context.Context) ([]*entity.Chat, error)
	Update(ctx context.Context, chat *entity.Chat) error
	Delete(ctx context.Context, id string) error

	// Message methods; the log is owned by its thread.
	CreateMessage(ctx context.Context, chatID string, message *entity.Message) error
	ListMessages(ctx context.Context, chatID string) ([]*entity.Message, error)
}
