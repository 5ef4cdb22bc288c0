package repository

import (
	"context"
	"sync"

	"mirnito/internal/domain/entity"
	"mirnito/internal/domain/repository"
	"mirnito/pkg/errors"
)

// memoryChatRepository owns chat threads and one append-only message
// log per thread. Mutations against a missing thread return NotFound
// and leave every other thread untouched.
type memoryChatRepository struct {
	mu       sync.RWMutex
	chats    []*entity.Chat
	messages map[string][]*entity.Message
}

func NewMemoryChatRepository(seedChats []*entity.Chat, seedMessages map[string][]*entity.Message) repository.ChatRepository {
	chats := make([]*entity.Chat, 0, len(seedChats))
	for _, c := range seedChats {
		copied := *c
		chats = append(chats, &copied)
	}

	messages := make(map[string][]*entity.Message, len(seedMessages))
	for chatID, log := range seedMessages {
		copiedLog := make([]*entity.Message, 0, len(log))
		for _, m := range log {
			copied := *m
			copiedLog = append(copiedLog, &copied)
		}
		messages[chatID] = copiedLog
	}

	return &memoryChatRepository{
		chats:    chats,
		messages: messages,
	}
}

func (r *memoryChatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *chat
	r.chats = append([]*entity.Chat{&copied}, r.chats...)
	r.messages[chat.ID] = []*entity.Message{}
	return nil
}

func (r *memoryChatRepository) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.chats {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Chat", nil)
}

func (r *memoryChatRepository) GetByName(ctx context.Context, userName string) (*entity.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.chats {
		if c.UserName == userName {
			copied := *c
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Chat", nil)
}

func (r *memoryChatRepository) List(ctx context.Context) ([]*entity.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Chat, 0, len(r.chats))
	for _, c := range r.chats {
		copied := *c
		result = append(result, &copied)
	}
	return result, nil
}

func (r *memoryChatRepository) Update(ctx context.Context, chat *entity.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.chats {
		if c.ID == chat.ID {
			copied := *chat
			r.chats[i] = &copied
			return nil
		}
	}
	return errors.NotFound("Chat", nil)
}

func (r *memoryChatRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.chats {
		if c.ID == id {
			r.chats = append(r.chats[:i], r.chats[i+1:]...)
			delete(r.messages, id)
			return nil
		}
	}
	return errors.NotFound("Chat", nil)
}

func (r *memoryChatRepository) CreateMessage(ctx context.Context, chatID string, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Appends to an unknown thread are discarded, not raised.
	if _, ok := r.messages[chatID]; !ok {
		return errors.NotFound("Chat", nil)
	}

	copied := *message
	r.messages[chatID] = append(r.messages[chatID], &copied)
	return nil
}

func (r *memoryChatRepository) ListMessages(ctx context.Context, chatID string) ([]*entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.messages[chatID]
	result := make([]*entity.Message, 0, len(log))
	for _, m := range log {
		copied := *m
		result = append(result, &copied)
	}
	return result, nil
}
