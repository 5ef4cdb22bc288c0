package repository

import (
	"context"

	"mirnito/internal/domain/entity"
)

// SessionRepository persists the single durable key of the system: a
// snapshot of the current user, written on login and erased on logout.
type SessionRepository interface {
	Save(ctx context.Context, user *entity.User) error
	Load(ctx context.Context) (*entity.User, error)
	Clear(ctx context.Context) error
}
