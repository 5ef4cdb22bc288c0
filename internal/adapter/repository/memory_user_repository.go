package repository

import (
	"context"
	"strings"
	"sync"

	"mirnito/internal/domain/entity"
	"mirnito/internal/domain/repository"
	"mirnito/pkg/errors"
)

type memoryUserRepository struct {
	mu    sync.RWMutex
	users []*entity.User
}

func NewMemoryUserRepository(seed []*entity.User) repository.UserRepository {
	users := make([]*entity.User, 0, len(seed))
	for _, u := range seed {
		copied := *u
		users = append(users, &copied)
	}

	return &memoryUserRepository{
		users: users,
	}
}

// Create appends the user. Email uniqueness is intentionally not
// enforced here; duplicate accounts are the caller's concern.
func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memoryUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		result = append(result, &copied)
	}
	return result, nil
}
