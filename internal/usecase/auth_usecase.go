package usecase

import (
	"context"
	"sync"

	"mirnito/internal/domain/entity"
	"mirnito/internal/domain/repository"
	"mirnito/pkg/errors"
	"mirnito/pkg/logger"
)

// AuthUseCase owns the current-session user pointer and the auth-modal
// flag. Authentication is simulated: a login is an email lookup, and
// the bearer token handed to clients is simply the user id.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository

	mu          sync.Mutex
	currentUser *entity.User
	modalOpen   bool
}

func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Login looks the account up by email and makes it the current user.
func (uc *AuthUseCase) Login(ctx context.Context, email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}

	if err := uc.LoginUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser sets the current user directly (used right after
// registration), persists the snapshot and closes the auth modal.
func (uc *AuthUseCase) LoginUser(ctx context.Context, user *entity.User) error {
	copied := *user

	uc.mu.Lock()
	uc.currentUser = &copied
	uc.modalOpen = false
	uc.mu.Unlock()

	if err := uc.sessionRepo.Save(ctx, &copied); err != nil {
		return errors.Internal("Failed to persist session", err)
	}
	return nil
}

func (uc *AuthUseCase) Logout(ctx context.Context) {
	uc.mu.Lock()
	uc.currentUser = nil
	uc.mu.Unlock()

	if err := uc.sessionRepo.Clear(ctx); err != nil {
		logger.Warn("Failed to clear persisted session: %v", err)
	}
}

// RestoreOnStartup reads the persisted snapshot. Absent or corrupt
// snapshots fail open to logged out; this never returns an error.
func (uc *AuthUseCase) RestoreOnStartup(ctx context.Context) {
	user, err := uc.sessionRepo.Load(ctx)
	if err != nil {
		return
	}

	uc.mu.Lock()
	uc.currentUser = user
	uc.mu.Unlock()
}

func (uc *AuthUseCase) OpenAuthModal() {
	uc.mu.Lock()
	uc.modalOpen = true
	uc.mu.Unlock()
}

func (uc *AuthUseCase) CloseAuthModal() {
	uc.mu.Lock()
	uc.modalOpen = false
	uc.mu.Unlock()
}

func (uc *AuthUseCase) IsAuthModalOpen() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.modalOpen
}

func (uc *AuthUseCase) CurrentUser() *entity.User {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.currentUser == nil {
		return nil
	}
	copied := *uc.currentUser
	return &copied
}

// IsAuthenticated is derived from the current user pointer, never an
// independently tracked flag.
func (uc *AuthUseCase) IsAuthenticated() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.currentUser != nil
}
