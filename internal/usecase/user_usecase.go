package usecase

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"mirnito/internal/domain/entity"
	"mirnito/internal/domain/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type RegisterUserInput struct {
	Name  string
	Email string
}

// RegisterUser appends a new account. Duplicate emails are allowed;
// uniqueness is the caller's concern.
func (uc *UserUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error) {
	name := input.Name
	if name == "" {
		name = "Пользователь"
	}

	user := &entity.User{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      input.Email,
		Role:       entity.RoleUser,
		IsVerified: false,
		Avatar:     "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random",
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}
