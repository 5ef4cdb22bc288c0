package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirnito/internal/adapter/repository"
	"mirnito/internal/domain/entity"
	"mirnito/pkg/errors"
)

func newAuthFixture(t *testing.T) (*AuthUseCase, *UserUseCase, string) {
	t.Helper()
	sessionPath := filepath.Join(t.TempDir(), "session.json")
	userRepo := repository.NewMemoryUserRepository(repository.SeedUsers())
	auth := NewAuthUseCase(userRepo, repository.NewFileSessionRepository(sessionPath))
	users := NewUserUseCase(userRepo)
	return auth, users, sessionPath
}

func TestLoginByEmailSetsCurrentUser(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	ctx := context.Background()

	assert.False(t, auth.IsAuthenticated())

	user, err := auth.Login(ctx, "anna@mail.ru")
	require.NoError(t, err)
	assert.Equal(t, "Анна", user.Name)
	assert.True(t, auth.IsAuthenticated())

	current := auth.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestLoginEmailLookupIsCaseInsensitive(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	user, err := auth.Login(context.Background(), "Anna@Mail.RU")
	require.NoError(t, err)
	assert.Equal(t, "anna@mail.ru", user.Email)
}

func TestLoginUnknownEmailFails(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	_, err := auth.Login(context.Background(), "nobody@mail.ru")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.False(t, auth.IsAuthenticated())
}

func TestLoginClosesAuthModal(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	auth.OpenAuthModal()
	assert.True(t, auth.IsAuthModalOpen())

	_, err := auth.Login(context.Background(), "igor@mail.ru")
	require.NoError(t, err)
	assert.False(t, auth.IsAuthModalOpen())
}

func TestSessionSurvivesRestart(t *testing.T) {
	auth, _, sessionPath := newAuthFixture(t)
	ctx := context.Background()

	user, err := auth.Login(ctx, "anna@mail.ru")
	require.NoError(t, err)

	// A fresh use case over the same file models a process restart.
	restarted := NewAuthUseCase(
		repository.NewMemoryUserRepository(repository.SeedUsers()),
		repository.NewFileSessionRepository(sessionPath),
	)
	restarted.RestoreOnStartup(ctx)

	require.True(t, restarted.IsAuthenticated())
	current := restarted.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
	assert.Equal(t, user.Email, current.Email)
}

func TestLogoutClearsSessionFile(t *testing.T) {
	auth, _, sessionPath := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "anna@mail.ru")
	require.NoError(t, err)

	auth.Logout(ctx)
	assert.False(t, auth.IsAuthenticated())
	assert.Nil(t, auth.CurrentUser())

	_, err = os.Stat(sessionPath)
	assert.True(t, os.IsNotExist(err))

	restarted := NewAuthUseCase(
		repository.NewMemoryUserRepository(nil),
		repository.NewFileSessionRepository(sessionPath),
	)
	restarted.RestoreOnStartup(ctx)
	assert.False(t, restarted.IsAuthenticated())
}

func TestRestoreFailsOpenOnCorruptSnapshot(t *testing.T) {
	auth, _, sessionPath := newAuthFixture(t)

	require.NoError(t, os.WriteFile(sessionPath, []byte("{not json"), 0o600))

	auth.RestoreOnStartup(context.Background())
	assert.False(t, auth.IsAuthenticated())
}

func TestRegisterThenLoginUser(t *testing.T) {
	auth, users, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := users.RegisterUser(ctx, RegisterUserInput{Name: "Мария", Email: "maria@mail.ru"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.False(t, user.IsVerified)
	assert.Contains(t, user.Avatar, "ui-avatars.com")

	require.NoError(t, auth.LoginUser(ctx, user))
	assert.True(t, auth.IsAuthenticated())
	assert.Equal(t, "Мария", auth.CurrentUser().Name)
}

func TestRegisterDefaultsBlankName(t *testing.T) {
	_, users, _ := newAuthFixture(t)

	user, err := users.RegisterUser(context.Background(), RegisterUserInput{Email: "x@mail.ru"})
	require.NoError(t, err)
	assert.Equal(t, "Пользователь", user.Name)
}

func TestRegisterAllowsDuplicateEmail(t *testing.T) {
	_, users, _ := newAuthFixture(t)
	ctx := context.Background()

	first, err := users.RegisterUser(ctx, RegisterUserInput{Name: "А", Email: "dup@mail.ru"})
	require.NoError(t, err)
	second, err := users.RegisterUser(ctx, RegisterUserInput{Name: "Б", Email: "dup@mail.ru"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := users.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(repository.SeedUsers())+2)
}

func TestCurrentUserReturnsCopy(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "anna@mail.ru")
	require.NoError(t, err)

	snapshot := auth.CurrentUser()
	snapshot.Name = "изменено"

	assert.Equal(t, "Анна", auth.CurrentUser().Name)
}
