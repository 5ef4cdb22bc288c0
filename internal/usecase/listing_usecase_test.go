package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirnito/internal/adapter/repository"
	"mirnito/internal/domain/entity"
	"mirnito/internal/infrastructure/scheduler"
)

type stubDescriptionService struct {
	text string
}

func (s *stubDescriptionService) GenerateListingDescription(ctx context.Context, title, category, keywords string) string {
	return s.text
}

func newListingFixture(seed []*entity.Listing) (*ListingUseCase, *NotificationUseCase, *scheduler.ManualScheduler) {
	sched := scheduler.NewManualScheduler()
	notifier := NewNotificationUseCase(sched, nil, nil)
	uc := NewListingUseCase(
		repository.NewMemoryListingRepository(seed),
		notifier,
		sched,
		&stubDescriptionService{text: "готовое описание"},
	)
	return uc, notifier, sched
}

func testAuthor() *entity.User {
	return &entity.User{ID: "u2", Name: "Анна", Email: "anna@mail.ru", Role: entity.RoleUser}
}

func TestAddListingShowsToastAndSchedulesModeration(t *testing.T) {
	uc, notifier, sched := newListingFixture(nil)

	listing, err := uc.AddListing(context.Background(), testAuthor(), CreateListingInput{
		Title:    "Велосипед",
		Price:    6000,
		Category: "Спорт и отдых",
		Location: "Корпус 1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusActive, listing.Status)
	assert.Equal(t, "₽", listing.Currency)
	assert.Equal(t, "Анна", listing.Author)

	toasts := notifier.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Объявление успешно опубликовано!", toasts[0].Message)
	assert.Equal(t, entity.ToastSuccess, toasts[0].Type)

	// Moderation notification only lands after the fixed delay.
	assert.Empty(t, notifier.Notifications())
	sched.Advance(3)

	notifications := notifier.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Модерация пройдена", notifications[0].Title)
	assert.Contains(t, notifications[0].Text, "Велосипед")
	assert.Equal(t, entity.NotificationSuccess, notifications[0].Type)
}

func TestAddListingPrependsNewestFirst(t *testing.T) {
	uc, _, _ := newListingFixture(nil)
	ctx := context.Background()

	first, err := uc.AddListing(ctx, testAuthor(), CreateListingInput{Title: "Первое", Price: 1, Category: "x", Location: "y"})
	require.NoError(t, err)
	second, err := uc.AddListing(ctx, testAuthor(), CreateListingInput{Title: "Второе", Price: 1, Category: "x", Location: "y"})
	require.NoError(t, err)

	listings, total, err := uc.ListListings(ctx, nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, second.ID, listings[0].ID)
	assert.Equal(t, first.ID, listings[1].ID)
}

func TestModerationNotificationFiresAfterDeletion(t *testing.T) {
	uc, notifier, sched := newListingFixture(nil)
	ctx := context.Background()

	listing, err := uc.AddListing(ctx, testAuthor(), CreateListingInput{Title: "Коляска", Price: 8500, Category: "Детское", Location: "Корпус 3"})
	require.NoError(t, err)

	// Delete before the moderation delay elapses; the scheduled
	// notification has no cancellation and still fires.
	require.NoError(t, uc.DeleteListing(ctx, listing.ID))
	sched.Advance(3)

	notifications := notifier.Notifications()
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Text, "Коляска")
}

func TestUpdateListingStatusReplacesStatusOnly(t *testing.T) {
	seed := []*entity.Listing{{ID: "a1", Title: "Диван", Price: 4500, Status: entity.ListingStatusActive, Category: "Мебель", IsVip: true}}
	uc, notifier, _ := newListingFixture(seed)
	ctx := context.Background()

	require.NoError(t, uc.UpdateListingStatus(ctx, "a1", entity.ListingStatusArchived))

	updated, err := uc.GetListing(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusArchived, updated.Status)
	assert.Equal(t, "Диван", updated.Title)
	assert.True(t, updated.IsVip)

	toasts := notifier.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Статус объявления изменен на: archived", toasts[0].Message)
	assert.Equal(t, entity.ToastInfo, toasts[0].Type)

	// Transitions are free-form; archived may go straight back to active.
	require.NoError(t, uc.UpdateListingStatus(ctx, "a1", entity.ListingStatusActive))
	updated, err = uc.GetListing(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusActive, updated.Status)
}

func TestUpdateListingStatusMissingIDIsNoOp(t *testing.T) {
	uc, _, _ := newListingFixture(nil)

	assert.NoError(t, uc.UpdateListingStatus(context.Background(), "missing", entity.ListingStatusBanned))
}

func TestDeleteListingMissingIDLeavesCollectionUnchanged(t *testing.T) {
	seed := []*entity.Listing{{ID: "a1", Title: "Диван", Status: entity.ListingStatusActive}}
	uc, notifier, _ := newListingFixture(seed)
	ctx := context.Background()

	require.NoError(t, uc.DeleteListing(ctx, "missing"))

	_, total, err := uc.ListListings(ctx, nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// The delete toast keeps error severity even though nothing failed.
	toasts := notifier.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, entity.ToastError, toasts[0].Type)
}

func TestToggleFavoriteParity(t *testing.T) {
	uc, _, _ := newListingFixture(nil)

	for i := 1; i <= 7; i++ {
		favored := uc.ToggleFavorite("a1")
		// Membership is true exactly after an odd number of toggles.
		assert.Equal(t, i%2 == 1, favored)
		assert.Equal(t, i%2 == 1, uc.IsFavorite("a1"))
	}
}

func TestToggleFavoriteToastsDifferByDirection(t *testing.T) {
	uc, notifier, _ := newListingFixture(nil)

	uc.ToggleFavorite("a1")
	uc.ToggleFavorite("a1")

	toasts := notifier.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, "Добавлено в избранное", toasts[0].Message)
	assert.Equal(t, entity.ToastSuccess, toasts[0].Type)
	assert.Equal(t, "Удалено из избранного", toasts[1].Message)
	assert.Equal(t, entity.ToastInfo, toasts[1].Type)
}

func TestGenerateDescriptionDelegates(t *testing.T) {
	uc, _, _ := newListingFixture(nil)

	text := uc.GenerateDescription(context.Background(), "Велосипед", "Спорт и отдых", "колеса 24")
	assert.Equal(t, "готовое описание", text)
}
