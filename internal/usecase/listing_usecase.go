package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"mirnito/internal/domain/entity"
	"mirnito/internal/domain/repository"
	"mirnito/internal/domain/service"
	"mirnito/internal/infrastructure/metrics"
	"mirnito/internal/infrastructure/scheduler"
)

// Moderation approval is simulated with a fixed delay; the resulting
// notification is not cancelled if the listing is deleted first.
const moderationDelayUnits = 3

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	notifier    *NotificationUseCase
	sched       scheduler.Scheduler
	descService service.DescriptionService

	mu        sync.Mutex
	favorites map[string]bool
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	notifier *NotificationUseCase,
	sched scheduler.Scheduler,
	descService service.DescriptionService,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		notifier:    notifier,
		sched:       sched,
		descService: descService,
		favorites:   make(map[string]bool),
	}
}

type CreateListingInput struct {
	Title       string
	Price       float64
	Currency    string
	Description string
	Location    string
	Category    string
	Image       string
	IsPromoted  bool
	IsVip       bool
	IsUrgent    bool
}

// AddListing prepends the listing (always status=active), shows a
// success toast immediately and schedules the moderation-passed
// notification.
func (uc *ListingUseCase) AddListing(ctx context.Context, author *entity.User, input CreateListingInput) (*entity.Listing, error) {
	currency := input.Currency
	if currency == "" {
		currency = "₽"
	}

	listing := &entity.Listing{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Price:       input.Price,
		Currency:    currency,
		Description: input.Description,
		Location:    input.Location,
		Category:    input.Category,
		Image:       input.Image,
		Date:        "Сегодня",
		Author:      author.Name,
		AuthorID:    author.ID,
		Status:      entity.ListingStatusActive,
		IsPromoted:  input.IsPromoted,
		IsVip:       input.IsVip,
		IsUrgent:    input.IsUrgent,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	metrics.ListingsCreated.Inc()
	uc.notifier.ShowToast("Объявление успешно опубликовано!", "")

	title := listing.Title
	uc.sched.Schedule(moderationDelayUnits, func() {
		uc.notifier.AddNotification(
			"Модерация пройдена",
			fmt.Sprintf("Ваше объявление %q теперь видно всем соседям.", title),
			entity.NotificationSuccess,
		)
	})

	return listing, nil
}

// UpdateListingStatus replaces the status field only. Any status may
// move to any other; a missing id is a no-op, not an error.
func (uc *ListingUseCase) UpdateListingStatus(ctx context.Context, id, status string) error {
	if listing, err := uc.listingRepo.GetByID(ctx, id); err == nil {
		listing.Status = status
		if err := uc.listingRepo.Update(ctx, listing); err != nil {
			return err
		}
	}

	uc.notifier.ShowToast("Статус объявления изменен на: "+status, entity.ToastInfo)
	return nil
}

// DeleteListing removes the listing; a missing id is a no-op. The
// toast keeps error severity to mark a destructive action, not a
// failure.
func (uc *ListingUseCase) DeleteListing(ctx context.Context, id string) error {
	_ = uc.listingRepo.Delete(ctx, id)

	uc.notifier.ShowToast("Объявление удалено", entity.ToastError)
	return nil
}

// ToggleFavorite flips session-scoped membership and reports the new
// state.
func (uc *ListingUseCase) ToggleFavorite(id string) bool {
	uc.mu.Lock()
	favored := uc.favorites[id]
	if favored {
		delete(uc.favorites, id)
	} else {
		uc.favorites[id] = true
	}
	uc.mu.Unlock()

	if favored {
		uc.notifier.ShowToast("Удалено из избранного", entity.ToastInfo)
		return false
	}
	uc.notifier.ShowToast("Добавлено в избранное", "")
	return true
}

func (uc *ListingUseCase) IsFavorite(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.favorites[id]
}

func (uc *ListingUseCase) Favorites() []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ids := make([]string, 0, len(uc.favorites))
	for id := range uc.favorites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (uc *ListingUseCase) ListListings(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Listing, int64, error) {
	return uc.listingRepo.List(ctx, filter, limit, offset)
}

func (uc *ListingUseCase) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

func (uc *ListingUseCase) ListBySeller(ctx context.Context, sellerName string) ([]*entity.Listing, error) {
	return uc.listingRepo.ListByAuthor(ctx, sellerName)
}

// GenerateDescription never fails; the service answers with fallback
// text on missing configuration or upstream errors.
func (uc *ListingUseCase) GenerateDescription(ctx context.Context, title, category, keywords string) string {
	return uc.descService.GenerateListingDescription(ctx, title, category, keywords)
}
