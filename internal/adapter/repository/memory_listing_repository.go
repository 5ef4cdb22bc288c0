package repository

import (
	"context"
	"sync"

	"mirnito/internal/domain/entity"
	"mirnito/internal/domain/repository"
	"mirnito/pkg/errors"
)

// memoryListingRepository keeps the listing collection in memory in
// insertion order, newest first. Everything resets to the seed set on
// restart.
type memoryListingRepository struct {
	mu       sync.RWMutex
	listings []*entity.Listing
}

func NewMemoryListingRepository(seed []*entity.Listing) repository.ListingRepository {
	listings := make([]*entity.Listing, 0, len(seed))
	for _, l := range seed {
		copied := *l
		listings = append(listings, &copied)
	}

	return &memoryListingRepository{
		listings: listings,
	}
}

func (r *memoryListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *listing
	// Newest-first is positional, not chronological.
	r.listings = append([]*entity.Listing{&copied}, r.listings...)
	return nil
}

func (r *memoryListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.listings {
		if l.ID == id {
			copied := *l
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Listing", nil)
}

func (r *memoryListingRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Listing, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*entity.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		if matchesListingFilter(l, filter) {
			matched = append(matched, l)
		}
	}

	total := int64(len(matched))

	if offset >= len(matched) {
		return []*entity.Listing{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	result := make([]*entity.Listing, 0, len(matched))
	for _, l := range matched {
		copied := *l
		result = append(result, &copied)
	}
	return result, total, nil
}

func matchesListingFilter(l *entity.Listing, filter map[string]interface{}) bool {
	for key, value := range filter {
		switch key {
		case "category":
			if l.Category != value {
				return false
			}
		case "status":
			if l.Status != value {
				return false
			}
		case "author":
			if l.Author != value {
				return false
			}
		}
	}
	return true
}

func (r *memoryListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.listings {
		if l.ID == listing.ID {
			copied := *listing
			r.listings[i] = &copied
			return nil
		}
	}
	return errors.NotFound("Listing", nil)
}

func (r *memoryListingRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.listings {
		if l.ID == id {
			r.listings = append(r.listings[:i], r.listings[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Listing", nil)
}

func (r *memoryListingRepository) ListByAuthor(ctx context.Context, author string) ([]*entity.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Listing, 0)
	for _, l := range r.listings {
		if l.Author == author {
			copied := *l
			result = append(result, &copied)
		}
	}
	return result, nil
}
