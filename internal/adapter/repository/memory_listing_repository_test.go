package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirnito/internal/domain/entity"
	"mirnito/pkg/errors"
)

func TestListingCreatePrependsNewestFirst(t *testing.T) {
	repo := NewMemoryListingRepository(SeedListings())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Listing{ID: "a5", Title: "Новое"}))

	listings, total, err := repo.List(ctx, nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, "a5", listings[0].ID)
	assert.Equal(t, "a1", listings[1].ID)
}

func TestListingListFilters(t *testing.T) {
	repo := NewMemoryListingRepository(SeedListings())
	ctx := context.Background()

	byCategory, total, err := repo.List(ctx, map[string]interface{}{"category": "Мебель"}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Диван-книжка", byCategory[0].Title)

	byStatus, total, err := repo.List(ctx, map[string]interface{}{"status": entity.ListingStatusActive}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, byStatus, 2)
}

func TestListingListPaginates(t *testing.T) {
	repo := NewMemoryListingRepository(SeedListings())
	ctx := context.Background()

	page, total, err := repo.List(ctx, nil, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, page, 2)
	assert.Equal(t, "a3", page[0].ID)

	// Offset past the end yields an empty page, not an error.
	empty, total, err := repo.List(ctx, nil, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Empty(t, empty)
}

func TestListingGetReturnsCopy(t *testing.T) {
	repo := NewMemoryListingRepository(SeedListings())
	ctx := context.Background()

	listing, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)

	listing.Title = "изменено"

	again, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Детская коляска Yoya", again.Title)
}

func TestListingDeleteMissingReturnsNotFound(t *testing.T) {
	repo := NewMemoryListingRepository(nil)

	err := repo.Delete(context.Background(), "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListingListByAuthor(t *testing.T) {
	repo := NewMemoryListingRepository(SeedListings())

	listings, err := repo.ListByAuthor(context.Background(), "Анна")
	require.NoError(t, err)
	require.Len(t, listings, 2)
	for _, l := range listings {
		assert.Equal(t, "Анна", l.Author)
	}
}
