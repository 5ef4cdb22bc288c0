package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"mirnito/internal/adapter/repository"
	"mirnito/internal/domain/entity"
)

func newNavigationFixture(listings []*entity.Listing) *NavigationUseCase {
	return NewNavigationUseCase(repository.NewMemoryListingRepository(listings))
}

func TestResolveKnownTokens(t *testing.T) {
	uc := newNavigationFixture(nil)
	ctx := context.Background()

	cases := map[string]Page{
		"home":            PageHome,
		"browse-listings": PageBrowse,
		"post-listing":    PagePostListing,
		"about":           PageAbout,
		"safety":          PageSafety,
		"contacts":        PageContacts,
		"blog":            PageBlog,
		"terms":           PageTerms,
		"privacy":         PagePrivacy,
		"profile":         PageProfile,
		"admin":           PageAdmin,
		"chat":            PageChat,
	}
	for token, want := range cases {
		assert.Equal(t, want, uc.Resolve(ctx, token), "token %q", token)
	}
}

func TestResolveUnknownTokenFallsBackToHome(t *testing.T) {
	uc := newNavigationFixture(nil)

	assert.Equal(t, PageHome, uc.Resolve(context.Background(), "no-such-page"))
	assert.Equal(t, PageHome, uc.Resolve(context.Background(), ""))
}

func TestResolveListingDetailRequiresLiveSelection(t *testing.T) {
	uc := newNavigationFixture([]*entity.Listing{{ID: "a1", Title: "Диван"}})
	ctx := context.Background()

	// No selection yet.
	assert.Equal(t, PageBrowse, uc.Resolve(ctx, "listing-detail"))

	uc.SelectListing("a1")
	assert.Equal(t, PageListingDetail, uc.Resolve(ctx, "listing-detail"))

	// Selection pointing at a listing that no longer exists.
	uc.SelectListing("gone")
	assert.Equal(t, PageBrowse, uc.Resolve(ctx, "listing-detail"))
}

func TestResolveSellerProfileRequiresSelection(t *testing.T) {
	uc := newNavigationFixture(nil)
	ctx := context.Background()

	assert.Equal(t, PageBrowse, uc.Resolve(ctx, "seller-profile"))

	uc.SelectSeller("Анна")
	assert.Equal(t, PageSellerProfile, uc.Resolve(ctx, "seller-profile"))
	assert.Equal(t, "Анна", uc.SelectedSeller())
}

func TestSelectionSurvivesUnrelatedNavigation(t *testing.T) {
	uc := newNavigationFixture([]*entity.Listing{{ID: "a1"}})
	ctx := context.Background()

	uc.SelectListing("a1")
	uc.Resolve(ctx, "about")
	uc.Resolve(ctx, "home")

	assert.Equal(t, "a1", uc.SelectedListingID())
	assert.Equal(t, PageListingDetail, uc.Resolve(ctx, "listing-detail"))
}
