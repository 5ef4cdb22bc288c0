package usecase

import (
	"context"
	"sync"

	"mirnito/internal/domain/repository"
)

// Page identifies one of the fixed set of destination pages.
type Page string

const (
	PageHome          Page = "home"
	PageBrowse        Page = "browse-listings"
	PagePostListing   Page = "post-listing"
	PageAbout         Page = "about"
	PageSafety        Page = "safety"
	PageContacts      Page = "contacts"
	PageBlog          Page = "blog"
	PageTerms         Page = "terms"
	PagePrivacy       Page = "privacy"
	PageListingDetail Page = "listing-detail"
	PageProfile       Page = "profile"
	PageAdmin         Page = "admin"
	PageChat          Page = "chat"
	PageSellerProfile Page = "seller-profile"
)

var pagesByToken = map[string]Page{
	"home":            PageHome,
	"browse-listings": PageBrowse,
	"post-listing":    PagePostListing,
	"about":           PageAbout,
	"safety":          PageSafety,
	"contacts":        PageContacts,
	"blog":            PageBlog,
	"terms":           PageTerms,
	"privacy":         PagePrivacy,
	"listing-detail":  PageListingDetail,
	"profile":         PageProfile,
	"admin":           PageAdmin,
	"chat":            PageChat,
	"seller-profile":  PageSellerProfile,
}

// NavigationUseCase maps opaque location tokens onto pages and carries
// the two pieces of transient selection state across navigations.
type NavigationUseCase struct {
	listingRepo repository.ListingRepository

	mu                sync.Mutex
	selectedListingID string
	selectedSeller    string
}

func NewNavigationUseCase(listingRepo repository.ListingRepository) *NavigationUseCase {
	return &NavigationUseCase{
		listingRepo: listingRepo,
	}
}

func (uc *NavigationUseCase) SelectListing(id string) {
	uc.mu.Lock()
	uc.selectedListingID = id
	uc.mu.Unlock()
}

func (uc *NavigationUseCase) SelectSeller(name string) {
	uc.mu.Lock()
	uc.selectedSeller = name
	uc.mu.Unlock()
}

func (uc *NavigationUseCase) SelectedListingID() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.selectedListingID
}

func (uc *NavigationUseCase) SelectedSeller() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.selectedSeller
}

// Resolve maps a token to its page. Unknown tokens fall back to home;
// detail pages whose selection is absent (or points at a listing that
// no longer exists) fall back to browsing instead of failing.
func (uc *NavigationUseCase) Resolve(ctx context.Context, token string) Page {
	page, ok := pagesByToken[token]
	if !ok {
		return PageHome
	}

	uc.mu.Lock()
	listingID := uc.selectedListingID
	seller := uc.selectedSeller
	uc.mu.Unlock()

	switch page {
	case PageListingDetail:
		if listingID == "" {
			return PageBrowse
		}
		if _, err := uc.listingRepo.GetByID(ctx, listingID); err != nil {
			return PageBrowse
		}
	case PageSellerProfile:
		if seller == "" {
			return PageBrowse
		}
	}

	return page
}
