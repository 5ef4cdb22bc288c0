package entity

const (
	ListingStatusActive   = "active"
	ListingStatusPending  = "pending"
	ListingStatusArchived = "archived"
	ListingStatusBanned   = "banned"
)

type Listing struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Date        string  `json:"date"`
	Author      string  `json:"author"`
	AuthorID    string  `json:"author_id,omitempty"`
	Status      string  `json:"status"`

	// Monetization flags affect placement only, never status.
	IsPromoted bool `json:"is_promoted"`
	IsVip      bool `json:"is_vip"`
	IsUrgent   bool `json:"is_urgent"`
}
