package entity

// Chat is a conversation thread with one counterpart, keyed by the
// counterpart's display name and carrying a denormalized preview.
type Chat struct {
	ID           string `json:"id"`
	UserName     string `json:"user_name"`
	UserAvatar   string `json:"user_avatar"`
	LastMessage  string `json:"last_message"`
	UnreadCount  int    `json:"unread_count"`
	ListingTitle string `json:"listing_title"`
	Time         string `json:"time"`
}
