package entity

const (
	NotificationSystem  = "system"
	NotificationMessage = "message"
	NotificationPrice   = "price"
	NotificationSuccess = "success"
)

type Notification struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Time  string `json:"time"`
	Read  bool   `json:"read"`
	Type  string `json:"type"`
}
