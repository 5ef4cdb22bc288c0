package entity

const (
	SenderSelf        = "me"
	SenderCounterpart = "other"
)

type Message struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
	Time   string `json:"time"`
	Read   bool   `json:"read"`
}
