package entity

const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"
)

// Toast is a short-lived status message; it self-removes after a fixed
// delay and has no read state.
type Toast struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Type    string `json:"type"`
}
