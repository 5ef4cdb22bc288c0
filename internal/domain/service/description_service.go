package service

import (
	"context"
)

// DescriptionService generates listing copy from a short prompt. It
// never fails past this boundary: missing configuration and upstream
// errors are both mapped to fixed fallback text.
type DescriptionService interface {
	GenerateListingDescription(ctx context.Context, title, category, keywords string) string
}
