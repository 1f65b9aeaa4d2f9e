package rating

import (
	"context"

	"github.com/google/uuid"
)

type EligibilityInput struct {
	EventID uuid.UUID
	UserID  uuid.UUID
}

// EligibilityChecker returns ErrNotEligible when the user never checked in to the event.
type EligibilityChecker interface {
	CanRate(ctx context.Context, input EligibilityInput) error
}
