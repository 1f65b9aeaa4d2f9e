package subscription

import (
	"time"

	"fervo/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlan          = errs.New("plan must be basic or pro")
	ErrPlanNotConfigured    = errs.New("plan has no configured price")
	ErrSubscriptionNotFound = errs.New("subscription not found")
)

type Plan string

const (
	PlanBasic Plan = "basic"
	PlanPro   Plan = "pro"
)

func (p Plan) String() string { return string(p) }

func NewPlan(s string) (Plan, error) {
	switch p := Plan(s); p {
	case PlanBasic, PlanPro:
		return p, nil
	default:
		return "", ErrInvalidPlan
	}
}

// Status mirrors the billing provider's subscription status string.
type Status string

const (
	StatusActive   Status = "active"
	StatusTrialing Status = "trialing"
	StatusPastDue  Status = "past_due"
	StatusCanceled Status = "canceled"
	StatusNone     Status = "none"
)

func (s Status) IsActive() bool {
	return s == StatusActive || s == StatusTrialing
}

type Subscription struct {
	PartnerID            uuid.UUID
	Plan                 Plan
	Status               Status
	StripeCustomerID     *string
	StripeSubscriptionID *string
	CurrentPeriodEnd     *time.Time
}

func (s *Subscription) IsActive() bool {
	return s != nil && s.Status.IsActive()
}
