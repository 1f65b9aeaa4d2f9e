package shared

import (
	"context"
	"io"
	"time"

	"fervo/internal/pkg/errs"

	"github.com/google/uuid"
)

// Ports to third-party services. Adapters live under internal/infra.

type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

type PushSender interface {
	Send(ctx context.Context, tokens []string, msg PushMessage) error
}

type VenueDocument struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	Address            string
	City               string
	Latitude           float64
	Longitude          float64
	Category           string
	ImageURL           *string
	AverageVenueRating float64
	VenueRatingCount   int
}

type EventDocument struct {
	ID            uuid.UUID
	PartnerID     uuid.UUID
	Name          string
	Description   string
	MusicGenre    string
	StartTime     time.Time
	EndTime       time.Time
	IsFree        bool
	PriceCents    int
	Currency      string
	ShareEnabled  bool
	AverageRating float64
	RatingCount   int
}

// DirectoryMirror publishes the public directory projection for realtime map clients.
// Check-in tokens are never part of a document.
type DirectoryMirror interface {
	UpsertVenue(ctx context.Context, doc VenueDocument) error
	UpsertEvent(ctx context.Context, doc EventDocument) error
	DeleteEvent(ctx context.Context, partnerID, eventID uuid.UUID) error
}

type ImageStore interface {
	UploadVenueImage(ctx context.Context, partnerID uuid.UUID, filename string, file io.Reader) (string, error)
}

type CheckoutRequest struct {
	PartnerID uuid.UUID
	Plan      string
	PriceID   string
	Email     string
}

type CheckoutSession struct {
	ID  string
	URL string
}

const (
	BillingEventCheckoutCompleted   = "checkout.session.completed"
	BillingEventSubscriptionUpdated = "customer.subscription.updated"
	BillingEventSubscriptionDeleted = "customer.subscription.deleted"
)

// BillingEvent is the subset of a verified webhook the service acts on.
type BillingEvent struct {
	Type                 string
	PartnerID            uuid.UUID
	Plan                 string
	Status               string
	StripeCustomerID     string
	StripeSubscriptionID string
	CurrentPeriodEnd     *time.Time
}

// ErrInvalidWebhookSignature is returned by ParseWebhook for payloads that fail verification.
var ErrInvalidWebhookSignature = errs.New("invalid webhook signature")

type BillingGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	// ParseWebhook verifies the signature and returns nil, nil for ignored event types.
	ParseWebhook(payload []byte, signature string) (*BillingEvent, error)
}

type FeedbackSummarizer interface {
	Summarize(ctx context.Context, eventName string, comments []string) (string, error)
}
