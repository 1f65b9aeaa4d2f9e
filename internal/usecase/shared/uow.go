package shared

import (
	"context"
	"time"

	"fervo/internal/domain/checkin"
	"fervo/internal/domain/coupon"
	"fervo/internal/domain/event"
	"fervo/internal/domain/rating"
	"fervo/internal/domain/subscription"
	"fervo/internal/domain/user"
	"fervo/internal/domain/venue"
	sqlc "fervo/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Serializable transaction for read-modify-write flows, retried on 40001/40P01
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Venues() VenueRepository
	Events() EventRepository
	CheckIns() CheckInRepository
	Ratings() RatingRepository
	Rewards() RewardRepository
	Coupons() CouponRepository
	Favorites() FavoriteRepository
	PushTokens() PushTokenRepository
	Subscriptions() SubscriptionRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads return write-side snapshots. The ForUpdate variants lock the
// row for the rest of the transaction.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	VenueByID(ctx context.Context, id uuid.UUID) (*VenueSnapshot, error)
	VenueForUpdate(ctx context.Context, id uuid.UUID) (*VenueSnapshot, error)
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	EventByPartnerAndID(ctx context.Context, partnerID, id uuid.UUID) (*EventSnapshot, error)
	EventForUpdate(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	HasCheckedIn(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
	RatingForUpdate(ctx context.Context, id string) (*RatingSnapshot, error)
	VenueCoinsForUpdate(ctx context.Context, userID, partnerID uuid.UUID) (int, error)
	CouponByCodeForUpdate(ctx context.Context, code string) (*coupon.Coupon, error)
	SubscriptionByPartner(ctx context.Context, partnerID uuid.UUID) (*subscription.Subscription, error)
	PushTokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (*UserSnapshot, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

type VenueRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, v *venue.Venue) error
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, v *venue.Venue) error
	UpdateImage(ctx context.Context, tx sqlc.DBTX, partnerID uuid.UUID, imageURL string) error
	UpdateRating(ctx context.Context, tx sqlc.DBTX, partnerID uuid.UUID, agg rating.Aggregate) error
}

type EventRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, e *event.Event) error
	Update(ctx context.Context, tx sqlc.DBTX, e *event.Event) error
	UpdateCheckInToken(ctx context.Context, tx sqlc.DBTX, e *event.Event) error
	Delete(ctx context.Context, tx sqlc.DBTX, partnerID, eventID uuid.UUID) error
	UpdateRating(ctx context.Context, tx sqlc.DBTX, eventID uuid.UUID, agg rating.Aggregate) error
}

type CheckInRepository interface {
	// Create writes the venue-side attendee row and the user-side history row.
	Create(ctx context.Context, tx sqlc.DBTX, c *checkin.CheckIn) error
}

type RatingRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, r *rating.Rating) error
	Delete(ctx context.Context, tx sqlc.DBTX, id string) error
}

type RewardRepository interface {
	SaveBalance(ctx context.Context, tx sqlc.DBTX, userID, partnerID uuid.UUID, coins int, now time.Time) error
	LogShare(ctx context.Context, tx sqlc.DBTX, share ShareRecord) error
}

type CouponRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	MarkRedeemed(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
}

type FavoriteRepository interface {
	Add(ctx context.Context, tx sqlc.DBTX, userID, partnerID uuid.UUID) error
	Remove(ctx context.Context, tx sqlc.DBTX, userID, partnerID uuid.UUID) error
}

type PushTokenRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, token string) error
	Delete(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, token string) error
}

type SubscriptionRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, s *subscription.Subscription) error
	// UpdateByStripeID reports false when no local subscription matches.
	UpdateByStripeID(ctx context.Context, tx sqlc.DBTX, stripeSubscriptionID string, status subscription.Status, periodEnd *time.Time) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]NotificationJob, error)
	MarkDone(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status, lastError string, runAt time.Time) error
}
