package queries

import (
	"time"

	"fervo/internal/infra"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	DisplayName string     `json:"display_name"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Venue       *VenueView `json:"venue,omitempty"`
}

// VenueView is the public venue projection used for map markers and lists
type VenueView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	Category           string    `json:"category"`
	ImageURL           *string   `json:"image_url,omitempty"`
	AverageVenueRating float64   `json:"average_venue_rating"`
	VenueRatingCount   int       `json:"venue_rating_count"`
}

type VenueDetailView struct {
	VenueView
	SubscriptionStatus string       `json:"subscription_status"`
	UpcomingEvents     []*EventView `json:"upcoming_events"`
}

// EventView never carries the check-in token
type EventView struct {
	ID            uuid.UUID `json:"id"`
	PartnerID     uuid.UUID `json:"partner_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	MusicGenre    string    `json:"music_genre"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	IsFree        bool      `json:"is_free"`
	PriceCents    int       `json:"price_cents"`
	Currency      string    `json:"currency"`
	ShareEnabled  bool      `json:"share_enabled"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int       `json:"rating_count"`
	VenueName     string    `json:"venue_name,omitempty"`
	VenueCity     string    `json:"venue_city,omitempty"`
	Latitude      float64   `json:"latitude,omitempty"`
	Longitude     float64   `json:"longitude,omitempty"`
}

func (e *EventView) IsLive(now time.Time) bool {
	return !now.Before(e.StartTime) && now.Before(e.EndTime)
}

// EventQRView is what a partner prints at the door
type EventQRView struct {
	EventID   uuid.UUID `json:"event_id"`
	PartnerID uuid.UUID `json:"partner_id"`
	Payload   string    `json:"payload"`
	PNG       []byte    `json:"-"`
}

type CheckInHistoryItem struct {
	EventID     uuid.UUID `json:"event_id"`
	PartnerID   uuid.UUID `json:"partner_id"`
	EventName   string    `json:"event_name"`
	VenueName   string    `json:"venue_name"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

type AttendeeView struct {
	UserID          uuid.UUID `json:"user_id"`
	UserDisplayName string    `json:"user_display_name"`
	CheckedInAt     time.Time `json:"checked_in_at"`
}

type RatingListItem struct {
	ID              string    `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserDisplayName string    `json:"user_display_name"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	CreatedAt       time.Time `json:"created_at"`
}

type RatingView struct {
	ID        string    `json:"id"`
	EventID   uuid.UUID `json:"event_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CoinBalanceView struct {
	PartnerID uuid.UUID `json:"partner_id"`
	VenueName string    `json:"venue_name"`
	Coins     int       `json:"coins"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CouponView struct {
	ID               uuid.UUID  `json:"id"`
	Code             string     `json:"code"`
	UserID           uuid.UUID  `json:"user_id"`
	ValidAtPartnerID uuid.UUID  `json:"valid_at_partner_id"`
	VenueName        string     `json:"venue_name"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	RedeemedAt       *time.Time `json:"redeemed_at,omitempty"`
}

type EventAnalyticsItem struct {
	EventID       uuid.UUID `json:"event_id"`
	Name          string    `json:"name"`
	StartTime     time.Time `json:"start_time"`
	CheckIns      int64     `json:"check_ins"`
	Shares        int64     `json:"shares"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int       `json:"rating_count"`
}

type PartnerAnalyticsView struct {
	PartnerID          uuid.UUID             `json:"partner_id"`
	TotalEvents        int64                 `json:"total_events"`
	TotalCheckIns      int64                 `json:"total_check_ins"`
	TotalShares        int64                 `json:"total_shares"`
	CouponsMinted      int64                 `json:"coupons_minted"`
	CouponsRedeemed    int64                 `json:"coupons_redeemed"`
	AverageVenueRating float64               `json:"average_venue_rating"`
	VenueRatingCount   int                   `json:"venue_rating_count"`
	Events             []*EventAnalyticsItem `json:"events"`
}

type SubscriptionView struct {
	PartnerID        uuid.UUID  `json:"partner_id"`
	Plan             string     `json:"plan"`
	Status           string     `json:"status"`
	Active           bool       `json:"active"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

// CouponLookupView is the partner-side answer to a scanned or typed code
type CouponLookupView struct {
	CouponView
	ValidHere  bool `json:"valid_here"`
	Redeemable bool `json:"redeemable"`
}

type FeedbackSummaryView struct {
	EventID      uuid.UUID `json:"event_id"`
	CommentCount int       `json:"comment_count"`
	Summary      string    `json:"summary"`
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
