package response

import (
	"time"

	"fervo/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CheckInResponse struct {
	EventID     uuid.UUID `json:"event_id"`
	PartnerID   uuid.UUID `json:"partner_id"`
	EventName   string    `json:"event_name"`
	VenueName   string    `json:"venue_name"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

func FromCheckInResult(r *commands.CheckInResult) *CheckInResponse {
	var res CheckInResponse
	_ = copier.Copy(&res, r)
	return &res
}

type RatingResponse struct {
	RatingID      string  `json:"rating_id"`
	Replaced      bool    `json:"replaced"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}

func FromRatingResult(r *commands.RatingResult) *RatingResponse {
	var res RatingResponse
	_ = copier.Copy(&res, r)
	return &res
}

type ShareResponse struct {
	EventID      uuid.UUID `json:"event_id"`
	PartnerID    uuid.UUID `json:"partner_id"`
	Rewarded     bool      `json:"rewarded"`
	CoinsAwarded int       `json:"coins_awarded"`
	Balance      int       `json:"balance"`
	CouponCodes  []string  `json:"coupon_codes"`
	SkipReason   string    `json:"skip_reason,omitempty"`
}

func FromShareResult(r *commands.ShareResult) *ShareResponse {
	return &ShareResponse{
		EventID:      r.EventID,
		PartnerID:    r.PartnerID,
		Rewarded:     r.SkipReason == "",
		CoinsAwarded: r.CoinsAwarded,
		Balance:      r.Balance,
		CouponCodes:  r.CouponCodes,
		SkipReason:   string(r.SkipReason),
	}
}

type RedeemResponse struct {
	Code       string    `json:"code"`
	UserID     uuid.UUID `json:"user_id"`
	VenueName  string    `json:"venue_name"`
	Status     string    `json:"status"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

func FromRedeemResult(r *commands.RedeemResult) *RedeemResponse {
	res := RedeemResponse{Status: "redeemed"}
	_ = copier.Copy(&res, r)
	return &res
}

type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

type ListResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}
