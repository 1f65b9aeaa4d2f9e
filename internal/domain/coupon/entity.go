package coupon

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	id               uuid.UUID
	code             Code
	userID           uuid.UUID
	validAtPartnerID uuid.UUID
	venueName        string
	status           Status
	createdAt        time.Time
	redeemedAt       *time.Time
}

func NewCoupon(code Code, userID, partnerID uuid.UUID, venueName string, now time.Time) *Coupon {
	return &Coupon{
		id:               uuid.New(),
		code:             code,
		userID:           userID,
		validAtPartnerID: partnerID,
		venueName:        venueName,
		status:           StatusActive,
		createdAt:        now,
	}
}

func Reconstruct(
	id uuid.UUID,
	code string,
	userID, partnerID uuid.UUID,
	venueName string,
	status string,
	createdAt time.Time,
	redeemedAt *time.Time,
) *Coupon {
	return &Coupon{
		id:               id,
		code:             Code(code),
		userID:           userID,
		validAtPartnerID: partnerID,
		venueName:        venueName,
		status:           Status(status),
		createdAt:        createdAt,
		redeemedAt:       redeemedAt,
	}
}

// CanRedeemAt checks status before venue so a used coupon reports as redeemed anywhere.
func (c *Coupon) CanRedeemAt(partnerID uuid.UUID) error {
	if c.status != StatusActive {
		return ErrAlreadyRedeemed
	}
	if c.validAtPartnerID != partnerID {
		return ErrWrongVenue
	}
	return nil
}

func (c *Coupon) Redeem(partnerID uuid.UUID, now time.Time) error {
	if err := c.CanRedeemAt(partnerID); err != nil {
		return err
	}
	c.status = StatusRedeemed
	c.redeemedAt = &now
	return nil
}

func (c *Coupon) ID() uuid.UUID               { return c.id }
func (c *Coupon) Code() Code                  { return c.code }
func (c *Coupon) UserID() uuid.UUID           { return c.userID }
func (c *Coupon) ValidAtPartnerID() uuid.UUID { return c.validAtPartnerID }
func (c *Coupon) VenueName() string           { return c.venueName }
func (c *Coupon) Status() Status              { return c.status }
func (c *Coupon) CreatedAt() time.Time        { return c.createdAt }
func (c *Coupon) RedeemedAt() *time.Time      { return c.redeemedAt }
