package commands

import (
	"context"
	"time"

	"fervo/internal/domain/coupon"
	"fervo/internal/infra"
	"fervo/internal/pkg/clock"
	"fervo/internal/pkg/errs"
	"fervo/internal/pkg/metrics"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedeemResult struct {
	Code       string
	UserID     uuid.UUID
	VenueName  string
	RedeemedAt time.Time
}

type CouponCommands interface {
	// Redeem is called by the partner whose venue the coupon is presented at.
	Redeem(ctx context.Context, partnerID uuid.UUID, code string) (*RedeemResult, error)
}

type couponUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponUseCase(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponUseCaseImpl{uow: uow, clock: clk}
}

func (uc *couponUseCaseImpl) Redeem(ctx context.Context, partnerID uuid.UUID, code string) (*RedeemResult, error) {
	result, err := uc.redeem(ctx, partnerID, code)
	metrics.RecordRedemption(redemptionOutcome(err))
	return result, err
}

func (uc *couponUseCaseImpl) redeem(ctx context.Context, partnerID uuid.UUID, code string) (*RedeemResult, error) {
	var result *RedeemResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Reads().CouponByCodeForUpdate(ctx, code)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return coupon.ErrCouponNotFound
			}
			return derr
		}

		now := uc.clock.Now()
		if derr = c.Redeem(partnerID, now); derr != nil {
			return derr
		}
		if derr = tx.Coupons().MarkRedeemed(ctx, tx.DB(), c); derr != nil {
			return derr
		}

		result = &RedeemResult{
			Code:       c.Code().String(),
			UserID:     c.UserID(),
			VenueName:  c.VenueName(),
			RedeemedAt: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func redemptionOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errs.Is(err, coupon.ErrCouponNotFound):
		return "not_found"
	case errs.Is(err, coupon.ErrAlreadyRedeemed):
		return "already_redeemed"
	case errs.Is(err, coupon.ErrWrongVenue):
		return "wrong_venue"
	default:
		return "error"
	}
}
