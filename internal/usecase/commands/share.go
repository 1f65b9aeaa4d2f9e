package commands

import (
	"context"
	"crypto/rand"
	"io"
	"time"

	"fervo/internal/domain/coupon"
	"fervo/internal/domain/event"
	"fervo/internal/domain/reward"
	"fervo/internal/infra"
	"fervo/internal/pkg/clock"
	"fervo/internal/pkg/metrics"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

type ShareResult struct {
	EventID      uuid.UUID
	PartnerID    uuid.UUID
	CoinsAwarded int
	Balance      int
	CouponCodes  []string
	// SkipReason is empty when the share earned coins.
	SkipReason reward.SkipReason
}

type ShareCommands interface {
	RecordShare(ctx context.Context, userID, eventID uuid.UUID) (*ShareResult, error)
}

type shareUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy reward.Policy
	clock  clock.Clock
	random io.Reader
}

func NewShareUseCase(uow shared.UnitOfWork, policy reward.Policy, clk clock.Clock) ShareCommands {
	return &shareUseCaseImpl{uow: uow, policy: policy, clock: clk, random: rand.Reader}
}

func (uc *shareUseCaseImpl) RecordShare(ctx context.Context, userID, eventID uuid.UUID) (*ShareResult, error) {
	result, err := uc.recordShare(ctx, userID, eventID)
	switch {
	case err != nil:
		metrics.RecordShare("error", 0)
	case result.SkipReason != reward.SkipNone:
		metrics.RecordShare(string(result.SkipReason), 0)
	default:
		metrics.RecordShare("rewarded", len(result.CouponCodes))
	}
	return result, err
}

// recordShare runs serializable so two concurrent shares cannot both read the
// same balance and mint the same coupon twice.
func (uc *shareUseCaseImpl) recordShare(ctx context.Context, userID, eventID uuid.UUID) (*ShareResult, error) {
	var result *ShareResult
	err := uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		ev, derr := tx.Reads().EventByID(ctx, eventID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return event.ErrEventNotFound
			}
			return derr
		}

		balance, derr := tx.Reads().VenueCoinsForUpdate(ctx, userID, ev.PartnerID)
		if derr != nil {
			return derr
		}

		res := &ShareResult{EventID: ev.ID, PartnerID: ev.PartnerID, Balance: balance, CouponCodes: []string{}}
		res.SkipReason = reward.Eligibility(reward.ShareTarget{ShareEnabled: ev.ShareEnabled, EndTime: ev.EndTime}, now)
		if res.SkipReason != reward.SkipNone {
			result = res
			return uc.logShare(ctx, tx, ev, userID, 0, now)
		}

		outcome := uc.policy.Apply(balance)

		if derr = tx.Rewards().SaveBalance(ctx, tx.DB(), userID, ev.PartnerID, outcome.Balance, now); derr != nil {
			return derr
		}
		if derr = uc.logShare(ctx, tx, ev, userID, outcome.Awarded, now); derr != nil {
			return derr
		}

		if outcome.CouponsMinted > 0 {
			venueSnap, derr := tx.Reads().VenueByID(ctx, ev.PartnerID)
			if derr != nil {
				return derr
			}
			for i := 0; i < outcome.CouponsMinted; i++ {
				code, derr := uc.mintCoupon(ctx, tx, userID, venueSnap, now)
				if derr != nil {
					return derr
				}
				res.CouponCodes = append(res.CouponCodes, code)
			}
		}

		res.CoinsAwarded = outcome.Awarded
		res.Balance = outcome.Balance
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *shareUseCaseImpl) mintCoupon(ctx context.Context, tx shared.Tx, userID uuid.UUID, v *shared.VenueSnapshot, now time.Time) (string, error) {
	code, err := coupon.GenerateCode(now, uc.random)
	if err != nil {
		return "", err
	}
	c := coupon.NewCoupon(code, userID, v.ID, v.Name, now)
	if err = tx.Coupons().Create(ctx, tx.DB(), c); err != nil {
		return "", err
	}
	err = shared.EnqueuePush(ctx, tx, shared.TopicCouponMinted, shared.PushPayload{
		UserID: userID,
		Title:  "New coupon unlocked",
		Body:   "You earned a coupon at " + v.Name + ": " + code.String(),
		Data:   map[string]string{"coupon_code": code.String(), "partner_id": v.ID.String()},
	}, now)
	if err != nil {
		return "", err
	}
	return code.String(), nil
}

func (uc *shareUseCaseImpl) logShare(ctx context.Context, tx shared.Tx, ev *shared.EventSnapshot, userID uuid.UUID, coins int, now time.Time) error {
	return tx.Rewards().LogShare(ctx, tx.DB(), shared.ShareRecord{
		EventID:      ev.ID,
		UserID:       userID,
		PartnerID:    ev.PartnerID,
		CoinsAwarded: coins,
		SharedAt:     now,
	})
}
