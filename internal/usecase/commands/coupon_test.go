//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fervo/internal/domain/coupon"
	"fervo/internal/pkg/clock"
	"fervo/internal/usecase/commands"
	"fervo/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeemCoupon(t *testing.T) {
	now := time.Date(2026, 7, 3, 1, 30, 0, 0, time.UTC)
	partnerID, guestID := uuid.New(), uuid.New()
	const code = "FERVO-123456-ABCDE"

	setup := func() (*memStore, commands.CouponCommands) {
		store := newMemStore()
		store.coupons[code] = coupon.NewCoupon(code, guestID, partnerID, "Club Fervo", now.Add(-24*time.Hour))
		return store, commands.NewCouponUseCase(&memUoW{s: store}, clock.NewMockClock(now))
	}

	t.Run("redeems and stamps the time", func(t *testing.T) {
		store, uc := setup()

		res, err := uc.Redeem(context.Background(), partnerID, code)
		require.NoError(t, err)
		assert.Equal(t, code, res.Code)
		assert.Equal(t, guestID, res.UserID)
		assert.Equal(t, now, res.RedeemedAt)

		stored := store.coupons[code]
		assert.Equal(t, coupon.StatusRedeemed, stored.Status())
		require.NotNil(t, stored.RedeemedAt())
		assert.Equal(t, now, *stored.RedeemedAt())
	})

	t.Run("lower-case input finds the coupon", func(t *testing.T) {
		_, uc := setup()
		_, err := uc.Redeem(context.Background(), partnerID, " fervo-123456-abcde ")
		assert.NoError(t, err)
	})

	t.Run("second redemption", func(t *testing.T) {
		_, uc := setup()
		_, err := uc.Redeem(context.Background(), partnerID, code)
		require.NoError(t, err)

		_, err = uc.Redeem(context.Background(), partnerID, code)
		testutil.AssertErrorIs(t, err, coupon.ErrAlreadyRedeemed)
	})

	t.Run("other venue", func(t *testing.T) {
		store, uc := setup()
		_, err := uc.Redeem(context.Background(), uuid.New(), code)
		testutil.AssertErrorIs(t, err, coupon.ErrWrongVenue)
		assert.Equal(t, coupon.StatusActive, store.coupons[code].Status())
	})

	t.Run("unknown code", func(t *testing.T) {
		_, uc := setup()
		_, err := uc.Redeem(context.Background(), partnerID, "FERVO-000000-ZZZZZ")
		testutil.AssertErrorIs(t, err, coupon.ErrCouponNotFound)
	})
}
