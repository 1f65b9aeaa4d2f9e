//go:build unit

package commands_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"fervo/internal/domain/event"
	"fervo/internal/domain/reward"
	"fervo/internal/pkg/clock"
	"fervo/internal/usecase/commands"
	"fervo/internal/usecase/shared"
	"fervo/tests/common/builder"
	"fervo/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var couponCode = regexp.MustCompile(`^FERVO-[0-9]{6}-[A-Z0-9]{5}$`)

type shareFixture struct {
	store  *memStore
	uc     commands.ShareCommands
	clk    *clock.MockClock
	userID uuid.UUID
	event  *shared.EventSnapshot
}

func newShareFixture(t *testing.T, mutate func(*builder.EventBuilder)) *shareFixture {
	t.Helper()
	store := newMemStore()
	v := builder.NewVenueBuilder().BuildSnapshot()
	store.addVenue(v)

	eb := builder.NewEventBuilder().WithPartner(v.ID)
	if mutate != nil {
		mutate(eb)
	}
	ev := eb.BuildSnapshot()
	store.addEvent(ev)

	clk := clock.NewMockClock(ev.StartTime.Add(30 * time.Minute))
	return &shareFixture{
		store:  store,
		uc:     commands.NewShareUseCase(&memUoW{s: store}, reward.DefaultPolicy(), clk),
		clk:    clk,
		userID: uuid.New(),
		event:  ev,
	}
}

func TestRecordShare_MintsOneCouponPerThresholdCrossing(t *testing.T) {
	f := newShareFixture(t, nil)
	ctx := context.Background()

	var codes []string
	for i := 1; i <= 25; i++ {
		res, err := f.uc.RecordShare(ctx, f.userID, f.event.ID)
		require.NoError(t, err)
		assert.Equal(t, reward.SkipNone, res.SkipReason)
		assert.Equal(t, 10, res.CoinsAwarded)
		assert.Equal(t, (i*10)%100, res.Balance)
		codes = append(codes, res.CouponCodes...)
	}

	require.Len(t, codes, 2)
	for _, c := range codes {
		assert.Regexp(t, couponCode, c)
		stored, ok := f.store.coupons[c]
		require.True(t, ok)
		assert.Equal(t, f.event.PartnerID, stored.ValidAtPartnerID())
		assert.Equal(t, f.userID, stored.UserID())
		assert.Equal(t, "Club Fervo", stored.VenueName())
	}
	assert.Equal(t, 50, f.store.coins[[2]uuid.UUID{f.userID, f.event.PartnerID}])
	assert.Len(t, f.store.shares, 25)
	assert.Equal(t, 2, f.store.jobsByTopic(shared.TopicCouponMinted))
}

func TestRecordShare_SkipsReward(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.EventBuilder)
		want   reward.SkipReason
	}{
		{name: "sharing disabled", mutate: func(b *builder.EventBuilder) { b.SharingDisabled() }, want: reward.SkipSharingDisabled},
		{name: "event ended", mutate: func(b *builder.EventBuilder) { b.Ended() }, want: reward.SkipEventEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newShareFixture(t, tt.mutate)
			if tt.want == reward.SkipEventEnded {
				f.clk.Set(f.event.EndTime.Add(time.Minute))
			}
			key := [2]uuid.UUID{f.userID, f.event.PartnerID}
			f.store.coins[key] = 95

			res, err := f.uc.RecordShare(context.Background(), f.userID, f.event.ID)
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.SkipReason)
			assert.Equal(t, 0, res.CoinsAwarded)
			assert.Equal(t, 95, res.Balance)
			assert.Empty(t, res.CouponCodes)
			assert.Equal(t, 95, f.store.coins[key])
			require.Len(t, f.store.shares, 1, "skipped shares are still logged")
			assert.Equal(t, 0, f.store.shares[0].CoinsAwarded)
		})
	}
}

func TestRecordShare_BalancesArePerVenue(t *testing.T) {
	f := newShareFixture(t, nil)
	ctx := context.Background()

	other := builder.NewVenueBuilder().BuildSnapshot()
	other.Name = "Sala Dos"
	f.store.addVenue(other)
	otherEvent := builder.NewEventBuilder().WithPartner(other.ID).BuildSnapshot()
	f.store.addEvent(otherEvent)
	f.store.coins[[2]uuid.UUID{f.userID, f.event.PartnerID}] = 90

	res, err := f.uc.RecordShare(ctx, f.userID, otherEvent.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Balance)
	assert.Empty(t, res.CouponCodes)
	assert.Equal(t, 90, f.store.coins[[2]uuid.UUID{f.userID, f.event.PartnerID}])
}

func TestRecordShare_UnknownEvent(t *testing.T) {
	f := newShareFixture(t, nil)

	_, err := f.uc.RecordShare(context.Background(), f.userID, uuid.New())
	testutil.AssertErrorIs(t, err, event.ErrEventNotFound)
	assert.Empty(t, f.store.shares)
}

func TestRecordShare_LargeRewardMintsSeveral(t *testing.T) {
	store := newMemStore()
	v := builder.NewVenueBuilder().BuildSnapshot()
	store.addVenue(v)
	ev := builder.NewEventBuilder().WithPartner(v.ID).BuildSnapshot()
	store.addEvent(ev)

	policy, err := reward.NewPolicy(250, 100)
	require.NoError(t, err)
	uc := commands.NewShareUseCase(&memUoW{s: store}, policy, clock.NewMockClock(ev.StartTime.Add(time.Minute)))

	res, err := uc.RecordShare(context.Background(), uuid.New(), ev.ID)
	require.NoError(t, err)
	assert.Len(t, res.CouponCodes, 2)
	assert.Equal(t, 50, res.Balance)
	assert.NotEqual(t, res.CouponCodes[0], res.CouponCodes[1])
}
