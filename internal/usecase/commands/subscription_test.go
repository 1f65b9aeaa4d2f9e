//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fervo/internal/domain/subscription"
	"fervo/internal/domain/venue"
	"fervo/internal/usecase/commands"
	"fervo/internal/usecase/shared"
	"fervo/tests/common/builder"
	"fervo/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billingMock struct{ mock.Mock }

func (m *billingMock) CreateCheckoutSession(ctx context.Context, req shared.CheckoutRequest) (*shared.CheckoutSession, error) {
	args := m.Called(ctx, req)
	s, _ := args.Get(0).(*shared.CheckoutSession)
	return s, args.Error(1)
}

func (m *billingMock) ParseWebhook(payload []byte, signature string) (*shared.BillingEvent, error) {
	args := m.Called(payload, signature)
	e, _ := args.Get(0).(*shared.BillingEvent)
	return e, args.Error(1)
}

func TestCreateCheckoutSession(t *testing.T) {
	prices := commands.PriceIDs{subscription.PlanPro: "price_pro"}

	t.Run("uses the configured price and partner email", func(t *testing.T) {
		store := newMemStore()
		partner := builder.NewUserBuilder().AsPartner().WithEmail("club@example.com").BuildSnapshot()
		store.addUser(partner)
		store.addVenue(builder.NewVenueBuilder().With(func(b *builder.VenueBuilder) { b.ID = partner.ID }).BuildSnapshot())

		billing := &billingMock{}
		billing.On("CreateCheckoutSession", mock.Anything, shared.CheckoutRequest{
			PartnerID: partner.ID, Plan: "pro", PriceID: "price_pro", Email: "club@example.com",
		}).Return(&shared.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1"}, nil).Once()

		uc := commands.NewSubscriptionUseCase(&memUoW{s: store}, billing, prices)
		session, err := uc.CreateCheckoutSession(context.Background(), partner.ID, "pro")
		require.NoError(t, err)
		assert.Equal(t, "cs_1", session.ID)
		billing.AssertExpectations(t)
	})

	t.Run("plan without price", func(t *testing.T) {
		uc := commands.NewSubscriptionUseCase(&memUoW{s: newMemStore()}, &billingMock{}, prices)
		_, err := uc.CreateCheckoutSession(context.Background(), uuid.New(), "basic")
		testutil.AssertErrorIs(t, err, subscription.ErrPlanNotConfigured)
	})

	t.Run("unknown plan", func(t *testing.T) {
		uc := commands.NewSubscriptionUseCase(&memUoW{s: newMemStore()}, &billingMock{}, prices)
		_, err := uc.CreateCheckoutSession(context.Background(), uuid.New(), "gold")
		testutil.AssertErrorIs(t, err, subscription.ErrInvalidPlan)
	})

	t.Run("no venue profile", func(t *testing.T) {
		uc := commands.NewSubscriptionUseCase(&memUoW{s: newMemStore()}, &billingMock{}, prices)
		_, err := uc.CreateCheckoutSession(context.Background(), uuid.New(), "pro")
		testutil.AssertErrorIs(t, err, venue.ErrVenueNotFound)
	})
}

func TestHandleWebhook(t *testing.T) {
	partnerID := uuid.New()
	periodEnd := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	payload := []byte(`{}`)

	run := func(t *testing.T, store *memStore, evt *shared.BillingEvent) error {
		t.Helper()
		billing := &billingMock{}
		billing.On("ParseWebhook", payload, "sig").Return(evt, nil).Once()
		return commands.NewSubscriptionUseCase(&memUoW{s: store}, billing, nil).HandleWebhook(context.Background(), payload, "sig")
	}

	t.Run("checkout completion activates", func(t *testing.T) {
		store := newMemStore()
		err := run(t, store, &shared.BillingEvent{
			Type: shared.BillingEventCheckoutCompleted, PartnerID: partnerID, Plan: "pro",
			StripeCustomerID: "cus_1", StripeSubscriptionID: "sub_1",
		})
		require.NoError(t, err)

		sub := store.subs[partnerID]
		require.NotNil(t, sub)
		assert.Equal(t, subscription.StatusActive, sub.Status)
		assert.Equal(t, subscription.PlanPro, sub.Plan)
		assert.Equal(t, "sub_1", *sub.StripeSubscriptionID)
	})

	t.Run("update and delete follow the stripe subscription", func(t *testing.T) {
		store := newMemStore()
		require.NoError(t, run(t, store, &shared.BillingEvent{
			Type: shared.BillingEventCheckoutCompleted, PartnerID: partnerID, Plan: "basic", StripeSubscriptionID: "sub_1",
		}))

		require.NoError(t, run(t, store, &shared.BillingEvent{
			Type: shared.BillingEventSubscriptionUpdated, Status: "past_due", StripeSubscriptionID: "sub_1", CurrentPeriodEnd: &periodEnd,
		}))
		assert.Equal(t, subscription.StatusPastDue, store.subs[partnerID].Status)
		assert.Equal(t, periodEnd, *store.subs[partnerID].CurrentPeriodEnd)

		require.NoError(t, run(t, store, &shared.BillingEvent{
			Type: shared.BillingEventSubscriptionDeleted, Status: "active", StripeSubscriptionID: "sub_1",
		}))
		assert.Equal(t, subscription.StatusCanceled, store.subs[partnerID].Status)
	})

	t.Run("unknown subscription is ignored", func(t *testing.T) {
		store := newMemStore()
		err := run(t, store, &shared.BillingEvent{Type: shared.BillingEventSubscriptionUpdated, Status: "active", StripeSubscriptionID: "sub_x"})
		assert.NoError(t, err)
		assert.Empty(t, store.subs)
	})

	t.Run("ignored event type", func(t *testing.T) {
		assert.NoError(t, run(t, newMemStore(), nil))
	})

	t.Run("completion with unusable metadata is acknowledged", func(t *testing.T) {
		for name, evt := range map[string]*shared.BillingEvent{
			"no partner":   {Type: shared.BillingEventCheckoutCompleted, Plan: "pro", StripeSubscriptionID: "sub_1"},
			"unknown plan": {Type: shared.BillingEventCheckoutCompleted, PartnerID: partnerID, Plan: "platinum"},
		} {
			store := newMemStore()
			assert.NoError(t, run(t, store, evt), name)
			assert.Empty(t, store.subs, name)
		}
	})
}
