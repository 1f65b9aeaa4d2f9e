package commands

import (
	"context"
	"log/slog"

	"fervo/internal/domain/subscription"
	"fervo/internal/domain/venue"
	"fervo/internal/infra"
	"fervo/internal/pkg/ptr"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

// PriceIDs maps each plan to the billing provider's recurring price id.
type PriceIDs map[subscription.Plan]string

type SubscriptionCommands interface {
	CreateCheckoutSession(ctx context.Context, partnerID uuid.UUID, plan string) (*shared.CheckoutSession, error)
	// HandleWebhook verifies and applies a billing webhook. Unknown event types are ignored.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type subscriptionUseCaseImpl struct {
	uow     shared.UnitOfWork
	billing shared.BillingGateway
	prices  PriceIDs
}

func NewSubscriptionUseCase(uow shared.UnitOfWork, billing shared.BillingGateway, prices PriceIDs) SubscriptionCommands {
	return &subscriptionUseCaseImpl{uow: uow, billing: billing, prices: prices}
}

func (uc *subscriptionUseCaseImpl) CreateCheckoutSession(ctx context.Context, partnerID uuid.UUID, plan string) (*shared.CheckoutSession, error) {
	p, err := subscription.NewPlan(plan)
	if err != nil {
		return nil, err
	}
	priceID := uc.prices[p]
	if priceID == "" {
		return nil, subscription.ErrPlanNotConfigured
	}

	reads := uc.uow.CommandReads()
	if _, err = reads.VenueByID(ctx, partnerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, venue.ErrVenueNotFound
		}
		return nil, err
	}
	u, err := reads.UserByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	session, err := uc.billing.CreateCheckoutSession(ctx, shared.CheckoutRequest{
		PartnerID: partnerID,
		Plan:      p.String(),
		PriceID:   priceID,
		Email:     u.Email,
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *subscriptionUseCaseImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	evt, err := uc.billing.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}
	if evt == nil {
		return nil
	}

	switch evt.Type {
	case shared.BillingEventCheckoutCompleted:
		return uc.activate(ctx, evt)
	case shared.BillingEventSubscriptionUpdated, shared.BillingEventSubscriptionDeleted:
		return uc.updateStatus(ctx, evt)
	default:
		return nil
	}
}

// activate logs and acknowledges sessions whose metadata names no known plan or partner.
func (uc *subscriptionUseCaseImpl) activate(ctx context.Context, evt *shared.BillingEvent) error {
	plan, err := subscription.NewPlan(evt.Plan)
	if err != nil {
		slog.WarnContext(ctx, "checkout session with unknown plan",
			"plan", evt.Plan, "partner_id", evt.PartnerID, "stripe_subscription_id", evt.StripeSubscriptionID)
		return nil
	}
	if evt.PartnerID == uuid.Nil {
		slog.WarnContext(ctx, "checkout session without partner reference",
			"plan", evt.Plan, "stripe_subscription_id", evt.StripeSubscriptionID)
		return nil
	}

	s := &subscription.Subscription{
		PartnerID:            evt.PartnerID,
		Plan:                 plan,
		Status:               subscription.StatusActive,
		StripeCustomerID:     ptr.NilIfZero(evt.StripeCustomerID),
		StripeSubscriptionID: ptr.NilIfZero(evt.StripeSubscriptionID),
		CurrentPeriodEnd:     evt.CurrentPeriodEnd,
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Subscriptions().Upsert(ctx, tx.DB(), s)
	})
}

func (uc *subscriptionUseCaseImpl) updateStatus(ctx context.Context, evt *shared.BillingEvent) error {
	status := subscription.Status(evt.Status)
	if evt.Type == shared.BillingEventSubscriptionDeleted {
		status = subscription.StatusCanceled
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, derr := tx.Subscriptions().UpdateByStripeID(ctx, tx.DB(), evt.StripeSubscriptionID, status, evt.CurrentPeriodEnd)
		if derr != nil {
			return derr
		}
		if !found {
			// can arrive before checkout.session.completed; the completion carries the final state
			slog.WarnContext(ctx, "subscription webhook for unknown subscription",
				"type", evt.Type, "stripe_subscription_id", evt.StripeSubscriptionID)
		}
		return nil
	})
}
