package billing

import (
	"context"
	"encoding/json"
	"time"

	"fervo/internal/pkg/errs"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"github.com/stripe/stripe-go/v72/webhook"
)

const (
	metadataPartnerID = "partner_id"
	metadataPlan      = "plan"
)

type StripeGateway struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewStripeGateway(secretKey, webhookSecret, successURL, cancelURL string) *StripeGateway {
	return &StripeGateway{
		api:           client.New(secretKey, nil),
		webhookSecret: webhookSecret,
		successURL:    successURL,
		cancelURL:     cancelURL,
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req shared.CheckoutRequest) (*shared.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
		ClientReferenceID: stripe.String(req.PartnerID.String()),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(req.PriceID), Quantity: stripe.Int64(1)},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				metadataPartnerID: req.PartnerID.String(),
				metadataPlan:      req.Plan,
			},
		},
	}
	if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}
	params.Context = ctx
	params.AddMetadata(metadataPartnerID, req.PartnerID.String())
	params.AddMetadata(metadataPlan, req.Plan)

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.WrapAs(err, "create checkout session", errs.ErrIntegrationFailed)
	}
	return &shared.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*shared.BillingEvent, error) {
	ev, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, errs.WrapAs(err, "verify webhook", shared.ErrInvalidWebhookSignature)
	}

	switch ev.Type {
	case shared.BillingEventCheckoutCompleted:
		var s stripe.CheckoutSession
		if err = json.Unmarshal(ev.Data.Raw, &s); err != nil {
			return nil, errs.Wrap(err, "decode checkout session")
		}
		return checkoutCompleted(s), nil
	case shared.BillingEventSubscriptionUpdated, shared.BillingEventSubscriptionDeleted:
		var sub stripe.Subscription
		if err = json.Unmarshal(ev.Data.Raw, &sub); err != nil {
			return nil, errs.Wrap(err, "decode subscription")
		}
		return subscriptionChanged(ev.Type, sub), nil
	default:
		return nil, nil
	}
}

func checkoutCompleted(s stripe.CheckoutSession) *shared.BillingEvent {
	partnerRef := s.ClientReferenceID
	if partnerRef == "" {
		partnerRef = s.Metadata[metadataPartnerID]
	}
	partnerID, _ := uuid.Parse(partnerRef)

	evt := &shared.BillingEvent{
		Type:      shared.BillingEventCheckoutCompleted,
		PartnerID: partnerID,
		Plan:      s.Metadata[metadataPlan],
		Status:    string(stripe.SubscriptionStatusActive),
	}
	if s.Customer != nil {
		evt.StripeCustomerID = s.Customer.ID
	}
	if s.Subscription != nil {
		evt.StripeSubscriptionID = s.Subscription.ID
		evt.CurrentPeriodEnd = periodEnd(s.Subscription.CurrentPeriodEnd)
	}
	return evt
}

func subscriptionChanged(typ string, sub stripe.Subscription) *shared.BillingEvent {
	partnerID, _ := uuid.Parse(sub.Metadata[metadataPartnerID])
	evt := &shared.BillingEvent{
		Type:                 typ,
		PartnerID:            partnerID,
		Plan:                 sub.Metadata[metadataPlan],
		Status:               string(sub.Status),
		StripeSubscriptionID: sub.ID,
		CurrentPeriodEnd:     periodEnd(sub.CurrentPeriodEnd),
	}
	if sub.Customer != nil {
		evt.StripeCustomerID = sub.Customer.ID
	}
	return evt
}

func periodEnd(unix int64) *time.Time {
	if unix == 0 {
		return nil
	}
	t := time.Unix(unix, 0).UTC()
	return &t
}

type Disabled struct{}

func (Disabled) CreateCheckoutSession(context.Context, shared.CheckoutRequest) (*shared.CheckoutSession, error) {
	return nil, errs.ErrIntegrationDisabled
}

func (Disabled) ParseWebhook([]byte, string) (*shared.BillingEvent, error) {
	return nil, errs.ErrIntegrationDisabled
}
