package readstore

import (
	"context"

	"fervo/internal/domain/subscription"
	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
	"fervo/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionReadQueries interface {
	GetPartnerSubscription(ctx context.Context, db sqlc.DBTX, partnerID uuid.UUID) (sqlc.PartnerSubscriptions, error)
}

type SubscriptionReadStore struct {
	queries SubscriptionReadQueries
	db      sqlc.DBTX
}

func NewSubscriptionReadStore(queries SubscriptionReadQueries, db sqlc.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriptionReadStore) FindByPartner(ctx context.Context, partnerID uuid.UUID) (*subscription.Subscription, error) {
	row, err := r.queries.GetPartnerSubscription(ctx, r.db, partnerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get partner subscription", err)
	}
	return &subscription.Subscription{
		PartnerID:            row.PartnerID,
		Plan:                 subscription.Plan(row.Plan),
		Status:               subscription.Status(row.Status),
		StripeCustomerID:     pgconv.StringPtrFromPgtype(row.StripeCustomerID),
		StripeSubscriptionID: pgconv.StringPtrFromPgtype(row.StripeSubscriptionID),
		CurrentPeriodEnd:     pgconv.TimePtrFromPgtype(row.CurrentPeriodEnd),
	}, nil
}

func (r *SubscriptionReadStore) View(ctx context.Context, partnerID uuid.UUID) (*queries.SubscriptionView, error) {
	s, err := r.FindByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return &queries.SubscriptionView{
		PartnerID:        s.PartnerID,
		Plan:             s.Plan.String(),
		Status:           string(s.Status),
		Active:           s.IsActive(),
		CurrentPeriodEnd: s.CurrentPeriodEnd,
	}, nil
}

// StatusByPartner reports "none" for partners that never subscribed.
func (r *SubscriptionReadStore) StatusByPartner(ctx context.Context, partnerID uuid.UUID) (string, error) {
	s, err := r.FindByPartner(ctx, partnerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return string(subscription.StatusNone), nil
		}
		return "", err
	}
	return string(s.Status), nil
}
