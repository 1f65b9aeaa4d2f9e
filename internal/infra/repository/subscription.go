package repository

import (
	"context"
	"time"

	"fervo/internal/domain/subscription"
	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
)

type SubscriptionWriteQueries interface {
	UpsertPartnerSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPartnerSubscriptionParams) error
	UpdateSubscriptionByStripeID(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSubscriptionByStripeIDParams) (int64, error)
}

type SubscriptionRepository struct {
	queries SubscriptionWriteQueries
}

func NewSubscriptionRepository(queries SubscriptionWriteQueries) *SubscriptionRepository {
	return &SubscriptionRepository{queries: queries}
}

func (r *SubscriptionRepository) Upsert(ctx context.Context, tx sqlc.DBTX, s *subscription.Subscription) error {
	err := r.queries.UpsertPartnerSubscription(ctx, tx, sqlc.UpsertPartnerSubscriptionParams{
		PartnerID:            s.PartnerID,
		Plan:                 s.Plan.String(),
		Status:               string(s.Status),
		StripeCustomerID:     pgconv.StringPtrToPgtype(s.StripeCustomerID),
		StripeSubscriptionID: pgconv.StringPtrToPgtype(s.StripeSubscriptionID),
		CurrentPeriodEnd:     pgconv.TimePtrToPgtype(s.CurrentPeriodEnd),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert subscription", err)
	}
	return nil
}

func (r *SubscriptionRepository) UpdateByStripeID(ctx context.Context, tx sqlc.DBTX, stripeSubscriptionID string, status subscription.Status, periodEnd *time.Time) (bool, error) {
	n, err := r.queries.UpdateSubscriptionByStripeID(ctx, tx, sqlc.UpdateSubscriptionByStripeIDParams{
		StripeSubscriptionID: pgconv.StringToPgtype(stripeSubscriptionID),
		Status:               string(status),
		CurrentPeriodEnd:     pgconv.TimePtrToPgtype(periodEnd),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update subscription status", err)
	}
	return n > 0, nil
}
