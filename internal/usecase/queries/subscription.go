package queries

import (
	"context"

	"fervo/internal/domain/subscription"

	"github.com/google/uuid"
)

type SubscriptionReadStore interface {
	View(ctx context.Context, partnerID uuid.UUID) (*SubscriptionView, error)
}

type SubscriptionQueries interface {
	GetSubscription(ctx context.Context, partnerID uuid.UUID) (*SubscriptionView, error)
}

type subscriptionQueriesImpl struct {
	readStore SubscriptionReadStore
}

func NewSubscriptionQueries(readStore SubscriptionReadStore) SubscriptionQueries {
	return &subscriptionQueriesImpl{readStore: readStore}
}

// GetSubscription answers with status "none" instead of an error for unsubscribed partners.
func (q *subscriptionQueriesImpl) GetSubscription(ctx context.Context, partnerID uuid.UUID) (*SubscriptionView, error) {
	view, err := q.readStore.View(ctx, partnerID)
	if err != nil {
		if isNotFound(err) {
			return &SubscriptionView{PartnerID: partnerID, Status: string(subscription.StatusNone)}, nil
		}
		return nil, err
	}
	return view, nil
}
