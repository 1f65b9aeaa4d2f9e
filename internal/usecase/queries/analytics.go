package queries

import (
	"context"

	"github.com/google/uuid"
)

type AnalyticsReadStore interface {
	PartnerTotals(ctx context.Context, partnerID uuid.UUID) (*PartnerAnalyticsView, error)
	EventBreakdown(ctx context.Context, partnerID uuid.UUID) ([]*EventAnalyticsItem, error)
}

type AnalyticsQueries interface {
	GetPartnerAnalytics(ctx context.Context, partnerID uuid.UUID) (*PartnerAnalyticsView, error)
}

type analyticsQueriesImpl struct {
	readStore AnalyticsReadStore
}

func NewAnalyticsQueries(readStore AnalyticsReadStore) AnalyticsQueries {
	return &analyticsQueriesImpl{readStore: readStore}
}

func (q *analyticsQueriesImpl) GetPartnerAnalytics(ctx context.Context, partnerID uuid.UUID) (*PartnerAnalyticsView, error) {
	totals, err := q.readStore.PartnerTotals(ctx, partnerID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	events, err := q.readStore.EventBreakdown(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	totals.Events = events
	return totals, nil
}
