package readstore

import (
	"context"

	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
	"fervo/internal/usecase/queries"

	"github.com/google/uuid"
)

type AnalyticsReadQueries interface {
	GetPartnerAnalytics(ctx context.Context, db sqlc.DBTX, partnerID uuid.UUID) (sqlc.GetPartnerAnalyticsRow, error)
	ListEventAnalytics(ctx context.Context, db sqlc.DBTX, partnerID uuid.UUID) ([]sqlc.ListEventAnalyticsRow, error)
}

type AnalyticsReadStore struct {
	queries AnalyticsReadQueries
	db      sqlc.DBTX
}

func NewAnalyticsReadStore(queries AnalyticsReadQueries, db sqlc.DBTX) *AnalyticsReadStore {
	return &AnalyticsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AnalyticsReadStore) PartnerTotals(ctx context.Context, partnerID uuid.UUID) (*queries.PartnerAnalyticsView, error) {
	row, err := r.queries.GetPartnerAnalytics(ctx, r.db, partnerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get partner analytics", err)
	}
	return &queries.PartnerAnalyticsView{
		PartnerID:          partnerID,
		TotalEvents:        row.TotalEvents,
		TotalCheckIns:      row.TotalCheckIns,
		TotalShares:        row.TotalShares,
		CouponsMinted:      row.CouponsMinted,
		CouponsRedeemed:    row.CouponsRedeemed,
		AverageVenueRating: row.AverageVenueRating,
		VenueRatingCount:   int(row.VenueRatingCount),
	}, nil
}

func (r *AnalyticsReadStore) EventBreakdown(ctx context.Context, partnerID uuid.UUID) ([]*queries.EventAnalyticsItem, error) {
	rows, err := r.queries.ListEventAnalytics(ctx, r.db, partnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event analytics", err)
	}
	result := make([]*queries.EventAnalyticsItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.EventAnalyticsItem{
			EventID:       row.EventID,
			Name:          row.Name,
			StartTime:     pgconv.TimeFromPgtype(row.StartTime),
			CheckIns:      row.CheckIns,
			Shares:        row.Shares,
			AverageRating: row.AverageRating,
			RatingCount:   int(row.RatingCount),
		}
	}
	return result, nil
}
