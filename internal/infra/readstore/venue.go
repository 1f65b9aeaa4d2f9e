package readstore

import (
	"context"

	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
	"fervo/internal/usecase/queries"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

type VenueReadQueries interface {
	GetPartnerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Partners, error)
	GetPartnerForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Partners, error)
	ListVenues(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVenuesParams) ([]sqlc.Partners, error)
	ListFavoriteVenues(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Partners, error)
}

type VenueReadStore struct {
	queries VenueReadQueries
	db      sqlc.DBTX
}

func NewVenueReadStore(queries VenueReadQueries, db sqlc.DBTX) *VenueReadStore {
	return &VenueReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VenueReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VenueView, error) {
	row, err := r.queries.GetPartnerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get venue by id", err)
	}
	return toVenueView(row), nil
}

func (r *VenueReadStore) List(ctx context.Context, params queries.VenueListParams) ([]*queries.VenueView, error) {
	rows, err := r.queries.ListVenues(ctx, r.db, sqlc.ListVenuesParams{
		MinLat:        pgconv.Float64PtrToPgtype(params.MinLat),
		MaxLat:        pgconv.Float64PtrToPgtype(params.MaxLat),
		MinLng:        pgconv.Float64PtrToPgtype(params.MinLng),
		MaxLng:        pgconv.Float64PtrToPgtype(params.MaxLng),
		Category:      pgconv.NonEmptyToPgtype(params.Category),
		Search:        pgconv.NonEmptyToPgtype(params.Search),
		LiveAt:        pgconv.TimePtrToPgtype(params.LiveAt),
		UpcomingAfter: pgconv.TimePtrToPgtype(params.UpcomingAfter),
		Limit:         params.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}
	return mapVenueRows(rows), nil
}

func (r *VenueReadStore) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*queries.VenueView, error) {
	rows, err := r.queries.ListFavoriteVenues(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorite venues", err)
	}
	return mapVenueRows(rows), nil
}

func (r *VenueReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	row, err := r.queries.GetPartnerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get venue by id", err)
	}
	return toVenueSnapshot(row), nil
}

func (r *VenueReadStore) SnapshotForUpdate(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	row, err := r.queries.GetPartnerForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock venue", err)
	}
	return toVenueSnapshot(row), nil
}

func toVenueView(row sqlc.Partners) *queries.VenueView {
	return &queries.VenueView{
		ID:                 row.ID,
		Name:               row.Name,
		Description:        row.Description,
		Address:            row.Address,
		City:               row.City,
		Latitude:           row.Latitude,
		Longitude:          row.Longitude,
		Category:           row.Category,
		ImageURL:           pgconv.StringPtrFromPgtype(row.ImageUrl),
		AverageVenueRating: row.AverageVenueRating,
		VenueRatingCount:   int(row.VenueRatingCount),
	}
}

func toVenueSnapshot(row sqlc.Partners) *shared.VenueSnapshot {
	return &shared.VenueSnapshot{
		ID:                 row.ID,
		Name:               row.Name,
		Description:        row.Description,
		Address:            row.Address,
		City:               row.City,
		Latitude:           row.Latitude,
		Longitude:          row.Longitude,
		Category:           row.Category,
		ImageURL:           pgconv.StringPtrFromPgtype(row.ImageUrl),
		AverageVenueRating: row.AverageVenueRating,
		VenueRatingCount:   int(row.VenueRatingCount),
	}
}

func mapVenueRows(rows []sqlc.Partners) []*queries.VenueView {
	result := make([]*queries.VenueView, len(rows))
	for i, row := range rows {
		result[i] = toVenueView(row)
	}
	return result
}
