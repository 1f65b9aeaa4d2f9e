package repository

import (
	"context"

	"fervo/internal/domain/rating"
	"fervo/internal/domain/venue"
	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VenueWriteQueries interface {
	CreatePartner(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePartnerParams) error
	UpdatePartnerProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePartnerProfileParams) (int64, error)
	UpdatePartnerImage(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePartnerImageParams) (int64, error)
	UpdateVenueRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVenueRatingParams) error
}

type VenueRepository struct {
	queries VenueWriteQueries
}

func NewVenueRepository(queries VenueWriteQueries) *VenueRepository {
	return &VenueRepository{queries: queries}
}

func (r *VenueRepository) Create(ctx context.Context, tx sqlc.DBTX, v *venue.Venue) error {
	err := r.queries.CreatePartner(ctx, tx, sqlc.CreatePartnerParams{
		ID:          v.ID(),
		Name:        v.Name().String(),
		Description: v.Description(),
		Address:     v.Address(),
		City:        v.City(),
		Latitude:    v.Location().Latitude(),
		Longitude:   v.Location().Longitude(),
		Category:    v.Category().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create venue", err)
	}
	return nil
}

func (r *VenueRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, v *venue.Venue) error {
	n, err := r.queries.UpdatePartnerProfile(ctx, tx, sqlc.UpdatePartnerProfileParams{
		ID:          v.ID(),
		Name:        v.Name().String(),
		Description: v.Description(),
		Address:     v.Address(),
		City:        v.City(),
		Latitude:    v.Location().Latitude(),
		Longitude:   v.Location().Longitude(),
		Category:    v.Category().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update venue profile", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VenueRepository) UpdateImage(ctx context.Context, tx sqlc.DBTX, partnerID uuid.UUID, imageURL string) error {
	n, err := r.queries.UpdatePartnerImage(ctx, tx, sqlc.UpdatePartnerImageParams{
		ID:       partnerID,
		ImageUrl: pgconv.StringToPgtype(imageURL),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update venue image", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VenueRepository) UpdateRating(ctx context.Context, tx sqlc.DBTX, partnerID uuid.UUID, agg rating.Aggregate) error {
	err := r.queries.UpdateVenueRating(ctx, tx, sqlc.UpdateVenueRatingParams{
		ID:                 partnerID,
		AverageVenueRating: agg.Average(),
		VenueRatingCount:   int32(agg.Count()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update venue rating", err)
	}
	return nil
}
