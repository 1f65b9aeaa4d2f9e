package repository

import (
	"context"

	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type FavoriteWriteQueries interface {
	AddFavoriteVenue(ctx context.Context, db sqlc.DBTX, arg sqlc.AddFavoriteVenueParams) error
	RemoveFavoriteVenue(ctx context.Context, db sqlc.DBTX, arg sqlc.RemoveFavoriteVenueParams) error
}

type FavoriteRepository struct {
	queries FavoriteWriteQueries
}

func NewFavoriteRepository(queries FavoriteWriteQueries) *FavoriteRepository {
	return &FavoriteRepository{queries: queries}
}

func (r *FavoriteRepository) Add(ctx context.Context, tx sqlc.DBTX, userID, partnerID uuid.UUID) error {
	err := r.queries.AddFavoriteVenue(ctx, tx, sqlc.AddFavoriteVenueParams{UserID: userID, PartnerID: partnerID})
	if err != nil {
		return infra.WrapRepoErr("failed to add favorite venue", err)
	}
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, tx sqlc.DBTX, userID, partnerID uuid.UUID) error {
	err := r.queries.RemoveFavoriteVenue(ctx, tx, sqlc.RemoveFavoriteVenueParams{UserID: userID, PartnerID: partnerID})
	if err != nil {
		return infra.WrapRepoErr("failed to remove favorite venue", err)
	}
	return nil
}
