package repository

import (
	"context"

	"fervo/internal/domain/rating"
	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
)

type RatingWriteQueries interface {
	UpsertRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRatingParams) error
	DeleteRating(ctx context.Context, db sqlc.DBTX, id string) (int64, error)
}

type RatingRepository struct {
	queries RatingWriteQueries
}

func NewRatingRepository(queries RatingWriteQueries) *RatingRepository {
	return &RatingRepository{queries: queries}
}

func (r *RatingRepository) Upsert(ctx context.Context, tx sqlc.DBTX, rt *rating.Rating) error {
	err := r.queries.UpsertRating(ctx, tx, sqlc.UpsertRatingParams{
		ID:        rt.ID(),
		EventID:   rt.EventID(),
		UserID:    rt.UserID(),
		PartnerID: rt.PartnerID(),
		Rating:    int32(rt.Score().Value()),
		Comment:   pgconv.NonEmptyToPgtype(rt.Comment().String()),
		Now:       pgconv.TimeToPgtype(rt.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert rating", err)
	}
	return nil
}

func (r *RatingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id string) error {
	n, err := r.queries.DeleteRating(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete rating", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("rating not found", nil, infra.KindNotFound)
	}
	return nil
}
