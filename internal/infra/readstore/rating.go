package readstore

import (
	"context"
	"time"

	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
	"fervo/internal/usecase/queries"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

type RatingReadQueries interface {
	GetRatingByID(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Ratings, error)
	GetRatingForUpdate(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Ratings, error)
	ListRatingsByEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRatingsByEventParams) ([]sqlc.ListRatingsByEventRow, error)
	ListRatingCommentsByEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRatingCommentsByEventParams) ([]string, error)
}

type RatingReadStore struct {
	queries RatingReadQueries
	db      sqlc.DBTX
}

func NewRatingReadStore(queries RatingReadQueries, db sqlc.DBTX) *RatingReadStore {
	return &RatingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RatingReadStore) FindByID(ctx context.Context, id string) (*queries.RatingView, error) {
	row, err := r.queries.GetRatingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rating not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get rating by id", err)
	}
	return &queries.RatingView{
		ID:        row.ID,
		EventID:   row.EventID,
		UserID:    row.UserID,
		Rating:    int(row.Rating),
		Comment:   pgconv.StringFromPgtype(row.Comment),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// ListByEvent pages newest first; afterCreatedAt and afterID are both set or both nil.
func (r *RatingReadStore) ListByEvent(ctx context.Context, eventID uuid.UUID, afterCreatedAt *time.Time, afterID *string, limit int32) ([]*queries.RatingListItem, error) {
	rows, err := r.queries.ListRatingsByEvent(ctx, r.db, sqlc.ListRatingsByEventParams{
		EventID:        eventID,
		AfterCreatedAt: pgconv.TimePtrToPgtype(afterCreatedAt),
		AfterID:        pgconv.StringPtrToPgtype(afterID),
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ratings by event", err)
	}
	result := make([]*queries.RatingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.RatingListItem{
			ID:              row.ID,
			UserID:          row.UserID,
			UserDisplayName: row.UserDisplayName,
			Rating:          int(row.Rating),
			Comment:         pgconv.StringFromPgtype(row.Comment),
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *RatingReadStore) RecentComments(ctx context.Context, eventID uuid.UUID, limit int32) ([]string, error) {
	comments, err := r.queries.ListRatingCommentsByEvent(ctx, r.db, sqlc.ListRatingCommentsByEventParams{EventID: eventID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rating comments", err)
	}
	return comments, nil
}

func (r *RatingReadStore) SnapshotForUpdate(ctx context.Context, id string) (*shared.RatingSnapshot, error) {
	row, err := r.queries.GetRatingForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rating not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock rating", err)
	}
	return &shared.RatingSnapshot{
		ID:        row.ID,
		EventID:   row.EventID,
		UserID:    row.UserID,
		PartnerID: row.PartnerID,
		Rating:    int(row.Rating),
		Comment:   pgconv.StringFromPgtype(row.Comment),
	}, nil
}
