package queries

import (
	"context"
	"time"

	"fervo/internal/domain/rating"
	"fervo/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRatingNotFound = errs.New("rating not found")
)

type RatingReadStore interface {
	FindByID(ctx context.Context, id string) (*RatingView, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, afterCreatedAt *time.Time, afterID *string, limit int32) ([]*RatingListItem, error)
}

type RatingQueries interface {
	ListByEvent(ctx context.Context, eventID uuid.UUID, cursor *Cursor, limit int) ([]*RatingListItem, *Cursor, error)
	GetMine(ctx context.Context, eventID, userID uuid.UUID) (*RatingView, error)
}

type ratingQueriesImpl struct {
	readStore RatingReadStore
	events    EventReadStore
}

func NewRatingQueries(readStore RatingReadStore, events EventReadStore) RatingQueries {
	return &ratingQueriesImpl{readStore: readStore, events: events}
}

func (q *ratingQueriesImpl) ListByEvent(ctx context.Context, eventID uuid.UUID, cursor *Cursor, limit int) ([]*RatingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	if _, err := q.events.FindByID(ctx, eventID); err != nil {
		if isNotFound(err) {
			return nil, nil, ErrEventNotFound
		}
		return nil, nil, err
	}

	var (
		afterCreatedAt *time.Time
		afterID        *string
	)
	if cursor != nil && cursor.After != "" {
		lastCreatedAt, lastID, derr := DecodeAfterKeyCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		afterCreatedAt = &lastCreatedAt
		afterID = &lastID
	}

	rows, err := q.readStore.ListByEvent(ctx, eventID, afterCreatedAt, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterKeyCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *ratingQueriesImpl) GetMine(ctx context.Context, eventID, userID uuid.UUID) (*RatingView, error) {
	view, err := q.readStore.FindByID(ctx, rating.ID(eventID, userID))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return view, nil
}
