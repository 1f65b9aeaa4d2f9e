package repository

import (
	"context"

	"fervo/internal/domain/event"
	"fervo/internal/domain/rating"
	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EventWriteQueries interface {
	CreateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventParams) (sqlc.Events, error)
	UpdateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEventParams) (int64, error)
	UpdateEventCheckInToken(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEventCheckInTokenParams) (int64, error)
	DeleteEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteEventParams) (int64, error)
	UpdateEventRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEventRatingParams) error
}

type EventRepository struct {
	queries EventWriteQueries
}

func NewEventRepository(queries EventWriteQueries) *EventRepository {
	return &EventRepository{queries: queries}
}

func (r *EventRepository) Create(ctx context.Context, tx sqlc.DBTX, e *event.Event) error {
	_, err := r.queries.CreateEvent(ctx, tx, sqlc.CreateEventParams{
		ID:           e.ID(),
		PartnerID:    e.PartnerID(),
		Name:         e.Name().String(),
		Description:  e.Description(),
		MusicGenre:   e.MusicGenre(),
		StartTime:    pgconv.TimeToPgtype(e.Window().Start()),
		EndTime:      pgconv.TimeToPgtype(e.Window().End()),
		IsFree:       e.Pricing().IsFree(),
		PriceCents:   int32(e.Pricing().PriceCents()),
		Currency:     e.Pricing().Currency(),
		ShareEnabled: e.ShareEnabled(),
		CheckInToken: e.CheckInToken(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create event", err)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, tx sqlc.DBTX, e *event.Event) error {
	n, err := r.queries.UpdateEvent(ctx, tx, sqlc.UpdateEventParams{
		ID:           e.ID(),
		PartnerID:    e.PartnerID(),
		Name:         e.Name().String(),
		Description:  e.Description(),
		MusicGenre:   e.MusicGenre(),
		StartTime:    pgconv.TimeToPgtype(e.Window().Start()),
		EndTime:      pgconv.TimeToPgtype(e.Window().End()),
		IsFree:       e.Pricing().IsFree(),
		PriceCents:   int32(e.Pricing().PriceCents()),
		Currency:     e.Pricing().Currency(),
		ShareEnabled: e.ShareEnabled(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update event", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) UpdateCheckInToken(ctx context.Context, tx sqlc.DBTX, e *event.Event) error {
	n, err := r.queries.UpdateEventCheckInToken(ctx, tx, sqlc.UpdateEventCheckInTokenParams{
		ID:           e.ID(),
		PartnerID:    e.PartnerID(),
		CheckInToken: e.CheckInToken(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update check-in token", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, tx sqlc.DBTX, partnerID, eventID uuid.UUID) error {
	n, err := r.queries.DeleteEvent(ctx, tx, sqlc.DeleteEventParams{ID: eventID, PartnerID: partnerID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete event", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) UpdateRating(ctx context.Context, tx sqlc.DBTX, eventID uuid.UUID, agg rating.Aggregate) error {
	err := r.queries.UpdateEventRating(ctx, tx, sqlc.UpdateEventRatingParams{
		ID:            eventID,
		AverageRating: agg.Average(),
		RatingCount:   int32(agg.Count()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update event rating", err)
	}
	return nil
}
