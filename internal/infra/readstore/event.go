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

type EventReadQueries interface {
	GetEventByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
	GetEventByPartnerAndID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetEventByPartnerAndIDParams) (sqlc.Events, error)
	GetEventForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
	GetPartnerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Partners, error)
	ListEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListEventsParams) ([]sqlc.ListEventsRow, error)
	ListEventsByPartner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListEventsByPartnerParams) ([]sqlc.Events, error)
}

type EventReadStore struct {
	queries EventReadQueries
	db      sqlc.DBTX
}

func NewEventReadStore(queries EventReadQueries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event by id", err)
	}

	venue, err := r.queries.GetPartnerByID(ctx, r.db, row.PartnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get event venue", err)
	}

	view := toEventView(row)
	withVenue(view, venue)
	return view, nil
}

func (r *EventReadStore) FindCheckInTarget(ctx context.Context, partnerID, id uuid.UUID) (*queries.EventView, string, error) {
	row, err := r.queries.GetEventByPartnerAndID(ctx, r.db, sqlc.GetEventByPartnerAndIDParams{PartnerID: partnerID, ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get event by partner", err)
	}
	return toEventView(row), row.CheckInToken, nil
}

func (r *EventReadStore) List(ctx context.Context, params queries.EventListParams) ([]*queries.EventView, error) {
	rows, err := r.queries.ListEvents(ctx, r.db, sqlc.ListEventsParams{
		EndsAfter:    pgconv.TimeToPgtype(params.EndsAfter),
		StartsBefore: pgconv.TimePtrToPgtype(params.StartsBefore),
		Genre:        pgconv.NonEmptyToPgtype(params.Genre),
		FreeOnly:     params.FreeOnly,
		PartnerID:    pgconv.UUIDPtrToPgtype(params.PartnerID),
		AfterStart:   pgconv.TimePtrToPgtype(params.AfterStart),
		AfterID:      pgconv.UUIDPtrToPgtype(params.AfterID),
		Limit:        params.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}

	result := make([]*queries.EventView, len(rows))
	for i, row := range rows {
		result[i] = &queries.EventView{
			ID:            row.ID,
			PartnerID:     row.PartnerID,
			Name:          row.Name,
			Description:   row.Description,
			MusicGenre:    row.MusicGenre,
			StartTime:     pgconv.TimeFromPgtype(row.StartTime),
			EndTime:       pgconv.TimeFromPgtype(row.EndTime),
			IsFree:        row.IsFree,
			PriceCents:    int(row.PriceCents),
			Currency:      row.Currency,
			ShareEnabled:  row.ShareEnabled,
			AverageRating: row.AverageRating,
			RatingCount:   int(row.RatingCount),
			VenueName:     row.VenueName,
			VenueCity:     row.VenueCity,
			Latitude:      row.VenueLatitude,
			Longitude:     row.VenueLongitude,
		}
	}
	return result, nil
}

// ListByPartner returns every event of the venue when endedAfter is nil.
func (r *EventReadStore) ListByPartner(ctx context.Context, partnerID uuid.UUID, endedAfter *time.Time) ([]*queries.EventView, error) {
	rows, err := r.queries.ListEventsByPartner(ctx, r.db, sqlc.ListEventsByPartnerParams{
		PartnerID:  partnerID,
		EndedAfter: pgconv.TimePtrToPgtype(endedAfter),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events by partner", err)
	}
	result := make([]*queries.EventView, len(rows))
	for i, row := range rows {
		result[i] = toEventView(row)
	}
	return result, nil
}

func (r *EventReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event by id", err)
	}
	return toEventSnapshot(row), nil
}

func (r *EventReadStore) SnapshotByPartner(ctx context.Context, partnerID, id uuid.UUID) (*shared.EventSnapshot, error) {
	row, err := r.queries.GetEventByPartnerAndID(ctx, r.db, sqlc.GetEventByPartnerAndIDParams{PartnerID: partnerID, ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event by partner", err)
	}
	return toEventSnapshot(row), nil
}

func (r *EventReadStore) SnapshotForUpdate(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	row, err := r.queries.GetEventForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock event", err)
	}
	return toEventSnapshot(row), nil
}

func toEventView(row sqlc.Events) *queries.EventView {
	return &queries.EventView{
		ID:            row.ID,
		PartnerID:     row.PartnerID,
		Name:          row.Name,
		Description:   row.Description,
		MusicGenre:    row.MusicGenre,
		StartTime:     pgconv.TimeFromPgtype(row.StartTime),
		EndTime:       pgconv.TimeFromPgtype(row.EndTime),
		IsFree:        row.IsFree,
		PriceCents:    int(row.PriceCents),
		Currency:      row.Currency,
		ShareEnabled:  row.ShareEnabled,
		AverageRating: row.AverageRating,
		RatingCount:   int(row.RatingCount),
	}
}

func withVenue(view *queries.EventView, venue sqlc.Partners) {
	view.VenueName = venue.Name
	view.VenueCity = venue.City
	view.Latitude = venue.Latitude
	view.Longitude = venue.Longitude
}

func toEventSnapshot(row sqlc.Events) *shared.EventSnapshot {
	return &shared.EventSnapshot{
		ID:            row.ID,
		PartnerID:     row.PartnerID,
		Name:          row.Name,
		Description:   row.Description,
		MusicGenre:    row.MusicGenre,
		StartTime:     pgconv.TimeFromPgtype(row.StartTime),
		EndTime:       pgconv.TimeFromPgtype(row.EndTime),
		IsFree:        row.IsFree,
		PriceCents:    int(row.PriceCents),
		Currency:      row.Currency,
		ShareEnabled:  row.ShareEnabled,
		CheckInToken:  row.CheckInToken,
		AverageRating: row.AverageRating,
		RatingCount:   int(row.RatingCount),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
