package readstore

import (
	"context"

	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
	"fervo/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckInReadQueries interface {
	ExistsUserCheckIn(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsUserCheckInParams) (bool, error)
	ListUserCheckIns(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUserCheckInsParams) ([]sqlc.UserCheckIns, error)
	ListEventAttendees(ctx context.Context, db sqlc.DBTX, arg sqlc.ListEventAttendeesParams) ([]sqlc.EventAttendees, error)
}

type CheckInReadStore struct {
	queries CheckInReadQueries
	db      sqlc.DBTX
}

func NewCheckInReadStore(queries CheckInReadQueries, db sqlc.DBTX) *CheckInReadStore {
	return &CheckInReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CheckInReadStore) Exists(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	ok, err := r.queries.ExistsUserCheckIn(ctx, r.db, sqlc.ExistsUserCheckInParams{UserID: userID, EventID: eventID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing check-in", err)
	}
	return ok, nil
}

func (r *CheckInReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.CheckInHistoryItem, error) {
	rows, err := r.queries.ListUserCheckIns(ctx, r.db, sqlc.ListUserCheckInsParams{UserID: userID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user check-ins", err)
	}
	result := make([]*queries.CheckInHistoryItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.CheckInHistoryItem{
			EventID:     row.EventID,
			PartnerID:   row.PartnerID,
			EventName:   row.EventName,
			VenueName:   row.VenueName,
			CheckedInAt: pgconv.TimeFromPgtype(row.CheckedInAt),
		}
	}
	return result, nil
}

func (r *CheckInReadStore) ListAttendees(ctx context.Context, partnerID, eventID uuid.UUID) ([]*queries.AttendeeView, error) {
	rows, err := r.queries.ListEventAttendees(ctx, r.db, sqlc.ListEventAttendeesParams{EventID: eventID, PartnerID: partnerID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event attendees", err)
	}
	result := make([]*queries.AttendeeView, len(rows))
	for i, row := range rows {
		result[i] = &queries.AttendeeView{
			UserID:          row.UserID,
			UserDisplayName: row.UserDisplayName,
			CheckedInAt:     pgconv.TimeFromPgtype(row.CheckedInAt),
		}
	}
	return result, nil
}
