package repository

import (
	"context"

	"fervo/internal/domain/checkin"
	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
)

type CheckInWriteQueries interface {
	CreateEventAttendee(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventAttendeeParams) error
	CreateUserCheckIn(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserCheckInParams) error
}

type CheckInRepository struct {
	queries CheckInWriteQueries
}

func NewCheckInRepository(queries CheckInWriteQueries) *CheckInRepository {
	return &CheckInRepository{queries: queries}
}

// Create must run inside the caller's transaction so both rows land together.
func (r *CheckInRepository) Create(ctx context.Context, tx sqlc.DBTX, c *checkin.CheckIn) error {
	at := pgconv.TimeToPgtype(c.CheckedInAt())

	err := r.queries.CreateEventAttendee(ctx, tx, sqlc.CreateEventAttendeeParams{
		EventID:         c.EventID(),
		UserID:          c.UserID(),
		PartnerID:       c.PartnerID(),
		UserDisplayName: c.UserDisplayName(),
		CheckedInAt:     at,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create event attendee", err)
	}

	err = r.queries.CreateUserCheckIn(ctx, tx, sqlc.CreateUserCheckInParams{
		UserID:      c.UserID(),
		EventID:     c.EventID(),
		PartnerID:   c.PartnerID(),
		EventName:   c.EventName(),
		VenueName:   c.VenueName(),
		CheckedInAt: at,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user check-in", err)
	}
	return nil
}
