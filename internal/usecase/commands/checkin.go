package commands

import (
	"context"
	"time"

	"fervo/internal/domain/checkin"
	"fervo/internal/domain/event"
	"fervo/internal/infra"
	"fervo/internal/pkg/clock"
	"fervo/internal/pkg/errs"
	"fervo/internal/pkg/metrics"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckInResult struct {
	EventID     uuid.UUID
	PartnerID   uuid.UUID
	EventName   string
	VenueName   string
	CheckedInAt time.Time
}

type CheckInCommands interface {
	// CheckIn consumes the raw string scanned from an event QR code.
	CheckIn(ctx context.Context, userID uuid.UUID, rawPayload string) (*CheckInResult, error)
}

type checkInUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCheckInUseCase(uow shared.UnitOfWork, clk clock.Clock) CheckInCommands {
	return &checkInUseCaseImpl{uow: uow, clock: clk}
}

func (uc *checkInUseCaseImpl) CheckIn(ctx context.Context, userID uuid.UUID, rawPayload string) (*CheckInResult, error) {
	result, err := uc.checkIn(ctx, userID, rawPayload)
	metrics.RecordCheckIn(checkInOutcome(err))
	return result, err
}

func (uc *checkInUseCaseImpl) checkIn(ctx context.Context, userID uuid.UUID, rawPayload string) (*CheckInResult, error) {
	payload, err := checkin.ParsePayload(rawPayload)
	if err != nil {
		return nil, err
	}

	var result *CheckInResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, derr := tx.Reads().EventByPartnerAndID(ctx, payload.PartnerID, payload.EventID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return event.ErrEventNotFound
			}
			return derr
		}
		if derr = payload.VerifyToken(ev.CheckInToken); derr != nil {
			return derr
		}

		exists, derr := tx.Reads().HasCheckedIn(ctx, userID, ev.ID)
		if derr != nil {
			return derr
		}
		if exists {
			return checkin.ErrAlreadyCheckedIn
		}

		u, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			return derr
		}
		v, derr := tx.Reads().VenueByID(ctx, ev.PartnerID)
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		c := checkin.NewCheckIn(ev.ID, ev.PartnerID, userID, u.DisplayName, ev.Name, v.Name, now)
		if derr = tx.CheckIns().Create(ctx, tx.DB(), c); derr != nil {
			// a concurrent scan won the insert
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return checkin.ErrAlreadyCheckedIn
			}
			return derr
		}

		result = &CheckInResult{
			EventID:     ev.ID,
			PartnerID:   ev.PartnerID,
			EventName:   ev.Name,
			VenueName:   v.Name,
			CheckedInAt: now,
		}
		return shared.EnqueuePush(ctx, tx, shared.TopicCheckInConfirmed, shared.PushPayload{
			UserID: userID,
			Title:  "Checked in",
			Body:   "You're in at " + v.Name + ". Enjoy " + ev.Name + "!",
			Data:   map[string]string{"event_id": ev.ID.String(), "partner_id": ev.PartnerID.String()},
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func checkInOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errs.Is(err, checkin.ErrMalformedPayload):
		return "malformed_payload"
	case errs.Is(err, event.ErrEventNotFound):
		return "event_not_found"
	case errs.Is(err, checkin.ErrInvalidToken):
		return "invalid_token"
	case errs.Is(err, checkin.ErrAlreadyCheckedIn):
		return "already_checked_in"
	default:
		return "error"
	}
}
