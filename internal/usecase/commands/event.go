package commands

import (
	"context"

	"fervo/internal/domain/event"
	"fervo/internal/infra"
	"fervo/internal/pkg/clock"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventCommands interface {
	Create(ctx context.Context, partnerID uuid.UUID, p event.Params) (uuid.UUID, error)
	Update(ctx context.Context, partnerID, eventID uuid.UUID, p event.Params) error
	Delete(ctx context.Context, partnerID, eventID uuid.UUID) error
	RegenerateCheckInToken(ctx context.Context, partnerID, eventID uuid.UUID) error
}

type eventUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEventUseCase(uow shared.UnitOfWork, clk clock.Clock) EventCommands {
	return &eventUseCaseImpl{uow: uow, clock: clk}
}

func (uc *eventUseCaseImpl) Create(ctx context.Context, partnerID uuid.UUID, p event.Params) (uuid.UUID, error) {
	now := uc.clock.Now()
	e, err := event.NewEvent(partnerID, p, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Events().Create(ctx, tx.DB(), e); derr != nil {
			return derr
		}
		return uc.enqueueSync(ctx, tx, shared.TopicEventChanged, partnerID, e.ID())
	})
	if err != nil {
		return uuid.Nil, err
	}
	return e.ID(), nil
}

func (uc *eventUseCaseImpl) Update(ctx context.Context, partnerID, eventID uuid.UUID, p event.Params) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, derr := loadOwnedEvent(ctx, tx, partnerID, eventID)
		if derr != nil {
			return derr
		}
		if derr = e.Update(p, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Events().Update(ctx, tx.DB(), e); derr != nil {
			return derr
		}
		return uc.enqueueSync(ctx, tx, shared.TopicEventChanged, partnerID, eventID)
	})
}

func (uc *eventUseCaseImpl) Delete(ctx context.Context, partnerID, eventID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Events().Delete(ctx, tx.DB(), partnerID, eventID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return event.ErrEventNotFound
			}
			return derr
		}
		return uc.enqueueSync(ctx, tx, shared.TopicEventDeleted, partnerID, eventID)
	})
}

// Old QR codes stop working once the token is replaced.
func (uc *eventUseCaseImpl) RegenerateCheckInToken(ctx context.Context, partnerID, eventID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, derr := loadOwnedEvent(ctx, tx, partnerID, eventID)
		if derr != nil {
			return derr
		}
		if derr = e.RegenerateCheckInToken(uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Events().UpdateCheckInToken(ctx, tx.DB(), e)
	})
}

func (uc *eventUseCaseImpl) enqueueSync(ctx context.Context, tx shared.Tx, topic string, partnerID, eventID uuid.UUID) error {
	return shared.EnqueueDirectorySync(ctx, tx, topic, shared.DirectorySyncPayload{PartnerID: partnerID, EventID: &eventID}, uc.clock.Now())
}

func loadOwnedEvent(ctx context.Context, tx shared.Tx, partnerID, eventID uuid.UUID) (*event.Event, error) {
	snap, err := tx.Reads().EventByPartnerAndID(ctx, partnerID, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, event.ErrEventNotFound
		}
		return nil, err
	}
	return eventFromSnapshot(snap), nil
}

func eventFromSnapshot(snap *shared.EventSnapshot) *event.Event {
	return event.Reconstruct(snap.ID, snap.PartnerID, event.Params{
		Name:         snap.Name,
		Description:  snap.Description,
		MusicGenre:   snap.MusicGenre,
		StartTime:    snap.StartTime,
		EndTime:      snap.EndTime,
		IsFree:       snap.IsFree,
		PriceCents:   snap.PriceCents,
		Currency:     snap.Currency,
		ShareEnabled: snap.ShareEnabled,
	}, snap.CheckInToken, snap.CreatedAt, snap.UpdatedAt)
}
