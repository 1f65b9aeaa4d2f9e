package commands

import (
	"context"

	"fervo/internal/domain/event"
	"fervo/internal/domain/rating"
	"fervo/internal/infra"
	"fervo/internal/pkg/clock"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitRatingRequest struct {
	EventID uuid.UUID
	Score   int
	Comment string
}

type RatingResult struct {
	RatingID      string
	Replaced      bool
	AverageRating float64
	RatingCount   int
}

type RatingCommands interface {
	Submit(ctx context.Context, userID uuid.UUID, req SubmitRatingRequest) (*RatingResult, error)
	DeleteOwn(ctx context.Context, userID, eventID uuid.UUID) error
}

type ratingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRatingUseCase(uow shared.UnitOfWork, clk clock.Clock) RatingCommands {
	return &ratingUseCaseImpl{uow: uow, clock: clk}
}

// Submit writes the rating and both running means in one serializable
// transaction. Rows are locked event, venue, rating in that order.
func (uc *ratingUseCaseImpl) Submit(ctx context.Context, userID uuid.UUID, req SubmitRatingRequest) (*RatingResult, error) {
	score, err := rating.NewScore(req.Score)
	if err != nil {
		return nil, err
	}
	if _, err = rating.NewComment(req.Comment); err != nil {
		return nil, err
	}
	if err = uc.CanRate(ctx, rating.EligibilityInput{EventID: req.EventID, UserID: userID}); err != nil {
		return nil, err
	}

	var result *RatingResult
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, derr := tx.Reads().EventForUpdate(ctx, req.EventID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return event.ErrEventNotFound
			}
			return derr
		}
		venueSnap, derr := tx.Reads().VenueForUpdate(ctx, ev.PartnerID)
		if derr != nil {
			return derr
		}

		r, derr := rating.NewRating(ev.ID, userID, ev.PartnerID, score.Value(), req.Comment, uc.clock.Now())
		if derr != nil {
			return derr
		}

		prev, derr := previousScore(ctx, tx, r.ID())
		if derr != nil {
			return derr
		}

		eventAgg, derr := rating.NewAggregate(ev.AverageRating, ev.RatingCount)
		if derr != nil {
			return derr
		}
		if eventAgg, derr = eventAgg.Apply(prev, score); derr != nil {
			return derr
		}
		venueAgg, derr := rating.NewAggregate(venueSnap.AverageVenueRating, venueSnap.VenueRatingCount)
		if derr != nil {
			return derr
		}
		if venueAgg, derr = venueAgg.Apply(prev, score); derr != nil {
			return derr
		}

		if derr = tx.Ratings().Upsert(ctx, tx.DB(), r); derr != nil {
			return derr
		}
		if derr = tx.Events().UpdateRating(ctx, tx.DB(), ev.ID, eventAgg); derr != nil {
			return derr
		}
		if derr = tx.Venues().UpdateRating(ctx, tx.DB(), ev.PartnerID, venueAgg); derr != nil {
			return derr
		}

		result = &RatingResult{
			RatingID:      r.ID(),
			Replaced:      prev != nil,
			AverageRating: eventAgg.Average(),
			RatingCount:   eventAgg.Count(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *ratingUseCaseImpl) DeleteOwn(ctx context.Context, userID, eventID uuid.UUID) error {
	return uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, derr := tx.Reads().EventForUpdate(ctx, eventID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return event.ErrEventNotFound
			}
			return derr
		}
		venueSnap, derr := tx.Reads().VenueForUpdate(ctx, ev.PartnerID)
		if derr != nil {
			return derr
		}

		id := rating.ID(eventID, userID)
		prev, derr := previousScore(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if prev == nil {
			return rating.ErrRatingNotFound
		}

		eventAgg, derr := rating.NewAggregate(ev.AverageRating, ev.RatingCount)
		if derr != nil {
			return derr
		}
		if eventAgg, derr = eventAgg.Remove(*prev); derr != nil {
			return derr
		}
		venueAgg, derr := rating.NewAggregate(venueSnap.AverageVenueRating, venueSnap.VenueRatingCount)
		if derr != nil {
			return derr
		}
		if venueAgg, derr = venueAgg.Remove(*prev); derr != nil {
			return derr
		}

		if derr = tx.Ratings().Delete(ctx, tx.DB(), id); derr != nil {
			return derr
		}
		if derr = tx.Events().UpdateRating(ctx, tx.DB(), eventID, eventAgg); derr != nil {
			return derr
		}
		return tx.Venues().UpdateRating(ctx, tx.DB(), ev.PartnerID, venueAgg)
	})
}

// CanRate implements rating.EligibilityChecker
func (uc *ratingUseCaseImpl) CanRate(ctx context.Context, input rating.EligibilityInput) error {
	ok, err := uc.uow.CommandReads().HasCheckedIn(ctx, input.UserID, input.EventID)
	if err != nil {
		return err
	}
	if !ok {
		return rating.ErrNotEligible
	}
	return nil
}

func previousScore(ctx context.Context, tx shared.Tx, id string) (*rating.Score, error) {
	snap, err := tx.Reads().RatingForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	s, err := rating.NewScore(snap.Rating)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
