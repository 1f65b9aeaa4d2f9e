package commands

import (
	"context"

	"fervo/internal/domain/venue"
	"fervo/internal/infra"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

// FavoriteCommands are idempotent: adding twice or removing a missing favorite succeeds.
type FavoriteCommands interface {
	Add(ctx context.Context, userID, partnerID uuid.UUID) error
	Remove(ctx context.Context, userID, partnerID uuid.UUID) error
}

type favoriteUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewFavoriteUseCase(uow shared.UnitOfWork) FavoriteCommands {
	return &favoriteUseCaseImpl{uow: uow}
}

func (uc *favoriteUseCaseImpl) Add(ctx context.Context, userID, partnerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Favorites().Add(ctx, tx.DB(), userID, partnerID); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return venue.ErrVenueNotFound
			}
			return err
		}
		return nil
	})
}

func (uc *favoriteUseCaseImpl) Remove(ctx context.Context, userID, partnerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Favorites().Remove(ctx, tx.DB(), userID, partnerID)
	})
}
