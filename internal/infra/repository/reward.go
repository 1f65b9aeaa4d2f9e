package repository

import (
	"context"
	"time"

	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

type RewardWriteQueries interface {
	UpsertVenueCoins(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertVenueCoinsParams) error
	CreateEventShare(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventShareParams) error
}

type RewardRepository struct {
	queries RewardWriteQueries
}

func NewRewardRepository(queries RewardWriteQueries) *RewardRepository {
	return &RewardRepository{queries: queries}
}

func (r *RewardRepository) SaveBalance(ctx context.Context, tx sqlc.DBTX, userID, partnerID uuid.UUID, coins int, now time.Time) error {
	err := r.queries.UpsertVenueCoins(ctx, tx, sqlc.UpsertVenueCoinsParams{
		UserID:    userID,
		PartnerID: partnerID,
		Coins:     int32(coins),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save venue coins", err)
	}
	return nil
}

func (r *RewardRepository) LogShare(ctx context.Context, tx sqlc.DBTX, share shared.ShareRecord) error {
	err := r.queries.CreateEventShare(ctx, tx, sqlc.CreateEventShareParams{
		EventID:      share.EventID,
		UserID:       share.UserID,
		PartnerID:    share.PartnerID,
		CoinsAwarded: int32(share.CoinsAwarded),
		SharedAt:     pgconv.TimeToPgtype(share.SharedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to log share", err)
	}
	return nil
}
