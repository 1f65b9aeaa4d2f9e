package repository

import (
	"context"

	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PushTokenWriteQueries interface {
	UpsertPushToken(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPushTokenParams) error
	DeletePushToken(ctx context.Context, db sqlc.DBTX, arg sqlc.DeletePushTokenParams) error
}

type PushTokenRepository struct {
	queries PushTokenWriteQueries
}

func NewPushTokenRepository(queries PushTokenWriteQueries) *PushTokenRepository {
	return &PushTokenRepository{queries: queries}
}

func (r *PushTokenRepository) Upsert(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, token string) error {
	if err := r.queries.UpsertPushToken(ctx, tx, sqlc.UpsertPushTokenParams{Token: token, UserID: userID}); err != nil {
		return infra.WrapRepoErr("failed to save push token", err)
	}
	return nil
}

func (r *PushTokenRepository) Delete(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, token string) error {
	if err := r.queries.DeletePushToken(ctx, tx, sqlc.DeletePushTokenParams{Token: token, UserID: userID}); err != nil {
		return infra.WrapRepoErr("failed to delete push token", err)
	}
	return nil
}
