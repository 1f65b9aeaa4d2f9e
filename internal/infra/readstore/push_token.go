package readstore

import (
	"context"

	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PushTokenReadQueries interface {
	ListPushTokensByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]string, error)
}

type PushTokenReadStore struct {
	queries PushTokenReadQueries
	db      sqlc.DBTX
}

func NewPushTokenReadStore(queries PushTokenReadQueries, db sqlc.DBTX) *PushTokenReadStore {
	return &PushTokenReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PushTokenReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	tokens, err := r.queries.ListPushTokensByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list push tokens", err)
	}
	return tokens, nil
}
