package queries

import (
	"context"

	"github.com/google/uuid"
)

type FavoriteReadStore interface {
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*VenueView, error)
}

type FavoriteQueries interface {
	ListFavoriteVenues(ctx context.Context, userID uuid.UUID) ([]*VenueView, error)
}

type favoriteQueriesImpl struct {
	readStore FavoriteReadStore
}

func NewFavoriteQueries(readStore FavoriteReadStore) FavoriteQueries {
	return &favoriteQueriesImpl{readStore: readStore}
}

func (q *favoriteQueriesImpl) ListFavoriteVenues(ctx context.Context, userID uuid.UUID) ([]*VenueView, error) {
	return q.readStore.ListFavorites(ctx, userID)
}
