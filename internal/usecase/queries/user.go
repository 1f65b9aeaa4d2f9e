package queries

import (
	"context"

	"fervo/internal/domain/user"
	"fervo/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
)

type UserQueries interface {
	// GetCurrentUser returns the caller's profile; partners also get their venue.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	users  UserReadStore
	venues VenueReadStore
}

func NewUserQueries(users UserReadStore, venues VenueReadStore) UserQueries {
	return &userQueriesImpl{users: users, venues: venues}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if view.Role != user.RolePartner.String() {
		return view, nil
	}

	venue, err := q.venues.FindByID(ctx, userID)
	switch {
	case err == nil:
		view.Venue = venue
	case !isNotFound(err):
		return nil, err
	}
	return view, nil
}
