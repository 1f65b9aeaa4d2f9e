package queries

import (
	"context"

	"github.com/google/uuid"
)

const maxHistoryItems = 100

type CheckInReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*CheckInHistoryItem, error)
	ListAttendees(ctx context.Context, partnerID, eventID uuid.UUID) ([]*AttendeeView, error)
}

type CheckInQueries interface {
	ListMyCheckIns(ctx context.Context, userID uuid.UUID, limit int) ([]*CheckInHistoryItem, error)
	ListAttendees(ctx context.Context, partnerID, eventID uuid.UUID) ([]*AttendeeView, error)
}

type checkInQueriesImpl struct {
	readStore CheckInReadStore
	events    EventReadStore
}

func NewCheckInQueries(readStore CheckInReadStore, events EventReadStore) CheckInQueries {
	return &checkInQueriesImpl{readStore: readStore, events: events}
}

func (q *checkInQueriesImpl) ListMyCheckIns(ctx context.Context, userID uuid.UUID, limit int) ([]*CheckInHistoryItem, error) {
	if limit <= 0 || limit > maxHistoryItems {
		limit = maxHistoryItems
	}
	return q.readStore.ListByUser(ctx, userID, int32(limit))
}

// ListAttendees only answers for events owned by the calling partner.
func (q *checkInQueriesImpl) ListAttendees(ctx context.Context, partnerID, eventID uuid.UUID) ([]*AttendeeView, error) {
	if _, _, err := q.events.FindCheckInTarget(ctx, partnerID, eventID); err != nil {
		if isNotFound(err) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return q.readStore.ListAttendees(ctx, partnerID, eventID)
}
