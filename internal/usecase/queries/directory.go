package queries

import (
	"context"
	"strings"
	"time"

	"fervo/internal/domain/checkin"
	"fervo/internal/infra"
	"fervo/internal/pkg/clock"
	"fervo/internal/pkg/errs"
	"fervo/internal/pkg/qrcode"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound      = errs.New("venue not found")
	ErrEventNotFound      = errs.New("event not found")
	ErrInvalidBoundingBox = errs.New("bounding box min must not exceed max")
)

const maxVenueResults = 500

// VenueFilter drives map marker filtering. Nil bounds are open.
type VenueFilter struct {
	MinLat      *float64
	MaxLat      *float64
	MinLng      *float64
	MaxLng      *float64
	Category    string
	Search      string
	LiveNow     bool
	HasUpcoming bool
	Limit       int
}

type EventFilter struct {
	From      *time.Time
	To        *time.Time
	Genre     string
	FreeOnly  bool
	PartnerID *uuid.UUID
}

type VenueListParams struct {
	MinLat        *float64
	MaxLat        *float64
	MinLng        *float64
	MaxLng        *float64
	Category      string
	Search        string
	LiveAt        *time.Time
	UpcomingAfter *time.Time
	Limit         int32
}

type EventListParams struct {
	EndsAfter    time.Time
	StartsBefore *time.Time
	Genre        string
	FreeOnly     bool
	PartnerID    *uuid.UUID
	AfterStart   *time.Time
	AfterID      *uuid.UUID
	Limit        int32
}

type VenueReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	List(ctx context.Context, params VenueListParams) ([]*VenueView, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*VenueView, error)
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	// FindCheckInTarget returns the event view with its token for partner-only use.
	FindCheckInTarget(ctx context.Context, partnerID, id uuid.UUID) (*EventView, string, error)
	List(ctx context.Context, params EventListParams) ([]*EventView, error)
	ListByPartner(ctx context.Context, partnerID uuid.UUID, endedAfter *time.Time) ([]*EventView, error)
}

type SubscriptionStatusReader interface {
	StatusByPartner(ctx context.Context, partnerID uuid.UUID) (string, error)
}

type DirectoryQueries interface {
	ListVenues(ctx context.Context, filter VenueFilter) ([]*VenueView, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*VenueDetailView, error)
	ListVenueEvents(ctx context.Context, venueID uuid.UUID, includePast bool) ([]*EventView, error)
	ListEvents(ctx context.Context, filter EventFilter, cursor *Cursor, limit int) ([]*EventView, *Cursor, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListOwnEvents(ctx context.Context, partnerID uuid.UUID) ([]*EventView, error)
	GetEventQR(ctx context.Context, partnerID, eventID uuid.UUID, size int) (*EventQRView, error)
}

type directoryQueriesImpl struct {
	venues        VenueReadStore
	events        EventReadStore
	subscriptions SubscriptionStatusReader
	clock         clock.Clock
}

func NewDirectoryQueries(venues VenueReadStore, events EventReadStore, subscriptions SubscriptionStatusReader, clk clock.Clock) DirectoryQueries {
	return &directoryQueriesImpl{venues: venues, events: events, subscriptions: subscriptions, clock: clk}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user text match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (q *directoryQueriesImpl) ListVenues(ctx context.Context, filter VenueFilter) ([]*VenueView, error) {
	if outOfOrder(filter.MinLat, filter.MaxLat) || outOfOrder(filter.MinLng, filter.MaxLng) {
		return nil, ErrInvalidBoundingBox
	}

	limit := filter.Limit
	if limit <= 0 || limit > maxVenueResults {
		limit = maxVenueResults
	}

	params := VenueListParams{
		MinLat:   filter.MinLat,
		MaxLat:   filter.MaxLat,
		MinLng:   filter.MinLng,
		MaxLng:   filter.MaxLng,
		Category: strings.ToLower(strings.TrimSpace(filter.Category)),
		Search:   escapeLike(strings.TrimSpace(filter.Search)),
		Limit:    int32(limit),
	}
	now := q.clock.Now()
	if filter.LiveNow {
		params.LiveAt = &now
	}
	if filter.HasUpcoming {
		params.UpcomingAfter = &now
	}
	return q.venues.List(ctx, params)
}

func (q *directoryQueriesImpl) GetVenue(ctx context.Context, id uuid.UUID) (*VenueDetailView, error) {
	v, err := q.venues.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	now := q.clock.Now()
	upcoming, err := q.events.ListByPartner(ctx, id, &now)
	if err != nil {
		return nil, err
	}

	status, err := q.subscriptions.StatusByPartner(ctx, id)
	if err != nil {
		return nil, err
	}

	return &VenueDetailView{VenueView: *v, SubscriptionStatus: status, UpcomingEvents: upcoming}, nil
}

func (q *directoryQueriesImpl) ListVenueEvents(ctx context.Context, venueID uuid.UUID, includePast bool) ([]*EventView, error) {
	if _, err := q.venues.FindByID(ctx, venueID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if includePast {
		return q.events.ListByPartner(ctx, venueID, nil)
	}
	now := q.clock.Now()
	return q.events.ListByPartner(ctx, venueID, &now)
}

func (q *directoryQueriesImpl) ListEvents(ctx context.Context, filter EventFilter, cursor *Cursor, limit int) ([]*EventView, *Cursor, error) {
	limit = ValidateLimit(limit)

	endsAfter := q.clock.Now()
	if filter.From != nil {
		endsAfter = *filter.From
	}
	params := EventListParams{
		EndsAfter:    endsAfter,
		StartsBefore: filter.To,
		Genre:        strings.TrimSpace(filter.Genre),
		FreeOnly:     filter.FreeOnly,
		PartnerID:    filter.PartnerID,
		Limit:        int32(limit + 1),
	}
	if cursor != nil && cursor.After != "" {
		lastStart, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		params.AfterStart = &lastStart
		params.AfterID = &lastID
	}

	rows, err := q.events.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartTime, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *directoryQueriesImpl) GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error) {
	e, err := q.events.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (q *directoryQueriesImpl) ListOwnEvents(ctx context.Context, partnerID uuid.UUID) ([]*EventView, error) {
	return q.events.ListByPartner(ctx, partnerID, nil)
}

func (q *directoryQueriesImpl) GetEventQR(ctx context.Context, partnerID, eventID uuid.UUID, size int) (*EventQRView, error) {
	_, token, err := q.events.FindCheckInTarget(ctx, partnerID, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	payload, err := checkin.Payload{EventID: eventID, PartnerID: partnerID, Token: token}.Encode()
	if err != nil {
		return nil, err
	}
	png, err := qrcode.PNG(payload, size)
	if err != nil {
		return nil, err
	}
	return &EventQRView{EventID: eventID, PartnerID: partnerID, Payload: payload, PNG: png}, nil
}

func outOfOrder(lo, hi *float64) bool {
	return lo != nil && hi != nil && *lo > *hi
}
