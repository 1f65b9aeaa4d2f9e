//go:build unit || e2e

package builder

import (
	"time"

	"fervo/internal/domain/event"
	"fervo/internal/domain/venue"
	reqdto "fervo/internal/handler/dto/request"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventBuilder struct {
	ID           uuid.UUID
	PartnerID    uuid.UUID
	Name         string
	Description  string
	MusicGenre   string
	StartTime    time.Time
	EndTime      time.Time
	IsFree       bool
	PriceCents   int
	Currency     string
	ShareEnabled bool
	CheckInToken string
}

func NewEventBuilder() *EventBuilder {
	start := time.Now().Add(-time.Hour).Truncate(time.Second)
	return &EventBuilder{
		ID:           uuid.New(),
		PartnerID:    uuid.New(),
		Name:         "Friday Techno",
		Description:  "Warehouse night",
		MusicGenre:   "techno",
		StartTime:    start,
		EndTime:      start.Add(6 * time.Hour),
		IsFree:       true,
		Currency:     "EUR",
		ShareEnabled: true,
		CheckInToken: "0123456789abcdef0123456789abcdef",
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) Params() event.Params {
	return event.Params{
		Name:         b.Name,
		Description:  b.Description,
		MusicGenre:   b.MusicGenre,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		IsFree:       b.IsFree,
		PriceCents:   b.PriceCents,
		Currency:     b.Currency,
		ShareEnabled: b.ShareEnabled,
	}
}

func (b *EventBuilder) BuildDomain(now time.Time) (*event.Event, error) {
	return event.NewEvent(b.PartnerID, b.Params(), now)
}

func (b *EventBuilder) BuildSnapshot() *shared.EventSnapshot {
	return &shared.EventSnapshot{
		ID:           b.ID,
		PartnerID:    b.PartnerID,
		Name:         b.Name,
		Description:  b.Description,
		MusicGenre:   b.MusicGenre,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		IsFree:       b.IsFree,
		PriceCents:   b.PriceCents,
		Currency:     b.Currency,
		ShareEnabled: b.ShareEnabled,
		CheckInToken: b.CheckInToken,
	}
}

func (b *EventBuilder) BuildRequestDTO() reqdto.EventRequest {
	share := b.ShareEnabled
	return reqdto.EventRequest{
		Name:         b.Name,
		Description:  b.Description,
		MusicGenre:   b.MusicGenre,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		IsFree:       b.IsFree,
		PriceCents:   b.PriceCents,
		Currency:     b.Currency,
		ShareEnabled: &share,
	}
}

// Fluent builder methods
func (b *EventBuilder) WithPartner(id uuid.UUID) *EventBuilder {
	b.PartnerID = id
	return b
}

func (b *EventBuilder) Ended() *EventBuilder {
	b.StartTime = time.Now().Add(-8 * time.Hour).Truncate(time.Second)
	b.EndTime = b.StartTime.Add(2 * time.Hour)
	return b
}

func (b *EventBuilder) SharingDisabled() *EventBuilder {
	b.ShareEnabled = false
	return b
}

type VenueBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Address     string
	City        string
	Latitude    float64
	Longitude   float64
	Category    string
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:        uuid.New(),
		Name:      "Club Fervo",
		Address:   "Calle Mayor 1",
		City:      "Madrid",
		Latitude:  40.4168,
		Longitude: -3.7038,
		Category:  "club",
	}
}

func (b *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(b)
	return b
}

func (b *VenueBuilder) Params() venue.Params {
	return venue.Params{
		Name:        b.Name,
		Description: b.Description,
		Address:     b.Address,
		City:        b.City,
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
		Category:    b.Category,
	}
}

func (b *VenueBuilder) BuildDomain() (*venue.Venue, error) {
	return venue.NewVenue(b.ID, b.Params())
}

func (b *VenueBuilder) BuildSnapshot() *shared.VenueSnapshot {
	return &shared.VenueSnapshot{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		City:      b.City,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		Category:  b.Category,
	}
}

func (b *VenueBuilder) BuildRequestDTO() *reqdto.VenueRequest {
	return &reqdto.VenueRequest{
		Name:        b.Name,
		Description: b.Description,
		Address:     b.Address,
		City:        b.City,
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
		Category:    b.Category,
	}
}
