package request

import (
	"time"

	"fervo/internal/domain/event"
	"fervo/internal/domain/venue"
	"fervo/internal/pkg/ptr"
	"fervo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VenueRequest struct {
	Name        string  `json:"name" binding:"required,max=120"`
	Description string  `json:"description" binding:"max=2000"`
	Address     string  `json:"address" binding:"max=300"`
	City        string  `json:"city" binding:"max=120"`
	Latitude    float64 `json:"latitude" binding:"latitude"`
	Longitude   float64 `json:"longitude" binding:"longitude"`
	Category    string  `json:"category" binding:"required,venue_category"`
}

func (r *VenueRequest) ToParams() venue.Params {
	var p venue.Params
	_ = copier.Copy(&p, r)
	return p
}

type EventRequest struct {
	Name         string    `json:"name" binding:"required,max=120"`
	Description  string    `json:"description" binding:"max=4000"`
	MusicGenre   string    `json:"music_genre" binding:"max=60"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required,gtfield=StartTime"`
	IsFree       bool      `json:"is_free"`
	PriceCents   int       `json:"price_cents" binding:"gte=0"`
	Currency     string    `json:"currency" binding:"omitempty,len=3"`
	ShareEnabled *bool     `json:"share_enabled"`
}

func (r *EventRequest) ToParams() event.Params {
	return event.Params{
		Name:         r.Name,
		Description:  r.Description,
		MusicGenre:   r.MusicGenre,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		IsFree:       r.IsFree,
		PriceCents:   r.PriceCents,
		Currency:     r.Currency,
		ShareEnabled: ptr.ValueOr(r.ShareEnabled, true),
	}
}

// VenueListQuery binds map marker filters from the query string.
type VenueListQuery struct {
	MinLat      *float64 `form:"min_lat" binding:"omitempty,latitude"`
	MaxLat      *float64 `form:"max_lat" binding:"omitempty,latitude"`
	MinLng      *float64 `form:"min_lng" binding:"omitempty,longitude"`
	MaxLng      *float64 `form:"max_lng" binding:"omitempty,longitude"`
	Category    string   `form:"category" binding:"omitempty,venue_category"`
	Search      string   `form:"q" binding:"max=100"`
	LiveNow     bool     `form:"live_now"`
	HasUpcoming bool     `form:"has_upcoming"`
	Limit       int      `form:"limit" binding:"gte=0"`
}

func (q *VenueListQuery) ToFilter() queries.VenueFilter {
	var f queries.VenueFilter
	_ = copier.Copy(&f, q)
	return f
}

type EventListQuery struct {
	From      *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To        *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Genre     string     `form:"genre" binding:"max=60"`
	FreeOnly  bool       `form:"free_only"`
	PartnerID string     `form:"partner_id" binding:"omitempty,uuid"`
	After     string     `form:"after"`
	Limit     int        `form:"limit" binding:"gte=0"`
}

func (q *EventListQuery) ToFilter() queries.EventFilter {
	f := queries.EventFilter{From: q.From, To: q.To, Genre: q.Genre, FreeOnly: q.FreeOnly}
	if id, err := uuid.Parse(q.PartnerID); err == nil {
		f.PartnerID = &id
	}
	return f
}

func (q *EventListQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
