package event

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"fervo/internal/pkg/errs"

	"github.com/google/uuid"
)

type Event struct {
	id           uuid.UUID
	partnerID    uuid.UUID
	name         Name
	description  string
	musicGenre   string
	window       Window
	pricing      Pricing
	shareEnabled bool
	checkInToken string
	createdAt    time.Time
	updatedAt    time.Time
}

type Params struct {
	Name         string
	Description  string
	MusicGenre   string
	StartTime    time.Time
	EndTime      time.Time
	IsFree       bool
	PriceCents   int
	Currency     string
	ShareEnabled bool
}

func NewEvent(partnerID uuid.UUID, p Params, now time.Time) (*Event, error) {
	token, err := NewCheckInToken()
	if err != nil {
		return nil, err
	}
	e := &Event{
		id:           uuid.New(),
		partnerID:    partnerID,
		checkInToken: token,
		createdAt:    now,
	}
	if err := e.Update(p, now); err != nil {
		return nil, err
	}
	return e, nil
}

// Reconstruct rebuilds a persisted event without re-running validation.
func Reconstruct(id, partnerID uuid.UUID, p Params, checkInToken string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		id:           id,
		partnerID:    partnerID,
		name:         Name{value: p.Name},
		description:  p.Description,
		musicGenre:   p.MusicGenre,
		window:       Window{start: p.StartTime, end: p.EndTime},
		pricing:      Pricing{isFree: p.IsFree, priceCents: p.PriceCents, currency: p.Currency},
		shareEnabled: p.ShareEnabled,
		checkInToken: checkInToken,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (e *Event) Update(p Params, now time.Time) error {
	name, err := NewName(p.Name)
	if err != nil {
		return err
	}
	window, err := NewWindow(p.StartTime, p.EndTime)
	if err != nil {
		return err
	}
	pricing, err := NewPricing(p.IsFree, p.PriceCents, p.Currency)
	if err != nil {
		return err
	}

	e.name = name
	e.description = strings.TrimSpace(p.Description)
	e.musicGenre = strings.TrimSpace(p.MusicGenre)
	e.window = window
	e.pricing = pricing
	e.shareEnabled = p.ShareEnabled
	e.updatedAt = now
	return nil
}

func (e *Event) RegenerateCheckInToken(now time.Time) error {
	token, err := NewCheckInToken()
	if err != nil {
		return err
	}
	e.checkInToken = token
	e.updatedAt = now
	return nil
}

func (e *Event) IsLive(now time.Time) bool   { return e.window.Contains(now) }
func (e *Event) HasEnded(now time.Time) bool { return e.window.HasEnded(now) }

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) PartnerID() uuid.UUID { return e.partnerID }
func (e *Event) Name() Name           { return e.name }
func (e *Event) Description() string  { return e.description }
func (e *Event) MusicGenre() string   { return e.musicGenre }
func (e *Event) Window() Window       { return e.window }
func (e *Event) Pricing() Pricing     { return e.pricing }
func (e *Event) ShareEnabled() bool   { return e.shareEnabled }
func (e *Event) CheckInToken() string { return e.checkInToken }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }

// NewCheckInToken returns a random 32-char hex string. It is compared verbatim
// against scanned QR payloads and is not a credential.
func NewCheckInToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", errs.Wrap(err, "generate check-in token")
	}
	return hex.EncodeToString(b), nil
}
