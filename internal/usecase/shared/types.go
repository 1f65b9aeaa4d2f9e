package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	DisplayName  string
	AvatarURL    *string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type VenueSnapshot struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	Address            string
	City               string
	Latitude           float64
	Longitude          float64
	Category           string
	ImageURL           *string
	AverageVenueRating float64
	VenueRatingCount   int
}

type EventSnapshot struct {
	ID            uuid.UUID
	PartnerID     uuid.UUID
	Name          string
	Description   string
	MusicGenre    string
	StartTime     time.Time
	EndTime       time.Time
	IsFree        bool
	PriceCents    int
	Currency      string
	ShareEnabled  bool
	CheckInToken  string
	AverageRating float64
	RatingCount   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RatingSnapshot struct {
	ID        string
	EventID   uuid.UUID
	UserID    uuid.UUID
	PartnerID uuid.UUID
	Rating    int
	Comment   string
}

type ShareRecord struct {
	EventID      uuid.UUID
	UserID       uuid.UUID
	PartnerID    uuid.UUID
	CoinsAwarded int
	SharedAt     time.Time
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
}
