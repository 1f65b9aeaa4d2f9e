package rating

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	id        string
	eventID   uuid.UUID
	userID    uuid.UUID
	partnerID uuid.UUID
	score     Score
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

// ID returns the natural key of a user's rating for an event.
func ID(eventID, userID uuid.UUID) string {
	return eventID.String() + "_" + userID.String()
}

func NewRating(eventID, userID, partnerID uuid.UUID, scoreValue int, commentText string, now time.Time) (*Rating, error) {
	score, err := NewScore(scoreValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Rating{
		id:        ID(eventID, userID),
		eventID:   eventID,
		userID:    userID,
		partnerID: partnerID,
		score:     score,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (r *Rating) ID() string           { return r.id }
func (r *Rating) EventID() uuid.UUID   { return r.eventID }
func (r *Rating) UserID() uuid.UUID    { return r.userID }
func (r *Rating) PartnerID() uuid.UUID { return r.partnerID }
func (r *Rating) Score() Score         { return r.score }
func (r *Rating) Comment() Comment     { return r.comment }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
func (r *Rating) UpdatedAt() time.Time { return r.updatedAt }
