package checkin

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn is written twice: once on the venue side as an attendee and once
// on the user side as part of their history.
type CheckIn struct {
	eventID         uuid.UUID
	partnerID       uuid.UUID
	userID          uuid.UUID
	userDisplayName string
	eventName       string
	venueName       string
	checkedInAt     time.Time
}

func NewCheckIn(eventID, partnerID, userID uuid.UUID, userDisplayName, eventName, venueName string, now time.Time) *CheckIn {
	return &CheckIn{
		eventID:         eventID,
		partnerID:       partnerID,
		userID:          userID,
		userDisplayName: userDisplayName,
		eventName:       eventName,
		venueName:       venueName,
		checkedInAt:     now,
	}
}

func (c *CheckIn) EventID() uuid.UUID      { return c.eventID }
func (c *CheckIn) PartnerID() uuid.UUID    { return c.partnerID }
func (c *CheckIn) UserID() uuid.UUID       { return c.userID }
func (c *CheckIn) UserDisplayName() string { return c.userDisplayName }
func (c *CheckIn) EventName() string       { return c.eventName }
func (c *CheckIn) VenueName() string       { return c.venueName }
func (c *CheckIn) CheckedInAt() time.Time  { return c.checkedInAt }
