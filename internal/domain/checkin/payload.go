package checkin

import (
	"encoding/json"
	"strings"

	"fervo/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMalformedPayload = errs.New("malformed check-in payload")
	ErrInvalidToken     = errs.New("invalid check-in token")
	ErrAlreadyCheckedIn = errs.New("already checked in")
)

// Payload is the content encoded in an event's QR code.
type Payload struct {
	EventID   uuid.UUID
	PartnerID uuid.UUID
	Token     string
}

type wirePayload struct {
	EventID   string `json:"eventId"`
	PartnerID string `json:"partnerId"`
	Token     string `json:"token"`
}

func ParsePayload(raw string) (Payload, error) {
	var w wirePayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &w); err != nil {
		return Payload{}, errs.WrapAs(err, "decode payload", ErrMalformedPayload)
	}
	if w.EventID == "" || w.PartnerID == "" || w.Token == "" {
		return Payload{}, ErrMalformedPayload
	}
	eventID, err := uuid.Parse(w.EventID)
	if err != nil {
		return Payload{}, errs.WrapAs(err, "parse eventId", ErrMalformedPayload)
	}
	partnerID, err := uuid.Parse(w.PartnerID)
	if err != nil {
		return Payload{}, errs.WrapAs(err, "parse partnerId", ErrMalformedPayload)
	}
	return Payload{EventID: eventID, PartnerID: partnerID, Token: w.Token}, nil
}

func (p Payload) Encode() (string, error) {
	b, err := json.Marshal(wirePayload{
		EventID:   p.EventID.String(),
		PartnerID: p.PartnerID.String(),
		Token:     p.Token,
	})
	if err != nil {
		return "", errs.Wrap(err, "encode payload")
	}
	return string(b), nil
}

// VerifyToken is plain string equality against the stored event token.
func (p Payload) VerifyToken(stored string) error {
	if p.Token != stored {
		return ErrInvalidToken
	}
	return nil
}
