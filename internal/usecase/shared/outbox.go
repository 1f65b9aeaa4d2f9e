package shared

import (
	"context"
	"encoding/json"
	"time"

	"fervo/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	JobKindPush          = "push"
	JobKindDirectorySync = "directory_sync"
)

const (
	TopicCouponMinted     = "coupon.minted"
	TopicCheckInConfirmed = "checkin.confirmed"
	TopicVenueChanged     = "venue.changed"
	TopicEventChanged     = "event.changed"
	TopicEventDeleted     = "event.deleted"
)

type PushPayload struct {
	UserID uuid.UUID         `json:"user_id"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
}

// DirectorySyncPayload names what changed; the dispatcher re-reads current state.
// A nil EventID means the venue profile itself changed.
type DirectorySyncPayload struct {
	PartnerID uuid.UUID  `json:"partner_id"`
	EventID   *uuid.UUID `json:"event_id,omitempty"`
}

func EnqueuePush(ctx context.Context, tx Tx, topic string, p PushPayload, now time.Time) error {
	return enqueue(ctx, tx, JobKindPush, topic, p, now)
}

func EnqueueDirectorySync(ctx context.Context, tx Tx, topic string, p DirectorySyncPayload, now time.Time) error {
	return enqueue(ctx, tx, JobKindDirectorySync, topic, p, now)
}

func enqueue(ctx context.Context, tx Tx, kind, topic string, payload any, now time.Time) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "marshal outbox payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, b, now)
}
