package reward

import "time"

type SkipReason string

const (
	SkipNone            SkipReason = ""
	SkipSharingDisabled SkipReason = "sharing_disabled"
	SkipEventEnded      SkipReason = "event_ended"
)

type ShareTarget struct {
	ShareEnabled bool
	EndTime      time.Time
}

// Eligibility reports why a share earns nothing, or SkipNone when it earns coins.
func Eligibility(t ShareTarget, now time.Time) SkipReason {
	if !t.ShareEnabled {
		return SkipSharingDisabled
	}
	if !now.Before(t.EndTime) {
		return SkipEventEnded
	}
	return SkipNone
}
