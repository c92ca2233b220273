// Package journal holds the post-activation journey views: the hearing-age
// counter and the milestone calendar.
package journal

import (
	"time"

	"server/internal/schema"
)

// HearingAge is the elapsed-days view anchored on the activation date.
type HearingAge struct {
	Days int `json:"days"`
	// FirstYearProgress is days/365 capped at 1.
	FirstYearProgress float64 `json:"firstYearProgress"`
}

// ComputeHearingAge counts whole days from the activation date to now.
// now is injected so the counter is deterministic under test.
func ComputeHearingAge(activationDate string, now time.Time) (HearingAge, error) {
	activation, err := time.Parse(schema.DateFormat, activationDate)
	if err != nil {
		return HearingAge{}, err
	}

	// Compare calendar days, not instants, so partial days never count.
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(nowDay.Sub(activation).Hours() / 24)

	progress := float64(days) / 365
	if progress > 1 {
		progress = 1
	}
	if progress < 0 {
		progress = 0
	}

	return HearingAge{Days: days, FirstYearProgress: progress}, nil
}
