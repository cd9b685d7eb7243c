package report

import (
	"fmt"
	"math"
	"time"
)

const (
	maxMatchScore = 98
	minMatchScore = 85
)

// LessThanAnHour is the countdown shown inside the final hour.
const LessThanAnHour = "Less than 1 hour left"

// DeriveMatchScore interpolates linearly from 98 for the first entry down to 85 for
// the last. List position is a display heuristic, not a ranking.
func DeriveMatchScore(index, total int) int {
	if total <= 1 {
		return maxMatchScore
	}
	if index < 0 {
		index = 0
	}
	if index > total-1 {
		index = total - 1
	}
	span := float64(maxMatchScore - minMatchScore)
	score := float64(maxMatchScore) - span*float64(index)/float64(total-1)
	return int(math.Round(score))
}

// ResolveMatchScore keeps a supplied positive score (clamped to 0-100) and derives one otherwise.
func ResolveMatchScore(supplied *float64, index, total int) int {
	if supplied == nil || math.IsNaN(*supplied) || *supplied <= 0 {
		return DeriveMatchScore(index, total)
	}
	score := math.Round(*supplied)
	if score > 100 {
		score = 100
	}
	return int(score)
}

// DeriveCountdown renders the time left until a normalized deadline, e.g. "14d 06h".
// A date-only deadline is the instant 00:00 UTC of that day.
func DeriveCountdown(deadlineNormalized string, now time.Time) string {
	if IsSentinel(deadlineNormalized) {
		return deadlineNormalized
	}
	target, err := time.Parse(DateLayout, deadlineNormalized)
	if err != nil {
		return DeadlineUnknown
	}

	diff := target.Sub(now)
	if diff <= 0 {
		return DeadlinePassed
	}

	days := int64(diff / (24 * time.Hour))
	hours := int64((diff % (24 * time.Hour)) / time.Hour)
	if days == 0 && hours == 0 {
		return LessThanAnHour
	}
	return fmt.Sprintf("%dd %02dh", days, hours)
}

// IsExpired reports whether a normalized deadline lies on a day before now's UTC date.
// Sentinels and unparseable values are never expired here.
func IsExpired(deadlineNormalized string, now time.Time) bool {
	if deadlineNormalized == DeadlinePassed {
		return true
	}
	target, err := time.Parse(DateLayout, deadlineNormalized)
	if err != nil {
		return false
	}
	return target.Before(dateOnly(now.UTC()))
}
