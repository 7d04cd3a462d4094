package metrics

import "math"

const (
	smallChannelSubscribers = 10_000
	largeChannelSubscribers = 1_000_000
	minEngagementRate       = 1.0
	maxEngagementRate       = 10.0
)

const (
	NoteAuthentic = "Audience activity is consistent with the subscriber count. " +
		"Views per video match what an organically grown audience produces."
	NoteAnomalous = "Views per video are low for a channel of this size. " +
		"Part of the audience may be inactive, or subscribers may not be organic."
)

// EngagementRate is average views per video as a percentage of subscribers,
// capped at 10. A channel without subscribers has an engagement rate of 0.
func EngagementRate(subscribers int64, avgViews float64) float64 {
	if subscribers <= 0 {
		return 0
	}
	return math.Min(maxEngagementRate, avgViews/float64(subscribers)*100)
}

// IsAuthentic flags implausible subscriber/engagement combinations.
// Small channels always pass; mid-size channels pass with engagement above 1%.
func IsAuthentic(subscribers int64, avgViews float64) bool {
	if subscribers < smallChannelSubscribers {
		return true
	}
	return EngagementRate(subscribers, avgViews) > minEngagementRate &&
		subscribers < largeChannelSubscribers
}

// AuthenticityNote returns the advisory text shown next to the verdict
func AuthenticityNote(authentic bool) string {
	if authentic {
		return NoteAuthentic
	}
	return NoteAnomalous
}
