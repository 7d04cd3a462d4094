package models

// ChannelStatistics is the snapshot of a channel fetched from the YouTube Data API.
// Counts are never negative; malformed or missing upstream values are stored as 0.
type ChannelStatistics struct {
	ChannelID             string `json:"channelId"`
	Title                 string `json:"title"`
	Country               string `json:"country,omitempty"`
	ThumbnailURL          string `json:"thumbnailUrl,omitempty"`
	SubscriberCount       int64  `json:"subscriberCount"`
	ViewCount             int64  `json:"viewCount"`
	VideoCount            int64  `json:"videoCount"`
	HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"`
}

// ReportView selects how much of a report is presented to the user
type ReportView string

const (
	// ViewFull shows statistics, the authenticity verdict and the income estimate.
	ViewFull ReportView = "full"
	// ViewPublic shows only the public statistics, without any estimate.
	ViewPublic ReportView = "public"
)

// ParseReportView maps a query value to a view, defaulting to ViewFull
func ParseReportView(raw string) ReportView {
	if ReportView(raw) == ViewPublic {
		return ViewPublic
	}
	return ViewFull
}
