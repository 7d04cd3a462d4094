// Package metrics derives the channel report from raw channel statistics.
//
// Everything here is a pure function of its arguments: no configuration,
// no shared state, safe to call from any number of goroutines.
package metrics

import "github.com/yt-insights/channel-report/internal/models"

const (
	DefaultThumbnailURL = "/assets/images/default-channel.png"
	DefaultCountry      = "Not public"
)

// AverageViewsPerVideo divides total views by the video count, treating a
// channel without videos as having one.
func AverageViewsPerVideo(views, videos int64) float64 {
	if views < 0 {
		views = 0
	}
	if videos < 1 {
		videos = 1
	}
	return float64(views) / float64(videos)
}

// ComputeReport builds the full report for one channel snapshot
func ComputeReport(stats models.ChannelStatistics) models.MetricsReport {
	subscribers := clamp(stats.SubscriberCount)
	views := clamp(stats.ViewCount)
	videos := clamp(stats.VideoCount)

	avgViews := AverageViewsPerVideo(views, videos)
	authentic := IsAuthentic(subscribers, avgViews)

	country := stats.Country
	if country == "" {
		country = DefaultCountry
	}
	thumbnail := stats.ThumbnailURL
	if thumbnail == "" {
		thumbnail = DefaultThumbnailURL
	}

	return models.MetricsReport{
		ChannelID:    stats.ChannelID,
		Title:        stats.Title,
		Country:      country,
		ThumbnailURL: thumbnail,

		FormattedSubscribers: FormatNumber(subscribers),
		FormattedViews:       FormatNumber(views),
		FormattedVideoCount:  FormatNumber(videos),

		SubscriberCount:       subscribers,
		ViewCount:             views,
		VideoCount:            videos,
		HiddenSubscriberCount: stats.HiddenSubscriberCount,

		AverageViewsPerVideo: avgViews,
		EngagementRate:       EngagementRate(subscribers, avgViews),

		IsAudienceAuthentic: authentic,
		AuthenticityNote:    AuthenticityNote(authentic),

		IncomeEstimate: EstimateIncome(subscribers, avgViews),
	}
}

func clamp(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
