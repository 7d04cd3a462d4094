package models

// RevenueRange is a [low, high] pair in whole currency units (USD)
type RevenueRange struct {
	Low  int64 `json:"low"`
	High int64 `json:"high"`
}

// Add returns the element-wise sum of two ranges
func (r RevenueRange) Add(o RevenueRange) RevenueRange {
	return RevenueRange{Low: r.Low + o.Low, High: r.High + o.High}
}

// IncomeEstimate is the monthly income estimate broken down by revenue source.
// It is a heuristic based on public benchmarks, never a statement of real earnings.
type IncomeEstimate struct {
	MonthlyViews float64      `json:"monthlyViews"`
	Advertising  RevenueRange `json:"advertising"`
	Memberships  RevenueRange `json:"memberships"`
	Sponsorships RevenueRange `json:"sponsorships"`
	Donations    RevenueRange `json:"donations"`
	Total        RevenueRange `json:"total"`
	Methodology  string       `json:"methodology"`
	Disclaimer   string       `json:"disclaimer"`
}

// MetricsReport is the derived report for a single channel
type MetricsReport struct {
	ChannelID    string `json:"channelId"`
	Title        string `json:"title"`
	Country      string `json:"country"`
	ThumbnailURL string `json:"thumbnailUrl"`

	FormattedSubscribers string `json:"formattedSubscribers"`
	FormattedViews       string `json:"formattedViews"`
	FormattedVideoCount  string `json:"formattedVideoCount"`

	SubscriberCount       int64 `json:"subscriberCount"`
	ViewCount             int64 `json:"viewCount"`
	VideoCount            int64 `json:"videoCount"`
	HiddenSubscriberCount bool  `json:"hiddenSubscriberCount"`

	AverageViewsPerVideo float64 `json:"averageViewsPerVideo"`
	EngagementRate       float64 `json:"engagementRate"`

	IsAudienceAuthentic bool   `json:"isAudienceAuthentic"`
	AuthenticityNote    string `json:"authenticityNote"`

	IncomeEstimate IncomeEstimate `json:"incomeEstimate"`
}
