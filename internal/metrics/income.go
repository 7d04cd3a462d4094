package metrics

import (
	"math"

	"github.com/yt-insights/channel-report/internal/models"
)

const (
	uploadsPerMonth = 4

	cpmLow  = 2.0
	cpmHigh = 10.0

	membershipRateLow   = 0.01
	membershipRateHigh  = 0.03
	membershipPriceLow  = 4.0
	membershipPriceHigh = 6.0

	donationShareLow  = 0.1
	donationShareHigh = 0.3
)

const (
	Methodology = "Based on industry benchmarks: $2-$10 CPM on four uploads a month, " +
		"1-3% of subscribers on a $4-$6 monthly membership, " +
		"and sponsorship rates tiered by subscriber count."
	Disclaimer = "This is an estimate, not the channel's real earnings. " +
		"Actual income depends on niche, audience location and deals that are not public."
)

type sponsorshipTier struct {
	minSubscribers int64
	rate           models.RevenueRange
}

// ordered from the highest threshold down
var sponsorshipTiers = []sponsorshipTier{
	{500_000, models.RevenueRange{Low: 4000, High: 15000}},
	{100_000, models.RevenueRange{Low: 1500, High: 5000}},
	{50_000, models.RevenueRange{Low: 600, High: 2000}},
	{10_000, models.RevenueRange{Low: 200, High: 800}},
}

// EstimateIncome derives a monthly income range per revenue source from the
// subscriber count and the average views per video.
func EstimateIncome(subscribers int64, avgViews float64) models.IncomeEstimate {
	if subscribers < 0 {
		subscribers = 0
	}
	monthlyViews := avgViews * uploadsPerMonth

	ads := models.RevenueRange{
		Low:  round(monthlyViews / 1000 * cpmLow),
		High: round(monthlyViews / 1000 * cpmHigh),
	}
	members := models.RevenueRange{
		Low:  round(float64(subscribers) * membershipRateLow * membershipPriceLow),
		High: round(float64(subscribers) * membershipRateHigh * membershipPriceHigh),
	}
	sponsors := SponsorshipRange(subscribers)
	donations := models.RevenueRange{
		Low:  round(float64(ads.Low) * donationShareLow),
		High: round(float64(ads.High) * donationShareHigh),
	}

	return models.IncomeEstimate{
		MonthlyViews: monthlyViews,
		Advertising:  ads,
		Memberships:  members,
		Sponsorships: sponsors,
		Donations:    donations,
		Total:        ads.Add(members).Add(sponsors).Add(donations),
		Methodology:  Methodology,
		Disclaimer:   Disclaimer,
	}
}

// SponsorshipRange returns the monthly sponsorship band for a subscriber count.
// Channels under 10,000 subscribers get nothing.
func SponsorshipRange(subscribers int64) models.RevenueRange {
	for _, tier := range sponsorshipTiers {
		if subscribers >= tier.minSubscribers {
			return tier.rate
		}
	}
	return models.RevenueRange{}
}

// round is half-up for the non-negative amounts used here
func round(v float64) int64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Round(v))
}
