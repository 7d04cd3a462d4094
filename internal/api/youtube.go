package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/yt-insights/channel-report/internal/apperrors"
	"github.com/yt-insights/channel-report/internal/metrics"
	"github.com/yt-insights/channel-report/internal/models"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
	"google.golang.org/api/youtube/v3"
)

// ChannelLookup turns a user query into the statistics of a single channel
type ChannelLookup interface {
	Lookup(ctx context.Context, query string) (*models.ChannelStatistics, error)
}

// YouTubeLookup resolves channels and fetches their statistics through the
// YouTube Data API v3. It holds no state between calls.
type YouTubeLookup struct {
	service *youtube.Service
	client  *http.Client
	logger  *zap.Logger
}

// NewYouTubeLookup creates a lookup bound to apiKey. With an empty key the
// lookup is still returned, but every call fails as unconfigured.
func NewYouTubeLookup(ctx context.Context, apiKey string, logger *zap.Logger, opts ...option.ClientOption) (*YouTubeLookup, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if apiKey == "" {
		logger.Warn("YouTube API key not set, channel lookups will fail")
		return &YouTubeLookup{logger: logger}, nil
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	client, _, err := htransport.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube HTTP client: %w", err)
	}

	return &YouTubeLookup{
		service: service,
		client:  client,
		logger:  logger,
	}, nil
}

// Lookup resolves the query to a channel id and then fetches its statistics.
// The second call depends on the first, so they run one after the other.
func (y *YouTubeLookup) Lookup(ctx context.Context, query string) (*models.ChannelStatistics, error) {
	channelID, err := y.ResolveChannelID(ctx, query)
	if err != nil {
		return nil, err
	}
	return y.FetchStatistics(ctx, channelID)
}

// ResolveChannelID maps a free-text name, @handle or channel URL to a channel id
func (y *YouTubeLookup) ResolveChannelID(ctx context.Context, query string) (string, error) {
	if y.service == nil {
		return "", apperrors.NewUnconfigured()
	}

	ref := parseChannelQuery(query)
	switch ref.kind {
	case refChannelID:
		return ref.value, nil
	case refHandle:
		return y.channelIDFor(ctx, query, "forHandle", ref.value)
	case refUsername:
		return y.channelIDFor(ctx, query, "forUsername", ref.value)
	case refUnsupported:
		y.logger.Debug("Unsupported YouTube URL", zap.String("query", query))
		return "", apperrors.NewChannelNotFound(query)
	}

	call := y.service.Search.List([]string{"snippet"}).
		Q(ref.value).
		Type("channel").
		MaxResults(1).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return "", apperrors.NewUpstreamUnavailable("search.list", describeAPIError(err))
	}

	for _, item := range response.Items {
		if item == nil {
			continue
		}
		if item.Id != nil && item.Id.ChannelId != "" {
			return item.Id.ChannelId, nil
		}
		if item.Snippet != nil && item.Snippet.ChannelId != "" {
			return item.Snippet.ChannelId, nil
		}
	}

	y.logger.Info("No channel found", zap.String("query", query))
	return "", apperrors.NewChannelNotFound(query)
}

// channelIDFor looks a channel up by handle or legacy username
func (y *YouTubeLookup) channelIDFor(ctx context.Context, query, param, value string) (string, error) {
	call := y.service.Channels.List([]string{"id"}).Context(ctx)

	response, err := call.Do(googleapi.QueryParameter(param, value))
	if err != nil {
		return "", apperrors.NewUpstreamUnavailable("channels.list "+param, describeAPIError(err))
	}
	if len(response.Items) == 0 || response.Items[0] == nil || response.Items[0].Id == "" {
		y.logger.Info("No channel found", zap.String("query", query), zap.String(param, value))
		return "", apperrors.NewChannelNotFound(query)
	}
	return response.Items[0].Id, nil
}

// channelsResponse mirrors the channels.list payload. Each count is decoded
// on its own; a malformed or missing value becomes 0.
type channelsResponse struct {
	Items []*channelItem `json:"items"`
}

type channelItem struct {
	Id         string                  `json:"id"`
	Snippet    *youtube.ChannelSnippet `json:"snippet"`
	Statistics *channelCounts          `json:"statistics"`
}

type channelCounts struct {
	SubscriberCount       lenientCount `json:"subscriberCount"`
	ViewCount             lenientCount `json:"viewCount"`
	VideoCount            lenientCount `json:"videoCount"`
	HiddenSubscriberCount bool         `json:"hiddenSubscriberCount"`
}

type lenientCount int64

func (c *lenientCount) UnmarshalJSON(b []byte) error {
	*c = lenientCount(metrics.ParseCount(strings.Trim(string(b), `"`)))
	return nil
}

// FetchStatistics loads title, country, thumbnail and counters for a channel
func (y *YouTubeLookup) FetchStatistics(ctx context.Context, channelID string) (*models.ChannelStatistics, error) {
	if y.service == nil {
		return nil, apperrors.NewUnconfigured()
	}

	params := url.Values{}
	params.Set("alt", "json")
	params.Set("prettyPrint", "false")
	params.Set("part", "snippet,statistics")
	params.Set("id", channelID)
	endpoint := googleapi.ResolveRelative(y.service.BasePath, "youtube/v3/channels") + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewUpstreamUnavailable("channels.list", err)
	}
	req.Header.Set("User-Agent", googleapi.UserAgent)

	res, err := y.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamUnavailable("channels.list", err)
	}
	defer googleapi.CloseBody(res)
	if err := googleapi.CheckResponse(res); err != nil {
		return nil, apperrors.NewUpstreamUnavailable("channels.list", describeAPIError(err))
	}

	var response channelsResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, apperrors.NewUpstreamUnavailable("channels.list", fmt.Errorf("decoding response: %w", err))
	}
	if len(response.Items) == 0 || response.Items[0] == nil {
		return nil, apperrors.NewUpstreamUnavailable("channels.list",
			fmt.Errorf("no channel returned for id %s", channelID))
	}

	channel := response.Items[0]
	stats := &models.ChannelStatistics{ChannelID: channel.Id}
	if stats.ChannelID == "" {
		stats.ChannelID = channelID
	}

	if snippet := channel.Snippet; snippet != nil {
		stats.Title = snippet.Title
		stats.Country = snippet.Country
		stats.ThumbnailURL = bestThumbnail(snippet.Thumbnails)
	}
	if s := channel.Statistics; s != nil {
		stats.SubscriberCount = int64(s.SubscriberCount)
		stats.ViewCount = int64(s.ViewCount)
		stats.VideoCount = int64(s.VideoCount)
		stats.HiddenSubscriberCount = s.HiddenSubscriberCount
	}

	y.logger.Debug("Channel statistics fetched",
		zap.String("channelId", stats.ChannelID),
		zap.String("title", stats.Title),
		zap.Int64("subscribers", stats.SubscriberCount),
		zap.Int64("videos", stats.VideoCount))

	return stats, nil
}

func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, thumb := range []*youtube.Thumbnail{t.High, t.Medium, t.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}

// describeAPIError keeps the status code and reason of a googleapi error
// for the logs; the user never sees it.
func describeAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		reason := ""
		if len(apiErr.Errors) > 0 {
			reason = apiErr.Errors[0].Reason
		}
		return fmt.Errorf("youtube api status %d (%s): %w", apiErr.Code, reason, err)
	}
	return err
}
