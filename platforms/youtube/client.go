package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"thinknode/internal/models"
	"thinknode/shared/config"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ErrMissingAPIKey signals that YouTube access is not configured
var ErrMissingAPIKey = errors.New("YouTube API key is not configured (set YOUTUBE_API_KEY or youtube.api_key)")

type Client struct {
	service *youtube.Service
	config  *config.YouTubeConfig
}

func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{
		service: service,
		config:  cfg,
	}, nil
}

// FetchVideos searches for videos matching the query, joins in per-video
// statistics with a single batched call, and returns normalized records
// ranked by view count. Items without an extractable video ID are dropped.
func (c *Client) FetchVideos(ctx context.Context, query string, maxResults int64) ([]*models.VideoRecord, error) {
	if maxResults < 1 || maxResults > 20 {
		maxResults = c.config.MaxResults
	}

	searchResponse, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		RelevanceLanguage("en").
		Order("relevance").
		SafeSearch("moderate").
		Context(ctx).
		Do()
	if err != nil {
		return nil, describeAPIError("search", err)
	}

	var videoIDs []string
	for _, item := range searchResponse.Items {
		if item.Id != nil && item.Id.Kind == "youtube#video" && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}

	if len(videoIDs) == 0 {
		log.Printf("No YouTube videos found for %q", query)
		return []*models.VideoRecord{}, nil
	}

	statsResponse, err := c.service.Videos.List([]string{"snippet", "statistics"}).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, describeAPIError("statistics", err)
	}

	statsByID := make(map[string]*youtube.Video, len(statsResponse.Items))
	for _, item := range statsResponse.Items {
		statsByID[item.Id] = item
	}

	var records []*models.VideoRecord
	for _, item := range searchResponse.Items {
		if item.Id == nil || item.Id.Kind != "youtube#video" {
			continue
		}
		record := NormalizeVideo(item, statsByID[item.Id.VideoId])
		if record == nil {
			continue
		}
		records = append(records, record)
	}

	log.Printf("Retrieved %d videos for %q", len(records), query)
	return RankVideos(records), nil
}

// describeAPIError surfaces quota and key problems with actionable messages,
// matching what the Data API reports in its error reasons.
func describeAPIError(operation string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		for _, e := range apiErr.Errors {
			switch e.Reason {
			case "quotaExceeded":
				return fmt.Errorf("YouTube API quota exceeded, try again tomorrow: %w", err)
			case "keyInvalid":
				return fmt.Errorf("YouTube API key is invalid: %w", err)
			}
		}
		return fmt.Errorf("YouTube %s call returned status %d: %w", operation, apiErr.Code, err)
	}
	return fmt.Errorf("YouTube %s call failed: %w", operation, err)
}
