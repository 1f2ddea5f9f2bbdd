package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"thinknode/internal/models"
	"thinknode/shared/config"
)

// ErrMissingAPIKey signals that the search provider is not configured
var ErrMissingAPIKey = errors.New("SerpAPI key is not configured (set SERPAPI_API_KEY or instagram.serpapi_key)")

// Client looks up Instagram content through SerpAPI's Google engine,
// scoped to site:instagram.com.
type Client struct {
	config *config.InstagramConfig
	client *http.Client
}

// serpResponse is the slice of the SerpAPI payload this client consumes
type serpResponse struct {
	OrganicResults []SearchEntry `json:"organic_results"`
}

func NewClient(cfg *config.InstagramConfig) (*Client, error) {
	if cfg.SerpAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Client{
		config: cfg,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// SearchPosts returns at most limit validated posts for the query. Organic
// results that fail URL validation are dropped silently.
func (c *Client) SearchPosts(ctx context.Context, query string, limit int) ([]*models.SocialPost, error) {
	if limit < 1 || limit > 12 {
		limit = c.config.Limit
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", fmt.Sprintf("site:instagram.com %s", query))
	params.Set("api_key", c.config.SerpAPIKey)
	params.Set("num", "20")
	params.Set("google_domain", "google.com")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.SearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var apiResp serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	var posts []*models.SocialPost
	for _, entry := range apiResp.OrganicResults {
		if len(posts) >= limit {
			break
		}
		post := NormalizeResult(entry)
		if post == nil {
			continue
		}
		posts = append(posts, post)
	}

	log.Printf("Found %d Instagram results for %q (%d organic)", len(posts), query, len(apiResp.OrganicResults))
	return posts, nil
}
