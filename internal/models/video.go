package models

import "time"

type VideoRecord struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	Thumbnail      string    `json:"thumbnail"`
	ChannelTitle   string    `json:"channel_title"`
	PublishedAt    time.Time `json:"published_at"`
	Views          int64     `json:"views"`
	Likes          int64     `json:"likes"`
	Comments       int64     `json:"comments"`
	EngagementRate float64   `json:"engagement_rate"`
	Description    string    `json:"description"`
}

// AnalysisSummary aggregates a collection of video records. Recomputed fresh
// per request, never cached.
type AnalysisSummary struct {
	Count                 int     `json:"count"`
	TotalViews            int64   `json:"total_views"`
	AverageViews          int64   `json:"average_views"`
	AverageEngagementRate float64 `json:"average_engagement_rate"`
}
