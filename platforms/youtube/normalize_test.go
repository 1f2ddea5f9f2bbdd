package youtube

import (
	"strings"
	"testing"
	"time"

	"google.golang.org/api/youtube/v3"
)

func searchItem(videoID string) *youtube.SearchResult {
	return &youtube.SearchResult{
		Id: &youtube.ResourceId{Kind: "youtube#video", VideoId: videoID},
		Snippet: &youtube.SearchResultSnippet{
			Title:        "Test Video",
			ChannelTitle: "Test Channel",
			PublishedAt:  "2026-08-01T12:00:00Z",
		},
	}
}

func TestNormalizeVideoStatistics(t *testing.T) {
	stats := &youtube.Video{
		Id: "abc",
		Statistics: &youtube.VideoStatistics{
			ViewCount:    1000,
			LikeCount:    90,
			CommentCount: 10,
		},
	}

	record := NormalizeVideo(searchItem("abc"), stats)
	if record == nil {
		t.Fatal("NormalizeVideo returned nil for a valid item")
	}

	if record.Views != 1000 || record.Likes != 90 || record.Comments != 10 {
		t.Errorf("counts = %d/%d/%d, want 1000/90/10", record.Views, record.Likes, record.Comments)
	}
	if record.EngagementRate != 10 {
		t.Errorf("EngagementRate = %v, want 10", record.EngagementRate)
	}
	if record.URL != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("URL = %s", record.URL)
	}

	expectedTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	if !record.PublishedAt.Equal(expectedTime) {
		t.Errorf("PublishedAt = %v, want %v", record.PublishedAt, expectedTime)
	}
}

func TestNormalizeVideoMissingStatistics(t *testing.T) {
	tests := []struct {
		name  string
		stats *youtube.Video
	}{
		{"No statistics entry", nil},
		{"Statistics entry without counts", &youtube.Video{Id: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := NormalizeVideo(searchItem("abc"), tt.stats)
			if record == nil {
				t.Fatal("NormalizeVideo returned nil, want a defaulted record")
			}
			if record.Views != 0 || record.Likes != 0 || record.Comments != 0 {
				t.Errorf("counts = %d/%d/%d, want all zeros", record.Views, record.Likes, record.Comments)
			}
			if record.EngagementRate != 0 {
				t.Errorf("EngagementRate = %v, want 0", record.EngagementRate)
			}
		})
	}
}

func TestNormalizeVideoMissingID(t *testing.T) {
	tests := []struct {
		name string
		item *youtube.SearchResult
	}{
		{"Nil item", nil},
		{"Nil resource id", &youtube.SearchResult{}},
		{"Empty video id", &youtube.SearchResult{Id: &youtube.ResourceId{Kind: "youtube#video"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if record := NormalizeVideo(tt.item, nil); record != nil {
				t.Errorf("NormalizeVideo = %+v, want nil", record)
			}
		})
	}
}

func TestNormalizeVideoDefaults(t *testing.T) {
	item := &youtube.SearchResult{
		Id:      &youtube.ResourceId{Kind: "youtube#video", VideoId: "abc"},
		Snippet: &youtube.SearchResultSnippet{},
	}

	record := NormalizeVideo(item, nil)
	if record.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", record.Title)
	}
	if record.ChannelTitle != "Unknown Channel" {
		t.Errorf("ChannelTitle = %q, want Unknown Channel", record.ChannelTitle)
	}
	if record.Thumbnail != "" {
		t.Errorf("Thumbnail = %q, want empty", record.Thumbnail)
	}
}

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		expected string
	}{
		{"Empty", 0, ""},
		{"Short", 50, strings.Repeat("a", 50)},
		{"Exactly 200", 200, strings.Repeat("a", 200)},
		{"201 truncated", 201, strings.Repeat("a", 200) + "..."},
		{"Long truncated", 500, strings.Repeat("a", 200) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Repeat("a", tt.length)
			result := truncateDescription(input)
			if result != tt.expected {
				t.Errorf("truncateDescription(len %d) = len %d, want len %d",
					tt.length, len(result), len(tt.expected))
			}
		})
	}
}

func TestBestThumbnail(t *testing.T) {
	tests := []struct {
		name     string
		details  *youtube.ThumbnailDetails
		expected string
	}{
		{"Nil details", nil, ""},
		{"Empty details", &youtube.ThumbnailDetails{}, ""},
		{
			"Prefers maxres",
			&youtube.ThumbnailDetails{
				Maxres:  &youtube.Thumbnail{Url: "maxres.jpg"},
				High:    &youtube.Thumbnail{Url: "high.jpg"},
				Default: &youtube.Thumbnail{Url: "default.jpg"},
			},
			"maxres.jpg",
		},
		{
			"Falls through to high",
			&youtube.ThumbnailDetails{
				High:    &youtube.Thumbnail{Url: "high.jpg"},
				Default: &youtube.Thumbnail{Url: "default.jpg"},
			},
			"high.jpg",
		},
		{
			"Default only",
			&youtube.ThumbnailDetails{
				Default: &youtube.Thumbnail{Url: "default.jpg"},
			},
			"default.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := bestThumbnail(tt.details); result != tt.expected {
				t.Errorf("bestThumbnail() = %q, want %q", result, tt.expected)
			}
		})
	}
}
