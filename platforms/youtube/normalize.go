package youtube

import (
	"fmt"
	"time"

	"thinknode/internal/models"

	"google.golang.org/api/youtube/v3"
)

const maxDescriptionLength = 200

// NormalizeVideo maps a search result and its matching statistics entry into
// a VideoRecord. Missing fields degrade to defaults; it never fails. Returns
// nil when the item carries no video ID, in which case the caller drops it.
func NormalizeVideo(item *youtube.SearchResult, stats *youtube.Video) *models.VideoRecord {
	if item == nil || item.Id == nil || item.Id.VideoId == "" {
		return nil
	}

	record := &models.VideoRecord{
		ID:  item.Id.VideoId,
		URL: fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.Id.VideoId),
	}

	if snippet := item.Snippet; snippet != nil {
		record.Title = snippet.Title
		record.ChannelTitle = snippet.ChannelTitle
		record.Thumbnail = bestThumbnail(snippet.Thumbnails)
		record.Description = truncateDescription(snippet.Description)

		if publishedAt, err := time.Parse(time.RFC3339, snippet.PublishedAt); err == nil {
			record.PublishedAt = publishedAt
		}
	}

	if record.Title == "" {
		record.Title = "Untitled"
	}
	if record.ChannelTitle == "" {
		record.ChannelTitle = "Unknown Channel"
	}

	if stats != nil {
		if record.Thumbnail == "" && stats.Snippet != nil {
			record.Thumbnail = bestThumbnail(stats.Snippet.Thumbnails)
		}
		if stats.Statistics != nil {
			record.Views = int64(stats.Statistics.ViewCount)
			record.Likes = int64(stats.Statistics.LikeCount)
			record.Comments = int64(stats.Statistics.CommentCount)
		}
	}

	record.EngagementRate = EngagementRate(record.Likes, record.Comments, record.Views)
	return record
}

// bestThumbnail prefers the highest-resolution variant offered
func bestThumbnail(details *youtube.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	for _, thumb := range []*youtube.Thumbnail{
		details.Maxres, details.Standard, details.High, details.Medium, details.Default,
	} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}

func truncateDescription(s string) string {
	if len(s) <= maxDescriptionLength {
		return s
	}
	return s[:maxDescriptionLength] + "..."
}
