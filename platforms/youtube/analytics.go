package youtube

import (
	"math"
	"sort"

	"thinknode/internal/models"
)

// EngagementRate computes (likes+comments)/views as a percentage, rounded to
// 2 decimal places (half away from zero). Zero views yields exactly 0.
func EngagementRate(likes, comments, views int64) float64 {
	if views <= 0 {
		return 0
	}
	rate := float64(likes+comments) / float64(views) * 100
	return math.Round(rate*100) / 100
}

// RankVideos returns a new slice ordered by view count, descending. The sort
// is stable: records with equal views keep their input order.
func RankVideos(records []*models.VideoRecord) []*models.VideoRecord {
	ranked := make([]*models.VideoRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views > ranked[j].Views
	})
	return ranked
}

// Summarize computes aggregate statistics over a video collection. Averages
// are 0 for the empty collection; average views uses floor division.
func Summarize(records []*models.VideoRecord) models.AnalysisSummary {
	summary := models.AnalysisSummary{Count: len(records)}
	if len(records) == 0 {
		return summary
	}

	var totalRate float64
	for _, record := range records {
		summary.TotalViews += record.Views
		totalRate += record.EngagementRate
	}

	summary.AverageViews = summary.TotalViews / int64(len(records))
	summary.AverageEngagementRate = totalRate / float64(len(records))
	return summary
}
