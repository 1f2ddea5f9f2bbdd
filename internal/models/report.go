package models

import "time"

// ResearchReport holds the markdown output of an AI research run
type ResearchReport struct {
	Topic       string    `json:"topic"`
	Depth       string    `json:"depth"`
	Model       string    `json:"model"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
}

// PlatformProblem describes a contained per-platform failure. One platform
// failing never affects another's results.
type PlatformProblem struct {
	Platform string `json:"platform"`
	Message  string `json:"message"`
}

// AnalysisReport is the combined result of analyzing a topic across all
// platforms. Collections are empty, not nil-checked away, when a platform
// fails; Problems records what went wrong.
type AnalysisReport struct {
	Topic        string            `json:"topic"`
	GeneratedAt  time.Time         `json:"generated_at"`
	Videos       []*VideoRecord    `json:"videos"`
	VideoSummary AnalysisSummary   `json:"video_summary"`
	Posts        []*SocialPost     `json:"posts"`
	Research     *ResearchReport   `json:"research,omitempty"`
	Problems     []PlatformProblem `json:"problems,omitempty"`
}
