package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"thinknode/internal/models"
	"thinknode/platforms/research"
)

type Message struct {
	Message string `json:"message"`
}

type videosResponse struct {
	Query   string                  `json:"query"`
	Videos  []*models.VideoRecord   `json:"videos"`
	Summary models.AnalysisSummary  `json:"summary"`
	Problem *models.PlatformProblem `json:"problem,omitempty"`
}

type postsResponse struct {
	Query   string                  `json:"query"`
	Posts   []*models.SocialPost    `json:"posts"`
	Problem *models.PlatformProblem `json:"problem,omitempty"`
}

type researchResponse struct {
	Report  *models.ResearchReport  `json:"report,omitempty"`
	Problem *models.PlatformProblem `json:"problem,omitempty"`
}

func (s *Router) GetVideos(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		w.WriteHeader(http.StatusBadRequest)
		encoder.Encode(Message{"query parameter q is required"})
		return
	}

	maxResults := parseBound(r.URL.Query().Get("max"), 0)

	start := time.Now()
	videos, problem := s.service.FetchVideos(r.Context(), query, maxResults)
	s.record(fmt.Sprintf("videos %q: %d results", query, len(videos)), problem, start)

	encoder.Encode(videosResponse{
		Query:   query,
		Videos:  videos,
		Summary: s.service.Summarize(videos),
		Problem: problem,
	})
}

func (s *Router) GetPosts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		w.WriteHeader(http.StatusBadRequest)
		encoder.Encode(Message{"query parameter q is required"})
		return
	}

	limit := int(parseBound(r.URL.Query().Get("limit"), 0))

	start := time.Now()
	posts, problem := s.service.FetchSocialPosts(r.Context(), query, limit)
	s.record(fmt.Sprintf("posts %q: %d results", query, len(posts)), problem, start)

	encoder.Encode(postsResponse{
		Query:   query,
		Posts:   posts,
		Problem: problem,
	})
}

func (s *Router) GetResearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(Message{"query parameter q is required"})
		return
	}

	depth := research.ParseDepth(r.URL.Query().Get("depth"))

	start := time.Now()
	report, problem := s.service.Research(r.Context(), query, depth)
	s.record(fmt.Sprintf("research %q (%s)", query, depth), problem, start)

	// format=md streams the raw report as a markdown download
	if r.URL.Query().Get("format") == "md" && report != nil {
		filename := fmt.Sprintf("research_%s_%s.md",
			strings.ReplaceAll(query, " ", "_"),
			report.GeneratedAt.Format("20060102"))
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		fmt.Fprint(w, report.Content)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(researchResponse{
		Report:  report,
		Problem: problem,
	})
}

func (s *Router) Analyze(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		w.WriteHeader(http.StatusBadRequest)
		encoder.Encode(Message{"query parameter q is required"})
		return
	}

	depth := research.ParseDepth(r.URL.Query().Get("depth"))

	start := time.Now()
	report := s.service.AnalyzeAll(r.Context(), query, depth)

	if s.monitor != nil {
		summary := fmt.Sprintf("analyze %q: %d videos, %d posts, %d problems",
			query, len(report.Videos), len(report.Posts), len(report.Problems))
		if len(report.Problems) > 0 {
			s.monitor.RecordPartialFailure(fmt.Errorf("%s", summary), time.Since(start))
		} else {
			s.monitor.RecordSuccess(summary, time.Since(start))
		}
	}

	encoder.Encode(report)
}

func (s *Router) record(summary string, problem *models.PlatformProblem, start time.Time) {
	if s.monitor == nil {
		return
	}
	if problem != nil {
		s.monitor.RecordPartialFailure(fmt.Errorf("%s: %s", problem.Platform, problem.Message), time.Since(start))
		return
	}
	s.monitor.RecordSuccess(summary, time.Since(start))
}

// parseBound parses a numeric query parameter, returning fallback for
// missing or unusable values. The platform clients clamp out-of-range
// bounds to their configured defaults.
func parseBound(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
