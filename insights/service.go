package insights

import (
	"context"
	"log"
	"sync"
	"time"

	"thinknode/internal/models"
	"thinknode/platforms/instagram"
	"thinknode/platforms/research"
	"thinknode/platforms/youtube"
	"thinknode/shared/config"
)

// Narrow views of the platform clients so tests can stand in for them
type videoFetcher interface {
	FetchVideos(ctx context.Context, query string, maxResults int64) ([]*models.VideoRecord, error)
}

type postSearcher interface {
	SearchPosts(ctx context.Context, query string, limit int) ([]*models.SocialPost, error)
}

type researcher interface {
	Research(ctx context.Context, topic string, depth research.Depth) (*models.ResearchReport, error)
}

// Service is the per-platform fetch boundary. Every failure is contained
// here: a platform that is misconfigured or errors yields an empty result
// collection and a PlatformProblem, never an aborted request, and one
// platform's failure never affects another's results.
type Service struct {
	config *config.Config

	videos videoFetcher
	posts  postSearcher
	agent  researcher

	// Construction failures, surfaced per request as problems
	videosErr error
	postsErr  error
	agentErr  error
}

// NewService wires the platform clients. Each platform initializes
// independently; a missing credential parks that platform in a degraded
// state instead of failing construction.
func NewService(ctx context.Context, cfg *config.Config) *Service {
	s := &Service{config: cfg}

	if client, err := youtube.NewClient(ctx, &cfg.YouTube); err != nil {
		log.Printf("Warning: YouTube platform unavailable: %v", err)
		s.videosErr = err
	} else {
		s.videos = client
		log.Println("YouTube client initialized")
	}

	if client, err := instagram.NewClient(&cfg.Instagram); err != nil {
		log.Printf("Warning: Instagram platform unavailable: %v", err)
		s.postsErr = err
	} else {
		s.posts = client
		log.Println("Instagram search client initialized")
	}

	if agent, err := research.NewAgent(ctx, &cfg.Research); err != nil {
		log.Printf("Warning: research platform unavailable: %v", err)
		s.agentErr = err
	} else {
		s.agent = agent
		log.Println("Research agent initialized")
	}

	return s
}

// FetchVideos returns ranked videos for the query, or an empty collection
// plus the contained failure.
func (s *Service) FetchVideos(ctx context.Context, query string, maxResults int64) ([]*models.VideoRecord, *models.PlatformProblem) {
	if s.videos == nil {
		return []*models.VideoRecord{}, problem("youtube", s.videosErr)
	}

	records, err := s.videos.FetchVideos(ctx, query, maxResults)
	if err != nil {
		log.Printf("YouTube fetch failed for %q: %v", query, err)
		return []*models.VideoRecord{}, problem("youtube", err)
	}
	if records == nil {
		records = []*models.VideoRecord{}
	}
	return records, nil
}

// FetchSocialPosts returns at most limit validated posts for the query, or
// an empty collection plus the contained failure.
func (s *Service) FetchSocialPosts(ctx context.Context, query string, limit int) ([]*models.SocialPost, *models.PlatformProblem) {
	if s.posts == nil {
		return []*models.SocialPost{}, problem("instagram", s.postsErr)
	}

	posts, err := s.posts.SearchPosts(ctx, query, limit)
	if err != nil {
		log.Printf("Instagram search failed for %q: %v", query, err)
		return []*models.SocialPost{}, problem("instagram", err)
	}
	if posts == nil {
		posts = []*models.SocialPost{}
	}
	return posts, nil
}

// Research runs the AI research agent for the topic, or reports the
// contained failure.
func (s *Service) Research(ctx context.Context, topic string, depth research.Depth) (*models.ResearchReport, *models.PlatformProblem) {
	if s.agent == nil {
		return nil, problem("research", s.agentErr)
	}

	report, err := s.agent.Research(ctx, topic, depth)
	if err != nil {
		log.Printf("Research failed for %q: %v", topic, err)
		return nil, problem("research", err)
	}
	return report, nil
}

// Summarize computes aggregate statistics over a video collection. Pure
// function, no I/O.
func (s *Service) Summarize(records []*models.VideoRecord) models.AnalysisSummary {
	return youtube.Summarize(records)
}

// AnalyzeAll runs every platform for the topic concurrently and assembles
// the combined report. The platforms have no ordering dependency; each
// failure stays contained to its own section of the report.
func (s *Service) AnalyzeAll(ctx context.Context, topic string, depth research.Depth) *models.AnalysisReport {
	report := &models.AnalysisReport{
		Topic:       topic,
		GeneratedAt: time.Now(),
		Videos:      []*models.VideoRecord{},
		Posts:       []*models.SocialPost{},
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	addProblem := func(p *models.PlatformProblem) {
		if p == nil {
			return
		}
		mu.Lock()
		report.Problems = append(report.Problems, *p)
		mu.Unlock()
	}

	wg.Add(3)

	go func() {
		defer wg.Done()
		videos, p := s.FetchVideos(ctx, topic, s.config.YouTube.MaxResults)
		mu.Lock()
		report.Videos = videos
		report.VideoSummary = youtube.Summarize(videos)
		mu.Unlock()
		addProblem(p)
	}()

	go func() {
		defer wg.Done()
		posts, p := s.FetchSocialPosts(ctx, topic, s.config.Instagram.Limit)
		mu.Lock()
		report.Posts = posts
		mu.Unlock()
		addProblem(p)
	}()

	go func() {
		defer wg.Done()
		res, p := s.Research(ctx, topic, depth)
		mu.Lock()
		report.Research = res
		mu.Unlock()
		addProblem(p)
	}()

	wg.Wait()
	return report
}

func problem(platform string, err error) *models.PlatformProblem {
	message := "platform unavailable"
	if err != nil {
		message = err.Error()
	}
	return &models.PlatformProblem{Platform: platform, Message: message}
}
