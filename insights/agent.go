package insights

import (
	"context"
	"fmt"
	"log"
	"time"

	"thinknode/internal/models"
	"thinknode/platforms/research"
	"thinknode/shared/config"
	"thinknode/shared/email"
	"thinknode/shared/scheduler"
)

// WatchAgent implements the scheduler.Agent interface. On each run it
// analyzes the configured watch topics and emails a digest.
type WatchAgent struct {
	config  *config.Config
	service *Service
	sender  *email.Sender
}

func NewWatchAgent(cfg *config.Config) *WatchAgent {
	return &WatchAgent{config: cfg}
}

func (w *WatchAgent) Name() string {
	return "Trend Watch"
}

func (w *WatchAgent) Initialize() error {
	log.Printf("Initializing %s...", w.Name())

	if w.service == nil {
		w.service = NewService(context.Background(), w.config)
		log.Println("Analysis service initialized")
	}

	if w.sender == nil {
		w.sender = email.NewSender(&w.config.Email)
		log.Println("Email sender initialized")
	}

	return nil
}

// WatchMetrics summarizes one watch run
type WatchMetrics struct {
	Topics   int
	Videos   int
	Posts    int
	Problems int
}

func (m WatchMetrics) GetSummary() string {
	return fmt.Sprintf("analyzed %d topics, found %d videos and %d posts, %d problems",
		m.Topics, m.Videos, m.Posts, m.Problems)
}

func (w *WatchAgent) RunOnce(ctx context.Context, events *scheduler.AgentEvents) error {
	startTime := time.Now()
	depth := research.ParseDepth(w.config.Watch.Depth)

	var reports []*models.AnalysisReport
	metrics := WatchMetrics{}

	for _, topic := range w.config.Watch.Topics {
		log.Printf("Analyzing watch topic %q...", topic)
		report := w.service.AnalyzeAll(ctx, topic, depth)
		reports = append(reports, report)

		metrics.Topics++
		metrics.Videos += len(report.Videos)
		metrics.Posts += len(report.Posts)
		metrics.Problems += len(report.Problems)

		for _, p := range report.Problems {
			log.Printf("Warning: %s problem for %q: %s", p.Platform, topic, p.Message)
		}
	}

	if len(reports) == 0 {
		log.Println("No watch topics configured, nothing to do")
		if events != nil && events.OnSuccess != nil {
			events.OnSuccess(metrics, time.Since(startTime))
		}
		return nil
	}

	if metrics.Problems > 0 && events != nil && events.OnPartialFailure != nil {
		events.OnPartialFailure(
			fmt.Errorf("%d platform problems across %d topics", metrics.Problems, metrics.Topics),
			time.Since(startTime),
		)
	}

	log.Printf("Sending digest for %d topics", len(reports))
	if err := w.sender.SendDigest(reports); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}
	log.Println("Digest sent successfully")

	duration := time.Since(startTime)
	if events != nil && events.OnSuccess != nil {
		events.OnSuccess(metrics, duration)
	}

	log.Printf("Watch run complete: %s", metrics.GetSummary())
	return nil
}
