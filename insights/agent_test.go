package insights

import (
	"context"
	"testing"
	"time"

	"thinknode/shared/config"
	"thinknode/shared/scheduler"
)

func TestWatchAgentName(t *testing.T) {
	agent := NewWatchAgent(&config.Config{})
	expected := "Trend Watch"
	if name := agent.Name(); name != expected {
		t.Errorf("Agent.Name() = %s, want %s", name, expected)
	}
}

func TestWatchMetricsGetSummary(t *testing.T) {
	tests := []struct {
		name     string
		metrics  WatchMetrics
		expected string
	}{
		{
			name:     "All zeros",
			metrics:  WatchMetrics{},
			expected: "analyzed 0 topics, found 0 videos and 0 posts, 0 problems",
		},
		{
			name: "Some results",
			metrics: WatchMetrics{
				Topics: 2,
				Videos: 12,
				Posts:  5,
			},
			expected: "analyzed 2 topics, found 12 videos and 5 posts, 0 problems",
		},
		{
			name: "With problems",
			metrics: WatchMetrics{
				Topics:   3,
				Videos:   8,
				Posts:    0,
				Problems: 2,
			},
			expected: "analyzed 3 topics, found 8 videos and 0 posts, 2 problems",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.metrics.GetSummary()
			if result != tt.expected {
				t.Errorf("GetSummary() = %s, want %s", result, tt.expected)
			}
		})
	}
}

func TestWatchAgentRunOnceNoTopics(t *testing.T) {
	cfg := testConfig()
	agent := NewWatchAgent(cfg)
	agent.service = &Service{config: cfg}

	var successCalled bool
	events := &scheduler.AgentEvents{
		OnSuccess: func(metrics scheduler.Metrics, duration time.Duration) {
			successCalled = true
			if _, ok := metrics.(WatchMetrics); !ok {
				t.Error("Metrics is not of type WatchMetrics")
			}
		},
	}

	if err := agent.RunOnce(context.Background(), events); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if !successCalled {
		t.Error("OnSuccess not called for an empty topic list")
	}
}

func TestWatchAgentImplementsSchedulerAgent(t *testing.T) {
	var _ scheduler.Agent = NewWatchAgent(&config.Config{})
}
