package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"thinknode/insights"
	"thinknode/insights/api"
	"thinknode/shared/config"
	"thinknode/shared/monitoring"
	"thinknode/shared/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context that responds to signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mode := "serve"
	if len(os.Args) > 1 {
		if os.Args[1] == "--once" {
			// Bare --once means a single watch run
			mode = "watch"
		} else {
			mode = os.Args[1]
		}
	}

	switch mode {
	case "serve":
		serve(ctx, cfg)
	case "watch":
		watch(ctx, cfg)
	default:
		log.Fatalf("Unknown mode %q (expected serve or watch)", mode)
	}
}

func serve(ctx context.Context, cfg *config.Config) {
	service := insights.NewService(ctx, cfg)

	monitor := monitoring.NewMonitor()
	healthServer := monitoring.NewHealthServer(monitor, fmt.Sprintf("%d", cfg.Monitoring.HealthPort))
	healthServer.Start()

	router := api.NewRouter(service, monitor)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		<-ctx.Done()
		log.Println("Shutting down dashboard server...")
		server.Shutdown(context.Background())
	}()

	log.Printf("Dashboard API listening on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
}

func watch(ctx context.Context, cfg *config.Config) {
	if err := cfg.ValidateWatch(); err != nil {
		log.Fatalf("Failed to validate watch configuration: %v", err)
	}

	agent := insights.NewWatchAgent(cfg)
	s := scheduler.New(cfg, agent)

	if hasFlag("--once") {
		fmt.Println("Running once...")
		if err := agent.Initialize(); err != nil {
			log.Fatalf("Failed to initialize agent: %v", err)
		}

		if err := s.RunOnce(ctx); err != nil {
			log.Fatalf("Failed to run: %v", err)
		}
		return
	}

	fmt.Println("Starting scheduler...")
	if err := s.Start(ctx); err != nil {
		log.Fatalf("Scheduler failed: %v", err)
	}
}

func hasFlag(flag string) bool {
	for _, arg := range os.Args[1:] {
		if arg == flag {
			return true
		}
	}
	return false
}
