package api

import (
	"context"
	"log"
	"net/http"

	"thinknode/internal/models"
	"thinknode/platforms/research"
	"thinknode/shared/monitoring"

	"github.com/gorilla/mux"
)

// Service is the slice of the insights service the API needs
type Service interface {
	FetchVideos(ctx context.Context, query string, maxResults int64) ([]*models.VideoRecord, *models.PlatformProblem)
	FetchSocialPosts(ctx context.Context, query string, limit int) ([]*models.SocialPost, *models.PlatformProblem)
	Research(ctx context.Context, topic string, depth research.Depth) (*models.ResearchReport, *models.PlatformProblem)
	Summarize(records []*models.VideoRecord) models.AnalysisSummary
	AnalyzeAll(ctx context.Context, topic string, depth research.Depth) *models.AnalysisReport
}

type Router struct {
	mux.Router
	service Service
	monitor *monitoring.Monitor
}

func NewRouter(service Service, monitor *monitoring.Monitor) *Router {

	router := &Router{
		Router:  *mux.NewRouter(),
		service: service,
		monitor: monitor,
	}

	router.Path("/api/videos").Methods("GET").HandlerFunc(router.GetVideos)
	router.Path("/api/posts").Methods("GET").HandlerFunc(router.GetPosts)
	router.Path("/api/research").Methods("GET").HandlerFunc(router.GetResearch)
	router.Path("/api/analyze").Methods("GET").HandlerFunc(router.Analyze)

	router.Use(loggingMiddleware)

	return router
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Println(r.RequestURI)
		next.ServeHTTP(w, r)
	})
}
