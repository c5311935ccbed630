package rest

import (
	"net/http"

	"github.com/heartmarshall/feedback-insights/internal/transport/middleware"
)

// NewRouter registers all endpoints on a ServeMux and wraps it with mw.
// insightLimit, when non-nil, guards insight generation only.
func NewRouter(health *HealthHandler, fb *FeedbackHandler, mw, insightLimit middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /healthcheck", health.Healthcheck)

	mux.HandleFunc("GET /feedback", fb.ListFeedback)
	mux.HandleFunc("GET /feedback_and_insights", fb.ListFeedbackAndInsights)
	mux.HandleFunc("POST /user", fb.CreateUser)
	mux.HandleFunc("POST /feedback", fb.CreateFeedback)

	var generate http.Handler = http.HandlerFunc(fb.GenerateInsight)
	if insightLimit != nil {
		generate = insightLimit(generate)
	}
	mux.Handle("POST /feedback/{id}/insight", generate)

	return middleware.Chain(mw)(mux)
}
