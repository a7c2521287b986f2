// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/emerge/analysis"
	"github.com/danielhkuo/emerge/auth"
	"github.com/danielhkuo/emerge/cliparse"
	"github.com/danielhkuo/emerge/db"
	"github.com/danielhkuo/emerge/handlers"
	"github.com/danielhkuo/emerge/metrics"
	"github.com/danielhkuo/emerge/middleware"
	"github.com/danielhkuo/emerge/models"
)

// Deps are the shared services handed to every handler.
type Deps struct {
	Store    db.MoodStore
	Config   cliparse.Config
	Analyzer *analysis.Analyzer
	Cipher   *auth.Cipher
	Metrics  *metrics.Metrics
}

func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()
	cfg := deps.Config

	// Initialize handlers
	userHandler := handlers.NewUserHandler(deps.Store, cfg)
	reflectionHandler := handlers.NewReflectionHandler(deps.Store, cfg, deps.Analyzer, deps.Cipher, deps.Metrics)
	insightsHandler := handlers.NewInsightsHandler(deps.Store, cfg, deps.Analyzer, deps.Metrics)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPM, cfg.UserTokenSalt)
	api := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(limiter.Wrap(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok", Backend: "go"})
	})

	// Metrics
	mux.Handle("GET /metrics", deps.Metrics.Handler())

	// Users
	mux.HandleFunc("POST /users", api(userHandler.Register))

	// Check-ins (requires X-User-ID and X-User-Token)
	mux.HandleFunc("POST /api/v1/reflections/analyze", api(reflectionHandler.Analyze))

	// Insights
	mux.HandleFunc("POST /api/v1/insights/trend", api(insightsHandler.Trend))
	mux.HandleFunc("POST /api/v1/insights/companion", api(insightsHandler.Companion))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("emerge API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigins)(mux)
}
