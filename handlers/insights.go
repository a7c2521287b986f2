// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/emerge/analysis"
	"github.com/danielhkuo/emerge/cliparse"
	"github.com/danielhkuo/emerge/db"
	"github.com/danielhkuo/emerge/metrics"
	"github.com/danielhkuo/emerge/middleware"
	"github.com/danielhkuo/emerge/models"
	"github.com/dustin/go-humanize"
)

type InsightsHandler struct {
	store    db.MoodStore
	cfg      cliparse.Config
	analyzer *analysis.Analyzer
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewInsightsHandler(store db.MoodStore, cfg cliparse.Config, analyzer *analysis.Analyzer, m *metrics.Metrics) *InsightsHandler {
	return &InsightsHandler{
		store:    store,
		cfg:      cfg,
		analyzer: analyzer,
		metrics:  m,
		now:      time.Now,
	}
}

// Trend handles POST /api/v1/insights/trend
func (h *InsightsHandler) Trend(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticate(w, r, h.store, h.cfg.UserTokenSalt)
	if !ok {
		return
	}

	var req models.TrendRequest
	if !parseOptionalBody(w, r, &req) {
		return
	}
	days, ok := resolveDays(w, req.Days)
	if !ok {
		return
	}

	series, report, err := h.loadTrend(r.Context(), userID, days)
	if err != nil {
		slog.Error("failed to analyze trend", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to analyze trend")
		return
	}

	// Support is judged against the most recent day in the window
	needsSupport := false
	if latest, ok := series.Latest(); ok {
		needsSupport, err = h.analyzer.NeedsSupport(report.Slope, latest.Score)
		if err != nil {
			slog.Error("failed to evaluate support", "user_id", userID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to analyze trend")
			return
		}
	}
	if needsSupport {
		h.metrics.InterventionSignalled()
		slog.Info("support recommended", "user_id", userID, "slope", report.Slope)
	}

	resp := models.TrendResponse{
		Status:         string(report.Status),
		TrendDirection: string(report.Trend),
		Slope:          report.Slope,
		Volatility:     report.Volatility,
		Recommendation: report.Recommendation,
		NeedsSupport:   needsSupport,
		Entries:        len(series),
	}
	if len(series) > 0 {
		resp.Since = humanize.RelTime(series[0].Date, h.now(), "ago", "from now")
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Companion handles POST /api/v1/insights/companion
func (h *InsightsHandler) Companion(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticate(w, r, h.store, h.cfg.UserTokenSalt)
	if !ok {
		return
	}

	var req models.CompanionRequest
	if !parseOptionalBody(w, r, &req) {
		return
	}
	days, ok := resolveDays(w, req.Days)
	if !ok {
		return
	}

	// Current mood level: explicit, else the latest stored entry
	var level int
	if req.CurrentMoodLevel != nil {
		level = *req.CurrentMoodLevel
		if err := analysis.ValidateMoodLevel(level); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "current_mood_level must be between 1 and 5")
			return
		}
	} else {
		latest, err := h.store.LatestEntry(r.Context(), userID)
		if errors.Is(err, db.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "current_mood_level is required when no entries exist")
			return
		}
		if err != nil {
			slog.Error("failed to query latest entry", "user_id", userID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		level = latest.MoodLevel
	}

	_, report, err := h.loadTrend(r.Context(), userID, days)
	if err != nil {
		slog.Error("failed to analyze trend", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to analyze trend")
		return
	}

	state, err := h.analyzer.CompanionUpdate(report.Trend, level)
	if err != nil {
		slog.Error("failed to map companion state", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update companion")
		return
	}
	h.metrics.CompanionAction(string(state.Action))

	middleware.JSONResponse(w, http.StatusOK, models.CompanionStateResponse{
		Action:               string(state.Action),
		HappinessModifier:    state.HappinessModifier,
		SuggestedInteraction: string(state.SuggestedInteraction),
		TrendDirection:       string(report.Trend),
		MoodLevel:            level,
	})
}

// loadTrend fetches the daily series ending today and fits the trend.
func (h *InsightsHandler) loadTrend(ctx context.Context, userID string, days int) (analysis.MoodSeries, analysis.TrendReport, error) {
	y, m, d := h.now().UTC().Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -(days - 1))

	series, err := h.store.DailySeries(ctx, userID, from, to)
	if err != nil {
		return nil, analysis.TrendReport{}, err
	}

	report, err := h.analyzer.AnalyzeTrend(series)
	if err != nil {
		return nil, analysis.TrendReport{}, fmt.Errorf("stored series rejected: %w", err)
	}
	h.metrics.TrendClassified(string(report.Trend))

	return series, report, nil
}

// parseOptionalBody decodes a JSON body, treating an empty body as "use
// defaults". On failure it writes a 400 and returns false.
func parseOptionalBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := middleware.ParseJSONBody(r, v)
	if err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	return true
}

// resolveDays applies the default window when days is omitted. An explicit
// value, zero included, must lie in [1, MaxTrendDays].
func resolveDays(w http.ResponseWriter, requested *int) (int, bool) {
	if requested == nil {
		return models.DefaultTrendDays, true
	}
	days := *requested
	if days < 1 || days > models.MaxTrendDays {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("days must be between 1 and %d", models.MaxTrendDays))
		return 0, false
	}
	return days, true
}
