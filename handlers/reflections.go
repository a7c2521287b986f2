// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/emerge/analysis"
	"github.com/danielhkuo/emerge/auth"
	"github.com/danielhkuo/emerge/cliparse"
	"github.com/danielhkuo/emerge/db"
	"github.com/danielhkuo/emerge/metrics"
	"github.com/danielhkuo/emerge/middleware"
	"github.com/danielhkuo/emerge/models"
)

type ReflectionHandler struct {
	store    db.MoodStore
	cfg      cliparse.Config
	analyzer *analysis.Analyzer
	cipher   *auth.Cipher
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewReflectionHandler(store db.MoodStore, cfg cliparse.Config, analyzer *analysis.Analyzer, cipher *auth.Cipher, m *metrics.Metrics) *ReflectionHandler {
	return &ReflectionHandler{
		store:    store,
		cfg:      cfg,
		analyzer: analyzer,
		cipher:   cipher,
		metrics:  m,
		now:      time.Now,
	}
}

// Analyze handles POST /api/v1/reflections/analyze
func (h *ReflectionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticate(w, r, h.store, h.cfg.UserTokenSalt)
	if !ok {
		return
	}

	var req models.MoodEntryCreate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	score, err := analysis.ScoreFromMoodLevel(req.MoodLevel)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "mood_level must be between 1 and 5")
		return
	}

	recorded := h.now().UTC()
	if req.RecordedDate != "" {
		recorded, err = time.Parse(db.DateLayout, req.RecordedDate)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "recorded_date must be YYYY-MM-DD")
			return
		}
	}

	// The mood note is scored first; the reflection only when there is no note
	sentiment := h.analyzer.AnalyzeReflection(req.MoodNote, req.ReflectionText)
	h.metrics.ReflectionAnalyzed()

	// Encrypt free text before it touches the database
	noteEnc, err := h.cipher.EncryptOptional(req.MoodNote)
	if err != nil {
		slog.Error("failed to encrypt mood note", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store entry")
		return
	}
	reflectionEnc, err := h.cipher.EncryptOptional(req.ReflectionText)
	if err != nil {
		slog.Error("failed to encrypt reflection", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store entry")
		return
	}

	entryID, err := h.store.InsertEntry(r.Context(), models.MoodEntry{
		UserID:                userID,
		RecordedDate:          recorded,
		MoodLevel:             req.MoodLevel,
		Score:                 score,
		SentimentPolarity:     sentiment.Polarity,
		SentimentSubjectivity: sentiment.Subjectivity,
		MoodNoteEnc:           noteEnc,
		ReflectionEnc:         reflectionEnc,
	})
	if err != nil {
		slog.Error("failed to insert mood entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store entry")
		return
	}

	slog.Info("reflection analyzed",
		"user_id", userID,
		"entry_id", entryID,
		"mood_level", req.MoodLevel,
		"polarity", sentiment.Polarity,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.EmotionAnalysisResponse{
		SentimentPolarity:     sentiment.Polarity,
		SentimentSubjectivity: sentiment.Subjectivity,
		AnalysisID:            entryID,
		Message:               models.MessageReflectionProcessed,
	})
}
