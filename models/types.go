// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Trend window constants (days)
const (
	DefaultTrendDays = 7
	MaxTrendDays     = 365
)

// Response messages
const (
	MessageReflectionProcessed = "Reflection processed and encrypted."
)

// Request types

type MoodEntryCreate struct {
	MoodLevel      int     `json:"mood_level"`
	MoodNote       *string `json:"mood_note,omitempty"`
	ReflectionText *string `json:"reflection_text,omitempty"` // Detailed reflection for NLP
	RecordedDate   string  `json:"recorded_date,omitempty"`   // YYYY-MM-DD, defaults to today
}

// Days is the window length; omitted means DefaultTrendDays
type TrendRequest struct {
	Days *int `json:"days,omitempty"`
}

// CurrentMoodLevel falls back to the most recent entry when omitted
type CompanionRequest struct {
	Days             *int `json:"days,omitempty"`
	CurrentMoodLevel *int `json:"current_mood_level,omitempty"`
}

// Response types

type RegisterUserResponse struct {
	UserID    string `json:"user_id"`
	UserToken string `json:"user_token"`
}

type EmotionAnalysisResponse struct {
	SentimentPolarity     float64 `json:"sentiment_polarity"`
	SentimentSubjectivity float64 `json:"sentiment_subjectivity"`
	AnalysisID            string  `json:"analysis_id"`
	Message               string  `json:"message"`
}

type TrendResponse struct {
	Status         string  `json:"status"`
	TrendDirection string  `json:"trend_direction"` // improving, declining, stable
	Slope          float64 `json:"slope"`
	Volatility     float64 `json:"volatility"`
	Recommendation string  `json:"recommendation"`
	NeedsSupport   bool    `json:"needs_support"`
	Entries        int     `json:"entries"`
	Since          string  `json:"since,omitempty"` // humanized age of the first entry
}

type CompanionStateResponse struct {
	Action               string `json:"action"`
	HappinessModifier    int    `json:"happiness_modifier"`
	SuggestedInteraction string `json:"suggested_interaction"`
	TrendDirection       string `json:"trend_direction"`
	MoodLevel            int    `json:"mood_level"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

// Domain types

type MoodEntry struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	RecordedDate          time.Time `json:"recorded_date"`
	MoodLevel             int       `json:"mood_level"`
	Score                 float64   `json:"score"` // mood level normalized to [-1, 1]
	SentimentPolarity     float64   `json:"sentiment_polarity"`
	SentimentSubjectivity float64   `json:"sentiment_subjectivity"`
	MoodNoteEnc           *string   `json:"-"` // Never expose in JSON
	ReflectionEnc         *string   `json:"-"` // Never expose in JSON
	CreatedAt             time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
