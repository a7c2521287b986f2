// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import "time"

// Trend is the direction of a fitted line through a mood series.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Status tells the caller whether slope and volatility can be trusted.
type Status string

const (
	StatusInsufficientData Status = "insufficient_data"
	StatusSuccess          Status = "success"
)

// CompanionAction is the behaviour the virtual companion should show.
type CompanionAction string

const (
	// ActionSleeping is the idle value. MapCompanionState never returns it
	// for valid input; it exists so a zero CompanionState reads as "idle".
	ActionSleeping        CompanionAction = "sleeping"
	ActionExcitedZoomies  CompanionAction = "excited_zoomies"
	ActionCuddling        CompanionAction = "cuddling"
	ActionObserving       CompanionAction = "observing"
	ActionConcernedNuzzle CompanionAction = "concerned_nuzzle"
	ActionHappyDance      CompanionAction = "happy_dance"
)

// Interaction is the interaction the companion suggests to the user.
type Interaction string

const (
	InteractionCheckIn Interaction = "check_in"
	InteractionPlay    Interaction = "play"
	InteractionComfort Interaction = "comfort"
)

// MoodObservation is one day's mood score in [-1, 1].
type MoodObservation struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// MoodSeries is a list of observations sorted ascending by date.
type MoodSeries []MoodObservation

// Scores returns the raw scores in series order.
func (s MoodSeries) Scores() []float64 {
	scores := make([]float64, len(s))
	for i, obs := range s {
		scores[i] = obs.Score
	}
	return scores
}

// Latest returns the last observation and false for an empty series.
func (s MoodSeries) Latest() (MoodObservation, bool) {
	if len(s) == 0 {
		return MoodObservation{}, false
	}
	return s[len(s)-1], true
}

// SentimentResult holds polarity in [-1, 1] and subjectivity in [0, 1].
type SentimentResult struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// TrendResult is the outcome of DetectDrift.
type TrendResult struct {
	Status     Status  `json:"status"`
	Trend      Trend   `json:"trend"`
	Slope      float64 `json:"slope"`
	Volatility float64 `json:"volatility"`
}

// CompanionState is the supportive directive for the virtual companion.
type CompanionState struct {
	Action               CompanionAction `json:"action"`
	HappinessModifier    int             `json:"happiness_modifier"`
	SuggestedInteraction Interaction     `json:"suggested_interaction"`
}
