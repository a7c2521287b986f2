// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

// Mood level scale: 1 = struggling, 5 = great
const (
	MinMoodLevel = 1
	MaxMoodLevel = 5
)

// ImprovingHappinessBonus is granted to the companion on an improving trend.
const ImprovingHappinessBonus = 10

// ValidateMoodLevel rejects levels outside [1, 5].
func ValidateMoodLevel(level int) error {
	if level < MinMoodLevel || level > MaxMoodLevel {
		return &ValidationError{Field: "mood_level", Index: -1, Err: ErrInvalidMoodLevel}
	}
	return nil
}

// ScoreFromMoodLevel maps a 1..5 mood level onto the [-1, 1] score scale.
func ScoreFromMoodLevel(level int) (float64, error) {
	if err := ValidateMoodLevel(level); err != nil {
		return 0, err
	}
	return float64(level-3) / 2, nil
}

// MapCompanionState derives the companion's behaviour from the trend and the
// current mood level. The trend picks the base action and interaction; a low
// (<= 2) or high (>= 4) mood level then overrides only the action.
//
// A declining trend or low mood always resolves to cuddling or
// concerned_nuzzle. No branch produces a discouraging action.
func MapCompanionState(trend Trend, currentMoodLevel int) (CompanionState, error) {
	if err := ValidateMoodLevel(currentMoodLevel); err != nil {
		return CompanionState{}, err
	}

	state := CompanionState{
		Action:               ActionSleeping,
		SuggestedInteraction: InteractionCheckIn,
	}

	switch trend {
	case TrendImproving:
		state.Action = ActionExcitedZoomies
		state.HappinessModifier = ImprovingHappinessBonus
		state.SuggestedInteraction = InteractionPlay
	case TrendDeclining:
		state.Action = ActionCuddling
		state.SuggestedInteraction = InteractionComfort
	case TrendStable:
		state.Action = ActionObserving
	default:
		return CompanionState{}, &ValidationError{Field: "trend", Index: -1, Err: ErrUnknownTrend}
	}

	switch {
	case currentMoodLevel <= 2:
		state.Action = ActionConcernedNuzzle
	case currentMoodLevel >= 4:
		state.Action = ActionHappyDance
	}

	return state, nil
}
