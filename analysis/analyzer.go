// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

// Recommendations shown alongside a trend
const (
	RecommendationDeclining = "Consider a grounding exercise or connecting with your comfort person."
	RecommendationImproving = "Great momentum! Capture this feeling."
	RecommendationStable    = "Maintain your routine."
)

// TrendReport is a TrendResult plus the user-facing recommendation.
type TrendReport struct {
	TrendResult
	Recommendation string `json:"recommendation"`
}

// Analyzer composes the scorer, trend fit, intervention policy and
// companion mapping. It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	scorer *SentimentScorer
}

// NewAnalyzer returns an Analyzer. A nil scorer uses the default lexicon.
func NewAnalyzer(scorer *SentimentScorer) *Analyzer {
	if scorer == nil {
		scorer = NewSentimentScorer(nil, nil)
	}
	return &Analyzer{scorer: scorer}
}

// AnalyzeReflection scores the primary text if present and non-empty,
// otherwise the fallback text. Both absent scores as empty text.
func (a *Analyzer) AnalyzeReflection(text, fallbackText *string) SentimentResult {
	return a.scorer.Analyze(pickText(text, fallbackText))
}

// AnalyzeTrend runs DetectDrift and attaches the recommendation.
func (a *Analyzer) AnalyzeTrend(series MoodSeries) (TrendReport, error) {
	result, err := DetectDrift(series)
	if err != nil {
		return TrendReport{}, err
	}
	return TrendReport{
		TrendResult:    result,
		Recommendation: Recommendation(result.Trend),
	}, nil
}

// NeedsSupport rejects non-finite input before applying ShouldIntervene.
func (a *Analyzer) NeedsSupport(recentSlope, currentMood float64) (bool, error) {
	if err := checkFinite("slope", recentSlope); err != nil {
		return false, err
	}
	if err := checkFinite("current_mood", currentMood); err != nil {
		return false, err
	}
	return ShouldIntervene(recentSlope, currentMood), nil
}

// CompanionUpdate maps a trend and mood level to the companion's behaviour.
func (a *Analyzer) CompanionUpdate(trend Trend, currentMoodLevel int) (CompanionState, error) {
	return MapCompanionState(trend, currentMoodLevel)
}

// Recommendation returns the fixed advice for a trend.
func Recommendation(trend Trend) string {
	switch trend {
	case TrendDeclining:
		return RecommendationDeclining
	case TrendImproving:
		return RecommendationImproving
	default:
		return RecommendationStable
	}
}

func pickText(primary, fallback *string) string {
	if primary != nil && *primary != "" {
		return *primary
	}
	if fallback != nil {
		return *fallback
	}
	return ""
}
