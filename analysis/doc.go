// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package analysis is the mood-analysis core: sentiment scoring of reflections,
trend detection over a daily mood series, the intervention trigger, and the
companion behaviour mapping.

Everything here is a pure function of its inputs. Nothing touches the network
or the database, and an Analyzer may be shared freely between goroutines.

# Sentiment

SentimentScorer wraps an Estimator (LexiconEstimator by default):

	scorer := analysis.NewSentimentScorer(nil, nil)
	res := scorer.Analyze("really tired but hopeful")

Blank text returns the neutral result {0, 0}. Estimator errors and panics
are logged and also return the neutral result.

# Trend

DetectDrift fits a least-squares line through the scores, indexed by
position (0..n-1) rather than by date:

	slope > 0.05   → improving
	slope < -0.05  → declining
	otherwise      → stable

Volatility is the population standard deviation of the scores. A series
with fewer than two observations returns StatusInsufficientData.

The series must already be sorted ascending by date with one observation
per calendar day. Unsorted or duplicate dates are rejected with
ErrUnorderedSeries / ErrDuplicateDate; the series is never re-sorted.

# Intervention

	ShouldIntervene(slope, mood) == slope < -0.1 || mood < -0.5

# Companion

MapCompanionState picks an action from the trend, then overrides it for
mood levels <= 2 (concerned_nuzzle) or >= 4 (happy_dance):

	improving → excited_zoomies, +10 happiness, play
	declining → cuddling, comfort
	stable    → observing, check_in

# Errors

Out-of-range or non-finite input fails with a *ValidationError that wraps
one of the Err* sentinels:

	if errors.Is(err, analysis.ErrInvalidMoodLevel) { ... }
*/
package analysis
