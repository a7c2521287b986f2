// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

// Intervention thresholds
const (
	InterventionSlope = -0.1
	InterventionMood  = -0.5
)

// ShouldIntervene reports whether the user may need proactive support:
// the recent slope is falling steeply or the current mood is very low.
// Inputs must be finite; use Analyzer.NeedsSupport to have them checked.
func ShouldIntervene(recentSlope, currentMood float64) bool {
	return recentSlope < InterventionSlope || currentMood < InterventionMood
}
