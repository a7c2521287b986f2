// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"math"
	"time"
)

// Score range for a MoodObservation
const (
	MinScore = -1.0
	MaxScore = 1.0
)

// Slope thresholds in score-per-index units. Both comparisons are strict,
// so a slope of exactly ±0.05 is stable.
const (
	ImprovingSlope = 0.05
	DecliningSlope = -0.05
)

// ValidateSeries checks scores are finite and within range, and that dates
// are strictly ascending by calendar day. The series is never re-sorted.
func ValidateSeries(series MoodSeries) error {
	for i, obs := range series {
		if err := checkScore(i, obs.Score); err != nil {
			return err
		}
		if i == 0 {
			continue
		}

		prev := calendarDay(series[i-1].Date)
		cur := calendarDay(obs.Date)
		if cur.Equal(prev) {
			return &ValidationError{Field: "date", Index: i, Err: ErrDuplicateDate}
		}
		if cur.Before(prev) {
			return &ValidationError{Field: "date", Index: i, Err: ErrUnorderedSeries}
		}
	}
	return nil
}

// DetectDrift fits a least-squares line through the series using each
// observation's position as x, so calendar gaps between dates are ignored.
// Volatility is the population standard deviation of the raw scores.
//
// Fewer than two observations yields StatusInsufficientData with a stable
// trend; that is a result, not an error. Errors are validation failures only.
func DetectDrift(series MoodSeries) (TrendResult, error) {
	if err := ValidateSeries(series); err != nil {
		return TrendResult{}, err
	}

	if len(series) < 2 {
		return TrendResult{
			Status: StatusInsufficientData,
			Trend:  TrendStable,
		}, nil
	}

	scores := series.Scores()
	if isConstant(scores) {
		return TrendResult{
			Status: StatusSuccess,
			Trend:  TrendStable,
		}, nil
	}

	slope := fitSlope(scores)
	return TrendResult{
		Status:     StatusSuccess,
		Trend:      classifySlope(slope),
		Slope:      slope,
		Volatility: populationStdDev(scores),
	}, nil
}

func classifySlope(slope float64) Trend {
	switch {
	case slope > ImprovingSlope:
		return TrendImproving
	case slope < DecliningSlope:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// fitSlope returns the least-squares slope of y against x = 0..n-1.
// Requires len(y) >= 2.
func fitSlope(y []float64) float64 {
	n := float64(len(y))
	xMean := (n - 1) / 2
	yMean := mean(y)

	var num, den float64
	for i, v := range y {
		dx := float64(i) - xMean
		num += dx * (v - yMean)
		den += dx * dx
	}
	return num / den
}

// populationStdDev divides by n, not n-1
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	m := mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// mean calculates the arithmetic mean
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// isConstant short-circuits the fit so equal scores give exactly zero
// rather than rounding noise from the mean.
func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
