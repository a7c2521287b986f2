// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidScore     = errors.New("score must be within [-1, 1]")
	ErrNonFinite        = errors.New("value must be a finite number")
	ErrInvalidMoodLevel = errors.New("mood level must be within [1, 5]")
	ErrUnorderedSeries  = errors.New("observations must be sorted ascending by date")
	ErrDuplicateDate    = errors.New("observations must not share a date")
	ErrUnknownTrend     = errors.New("unknown trend")
)

// ValidationError reports which input failed validation.
// Index is -1 when the input is not part of a series.
type ValidationError struct {
	Field string
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid %s at index %d: %v", e.Field, e.Index, e.Err)
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err was produced by input validation.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Index: -1, Err: ErrNonFinite}
	}
	return nil
}

func checkScore(index int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: "score", Index: index, Err: ErrNonFinite}
	}
	if v < MinScore || v > MaxScore {
		return &ValidationError{Field: "score", Index: index, Err: ErrInvalidScore}
	}
	return nil
}
