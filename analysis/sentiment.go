// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode"
)

var ErrEstimatorFailed = errors.New("sentiment estimator failed")

// Estimator turns non-empty text into raw polarity/subjectivity scores.
type Estimator interface {
	Estimate(text string) (SentimentResult, error)
}

// SentimentScorer wraps an Estimator with the guarantees callers rely on:
// blank text is neutral, results are clamped to range, and any estimator
// error or panic degrades to the neutral result instead of failing.
type SentimentScorer struct {
	estimator  Estimator
	onFallback func(error)
}

// NewSentimentScorer builds a scorer. A nil estimator uses the default
// lexicon. onFallback, if set, is called whenever the neutral result is
// substituted for a failed estimate.
func NewSentimentScorer(estimator Estimator, onFallback func(error)) *SentimentScorer {
	if estimator == nil {
		estimator = NewLexiconEstimator(DefaultLexicon())
	}
	return &SentimentScorer{estimator: estimator, onFallback: onFallback}
}

// Analyze never fails.
func (s *SentimentScorer) Analyze(text string) (result SentimentResult) {
	if strings.TrimSpace(text) == "" {
		return SentimentResult{}
	}

	defer func() {
		if r := recover(); r != nil {
			result = s.fallback(fmt.Errorf("%w: panic: %v", ErrEstimatorFailed, r))
		}
	}()

	raw, err := s.estimator.Estimate(text)
	if err != nil {
		return s.fallback(fmt.Errorf("%w: %w", ErrEstimatorFailed, err))
	}
	if math.IsNaN(raw.Polarity) || math.IsNaN(raw.Subjectivity) {
		return s.fallback(fmt.Errorf("%w: %w", ErrEstimatorFailed, ErrNonFinite))
	}

	return SentimentResult{
		Polarity:     clamp(raw.Polarity, -1, 1),
		Subjectivity: clamp(raw.Subjectivity, 0, 1),
	}
}

func (s *SentimentScorer) fallback(err error) SentimentResult {
	slog.Warn("sentiment estimate failed, using neutral result", "error", err)
	if s.onFallback != nil {
		s.onFallback(err)
	}
	return SentimentResult{}
}

const (
	// negated words flip and halve their polarity
	negationFactor = -0.5
	// a negation reaches this many tokens ahead
	negationWindow = 3
)

// LexiconEstimator averages the scores of lexicon words found in the text,
// adjusting each for a preceding intensifier ("very") or negation ("not").
type LexiconEstimator struct {
	lex *Lexicon
}

func NewLexiconEstimator(lex *Lexicon) *LexiconEstimator {
	return &LexiconEstimator{lex: lex}
}

func (e *LexiconEstimator) Estimate(text string) (SentimentResult, error) {
	if e.lex == nil {
		return SentimentResult{}, ErrInvalidLexicon
	}

	var polarities, subjectivities []float64
	negateUntil := -1
	intensity := 1.0

	for i, tok := range tokenize(text) {
		if e.lex.isNegation(tok) {
			negateUntil = i + negationWindow
			continue
		}
		if factor, ok := e.lex.Intensifiers[tok]; ok {
			intensity *= factor
			continue
		}

		score, ok := e.lex.Words[tok]
		if !ok {
			intensity = 1.0
			continue
		}

		p := score.Polarity * intensity
		s := score.Subjectivity * intensity
		if i <= negateUntil {
			p *= negationFactor
			negateUntil = -1
		}
		polarities = append(polarities, clamp(p, -1, 1))
		subjectivities = append(subjectivities, clamp(s, 0, 1))
		intensity = 1.0
	}

	if len(polarities) == 0 {
		return SentimentResult{}, nil
	}
	return SentimentResult{
		Polarity:     mean(polarities),
		Subjectivity: mean(subjectivities),
	}, nil
}

func tokenize(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "’", "'"))
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
