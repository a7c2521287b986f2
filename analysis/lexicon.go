// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexiconYAML []byte

var ErrInvalidLexicon = errors.New("invalid lexicon")

// WordScore is the sentiment carried by a single lexicon word.
type WordScore struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

// Lexicon is read-only once parsed and safe to share between goroutines.
type Lexicon struct {
	Words        map[string]WordScore `yaml:"words"`
	Intensifiers map[string]float64   `yaml:"intensifiers"`
	Negations    []string             `yaml:"negations"`

	negations map[string]struct{}
}

// ParseLexicon decodes and validates a YAML lexicon.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	if len(lex.Words) == 0 {
		return nil, fmt.Errorf("%w: no words defined", ErrInvalidLexicon)
	}

	words := make(map[string]WordScore, len(lex.Words))
	for word, score := range lex.Words {
		if score.Polarity < -1 || score.Polarity > 1 {
			return nil, fmt.Errorf("%w: polarity for %q out of range", ErrInvalidLexicon, word)
		}
		if score.Subjectivity < 0 || score.Subjectivity > 1 {
			return nil, fmt.Errorf("%w: subjectivity for %q out of range", ErrInvalidLexicon, word)
		}
		words[strings.ToLower(word)] = score
	}
	lex.Words = words

	intensifiers := make(map[string]float64, len(lex.Intensifiers))
	for word, factor := range lex.Intensifiers {
		if factor <= 0 {
			return nil, fmt.Errorf("%w: intensifier %q must be positive", ErrInvalidLexicon, word)
		}
		intensifiers[strings.ToLower(word)] = factor
	}
	lex.Intensifiers = intensifiers

	lex.negations = make(map[string]struct{}, len(lex.Negations))
	for _, word := range lex.Negations {
		lex.negations[strings.ToLower(word)] = struct{}{}
	}

	return &lex, nil
}

// LoadLexicon reads a YAML lexicon from disk.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	return ParseLexicon(data)
}

// builtinLexicon is parsed during package initialization, so a broken
// embedded file stops the process at startup.
var builtinLexicon = mustParseLexicon(defaultLexiconYAML)

// DefaultLexicon returns the built-in English lexicon.
func DefaultLexicon() *Lexicon {
	return builtinLexicon
}

func mustParseLexicon(data []byte) *Lexicon {
	lex, err := ParseLexicon(data)
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon: %v", err))
	}
	return lex
}

func (l *Lexicon) isNegation(word string) bool {
	_, ok := l.negations[word]
	return ok
}
