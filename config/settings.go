// Package config provides configuration structures for the analyzer.
// It defines tokenizer settings such as the default granularity and the
// surface projection. Loading settings from files is out of scope; the
// structures are populated by callers.
package config

import (
	"fmt"

	"github.com/gcbaptista/go-morph/internal/projection"
	"github.com/gcbaptista/go-morph/internal/tokenizer"
)

// TokenizerSettings contains the dictionary-wide analysis defaults. A
// per-tokenizer projection override replaces (not merges with) the
// Projection configured here.
type TokenizerSettings struct {
	// Projection names what Morpheme.Surface returns: surface,
	// normalized, reading, dictionary, dictionary_and_surface,
	// normalized_and_surface, or normalized_nouns.
	Projection string `json:"projection"`

	// DefaultMode is the granularity used when a request names none:
	// "A", "B", or "C".
	DefaultMode string `json:"default_mode"`

	// MaxInputRunes caps the length of a single analyzed text.
	MaxInputRunes int `json:"max_input_runes"`
}

// ApplyDefaults applies default values to unset fields.
func (s *TokenizerSettings) ApplyDefaults() {
	if s.Projection == "" {
		s.Projection = string(projection.Surface)
	}
	if s.DefaultMode == "" {
		s.DefaultMode = "C"
	}
	if s.MaxInputRunes == 0 {
		s.MaxInputRunes = 4096
	}
}

// Validate returns a list of problems with the settings, empty when the
// settings are usable.
func (s *TokenizerSettings) Validate() []string {
	var conflicts []string

	if _, err := projection.ParseOption(s.Projection); err != nil {
		conflicts = append(conflicts, fmt.Sprintf("unknown projection '%s'", s.Projection))
	}
	if _, err := tokenizer.ParseSplitMode(s.DefaultMode); err != nil {
		conflicts = append(conflicts, fmt.Sprintf("unknown default mode '%s'", s.DefaultMode))
	}
	if s.MaxInputRunes < 0 {
		conflicts = append(conflicts, "max_input_runes cannot be negative")
	}
	return conflicts
}
