// Package tokenizer provides the positioned morpheme view over analyzed
// text: morpheme lists, zero-copy morpheme views, and re-segmentation
// at finer granularities.
package tokenizer

import (
	"github.com/gcbaptista/go-morph/internal/errors"
)

// SplitMode selects one of the three segmentation granularities.
// A is the finest, C the coarsest and the default.
type SplitMode int

const (
	SplitModeA SplitMode = iota
	SplitModeB
	SplitModeC
)

// ParseSplitMode parses a mode name. The empty string means SplitModeC.
func ParseSplitMode(s string) (SplitMode, error) {
	switch s {
	case "A", "a":
		return SplitModeA, nil
	case "B", "b":
		return SplitModeB, nil
	case "C", "c", "":
		return SplitModeC, nil
	}
	return SplitModeC, errors.NewConfigurationError("mode",
		"unknown split mode '"+s+"', expected A, B, or C")
}

func (m SplitMode) String() string {
	switch m {
	case SplitModeA:
		return "A"
	case SplitModeB:
		return "B"
	case SplitModeC:
		return "C"
	}
	return "?"
}
