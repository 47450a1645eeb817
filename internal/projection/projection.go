// Package projection controls what text a morpheme's Surface() returns.
// A projection substitutes the emitted text only; it never changes
// morpheme boundaries, counts, or offsets.
package projection

import (
	"github.com/gcbaptista/go-morph/internal/dictionary"
	"github.com/gcbaptista/go-morph/internal/errors"
	"github.com/gcbaptista/go-morph/internal/pos"
)

// Option names a surface projection.
type Option string

const (
	// Surface emits the raw input slice; the no-op projection.
	Surface Option = "surface"

	// Normalized emits the normalized form of every morpheme.
	Normalized Option = "normalized"

	// Reading emits the reading form of every morpheme.
	Reading Option = "reading"

	// Dictionary emits the dictionary form of every morpheme.
	Dictionary Option = "dictionary"

	// DictionaryAndSurface emits the raw surface for conjugating words
	// (verbs, adjectives, auxiliary verbs) and the dictionary form for
	// everything else.
	DictionaryAndSurface Option = "dictionary_and_surface"

	// NormalizedAndSurface emits the raw surface for conjugating words
	// and the normalized form for everything else.
	NormalizedAndSurface Option = "normalized_and_surface"

	// NormalizedNouns emits the normalized form for non-conjugating
	// words (conjugation-type dimension is a wildcard) and the raw
	// surface for everything else.
	NormalizedNouns Option = "normalized_nouns"
)

// Options returns every valid option name.
func Options() []Option {
	return []Option{
		Surface, Normalized, Reading, Dictionary,
		DictionaryAndSurface, NormalizedAndSurface, NormalizedNouns,
	}
}

// ParseOption validates a projection name. The empty string means Surface.
func ParseOption(s string) (Option, error) {
	if s == "" {
		return Surface, nil
	}
	for _, opt := range Options() {
		if Option(s) == opt {
			return opt, nil
		}
	}
	return "", errors.NewConfigurationError("projection",
		"unknown projection '"+s+"'")
}

// Projector rewrites the emitted text of one morpheme. Implementations
// are stateless with respect to the morpheme stream and freely shareable.
type Projector interface {
	Project(info *dictionary.WordInfo, rawSurface string) string
}

// New builds the projector for an option against a tag table.
func New(opt Option, table *pos.Table) (Projector, error) {
	switch opt {
	case Surface:
		return surfaceProjector{}, nil
	case Normalized:
		return mapped(func(info *dictionary.WordInfo) string { return info.NormalizedForm }), nil
	case Reading:
		return mapped(func(info *dictionary.WordInfo) string { return info.ReadingForm }), nil
	case Dictionary:
		return mapped(func(info *dictionary.WordInfo) string { return info.DictionaryForm }), nil
	case DictionaryAndSurface:
		return &conditional{
			check:     newTagCheck(table, isConjugating),
			onMatch:   func(_ *dictionary.WordInfo, raw string) string { return raw },
			otherwise: func(info *dictionary.WordInfo, _ string) string { return info.DictionaryForm },
		}, nil
	case NormalizedAndSurface:
		return &conditional{
			check:     newTagCheck(table, isConjugating),
			onMatch:   func(_ *dictionary.WordInfo, raw string) string { return raw },
			otherwise: func(info *dictionary.WordInfo, _ string) string { return info.NormalizedForm },
		}, nil
	case NormalizedNouns:
		return &conditional{
			check:     newTagCheck(table, isNonConjugating),
			onMatch:   func(info *dictionary.WordInfo, _ string) string { return info.NormalizedForm },
			otherwise: func(_ *dictionary.WordInfo, raw string) string { return raw },
		}, nil
	}
	return nil, errors.NewConfigurationError("projection",
		"unknown projection '"+string(opt)+"'")
}

// isConjugating reports whether the tag belongs to a conjugating word
// class: verb, adjective, or auxiliary verb.
func isConjugating(tag pos.POS) bool {
	switch tag[0] {
	case "動詞", "形容詞", "助動詞":
		return true
	}
	return false
}

// isNonConjugating reports whether the tag carries no conjugation type.
func isNonConjugating(tag pos.POS) bool {
	return tag[pos.Depth-1] == pos.Wildcard
}

type surfaceProjector struct{}

func (surfaceProjector) Project(_ *dictionary.WordInfo, rawSurface string) string {
	return rawSurface
}

type mapped func(info *dictionary.WordInfo) string

func (f mapped) Project(info *dictionary.WordInfo, _ string) string {
	return f(info)
}

// tagCheck is a precomputed matcher over the tag table, with a live
// fallback for tag ids interned after the matcher snapshot was taken
// (interning dictionaries grow their table during analysis).
type tagCheck struct {
	table    *pos.Table
	matcher  *pos.Matcher
	pred     func(pos.POS) bool
	snapshot int
}

func newTagCheck(table *pos.Table, pred func(pos.POS) bool) *tagCheck {
	return &tagCheck{
		table:    table,
		matcher:  pos.MatcherFromPredicate(table, pred),
		pred:     pred,
		snapshot: table.Size(),
	}
}

func (c *tagCheck) matches(id uint16) bool {
	if int(id) < c.snapshot {
		return c.matcher.MatchesID(id)
	}
	tag, err := c.table.At(id)
	if err != nil {
		return false
	}
	return c.pred(tag)
}

type conditional struct {
	check     *tagCheck
	onMatch   func(info *dictionary.WordInfo, rawSurface string) string
	otherwise func(info *dictionary.WordInfo, rawSurface string) string
}

func (p *conditional) Project(info *dictionary.WordInfo, rawSurface string) string {
	if p.check.matches(info.POSID) {
		return p.onMatch(info, rawSurface)
	}
	return p.otherwise(info, rawSurface)
}
