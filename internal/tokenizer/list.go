package tokenizer

import (
	"github.com/gcbaptista/go-morph/internal/dictionary"
	"github.com/gcbaptista/go-morph/internal/errors"
	"github.com/gcbaptista/go-morph/internal/projection"
)

// node is one resolved entry of a morpheme list: the word identity, the
// rune offsets of its occurrence, and its resolved attribute record.
type node struct {
	wordID dictionary.WordID
	begin  int
	end    int
	info   dictionary.WordInfo
}

// MorphemeList is an ordered sequence of morphemes bound to one input
// text at one granularity. The list exclusively owns its resolved
// entries and input text; Morphemes are views borrowing from it.
//
// A list instance may be handed back to a later Tokenize or Split call
// to be overwritten in place, avoiding reallocation. Overwriting bumps
// the list's generation, which invalidates every Morpheme previously
// issued from it: stale views panic instead of reading clobbered data.
type MorphemeList struct {
	dicts      *dictionary.Set
	projector  projection.Projector
	text       []rune
	mode       SplitMode
	nodes      []node
	generation uint64
}

// NewMorphemeList returns an empty list suitable as an `out` argument.
func NewMorphemeList() *MorphemeList {
	return &MorphemeList{mode: SplitModeC}
}

// Size returns the number of morphemes in the list.
func (l *MorphemeList) Size() int {
	return len(l.nodes)
}

// Mode returns the granularity the list was built at.
func (l *MorphemeList) Mode() SplitMode {
	return l.mode
}

// Surface returns the whole input text the list was built over.
func (l *MorphemeList) Surface() string {
	return string(l.text)
}

// At returns the morpheme at the given index. Negative indices count
// from the end, Python style: -1 is the last morpheme. Indices outside
// [-size, size-1] yield a RangeError.
func (l *MorphemeList) At(index int) (Morpheme, error) {
	resolved := index
	if resolved < 0 {
		resolved += len(l.nodes)
	}
	if resolved < 0 || resolved >= len(l.nodes) {
		return Morpheme{}, errors.NewRangeError(index, len(l.nodes))
	}
	return Morpheme{list: l, index: resolved, gen: l.generation}, nil
}

// Morphemes returns views of every morpheme in order. The views share
// the list's lifetime and are invalidated by reuse like any other.
func (l *MorphemeList) Morphemes() []Morpheme {
	out := make([]Morpheme, len(l.nodes))
	for i := range l.nodes {
		out[i] = Morpheme{list: l, index: i, gen: l.generation}
	}
	return out
}

// overwrite replaces the list contents in place and invalidates all
// previously issued morpheme views.
func (l *MorphemeList) overwrite(dicts *dictionary.Set, projector projection.Projector,
	text []rune, mode SplitMode, nodes []node) {
	l.dicts = dicts
	l.projector = projector
	l.text = text
	l.mode = mode
	l.nodes = append(l.nodes[:0], nodes...)
	l.generation++
}
