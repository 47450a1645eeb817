package tokenizer

import (
	"unicode/utf8"

	"github.com/gcbaptista/go-morph/internal/dictionary"
	"github.com/gcbaptista/go-morph/internal/errors"
	"github.com/gcbaptista/go-morph/internal/pos"
)

// Morpheme is a zero-copy view of one entry of a MorphemeList. It owns
// nothing: attribute accesses delegate to the resolved record held by
// the list.
//
// A Morpheme is valid until its owning list is reused as an `out`
// argument; accessors panic on a stale view. Callers that reuse lists
// must not keep Morphemes across the reuse call.
type Morpheme struct {
	list  *MorphemeList
	index int
	gen   uint64
}

func (m Morpheme) check() {
	if m.list == nil {
		panic("morpheme view is not bound to a list")
	}
	if m.gen != m.list.generation {
		panic("morpheme view used after its list was reused")
	}
}

func (m Morpheme) node() *node {
	m.check()
	return &m.list.nodes[m.index]
}

// Index returns the position of the morpheme in its list.
func (m Morpheme) Index() int {
	m.check()
	return m.index
}

// Begin returns the character offset of the morpheme's first rune in
// the input text.
func (m Morpheme) Begin() int {
	return m.node().begin
}

// End returns the character offset just past the morpheme's last rune.
func (m Morpheme) End() int {
	return m.node().end
}

// Len returns the morpheme's length in characters.
func (m Morpheme) Len() int {
	n := m.node()
	return n.end - n.begin
}

// RawSurface returns the slice of the original input text covered by
// the morpheme, regardless of the active projection.
func (m Morpheme) RawSurface() string {
	n := m.node()
	return string(m.list.text[n.begin:n.end])
}

// Surface returns the morpheme's emitted text under the list's active
// projection. With no projection configured it equals RawSurface.
func (m Morpheme) Surface() string {
	n := m.node()
	raw := string(m.list.text[n.begin:n.end])
	if m.list.projector == nil {
		return raw
	}
	return m.list.projector.Project(&n.info, raw)
}

// WordID returns the morpheme's word identity.
func (m Morpheme) WordID() dictionary.WordID {
	return m.node().wordID
}

// DictionaryID returns the owning dictionary index, -1 for
// out-of-vocabulary morphemes.
func (m Morpheme) DictionaryID() int {
	return m.node().wordID.Dictionary()
}

// IsOOV reports whether the morpheme is an out-of-vocabulary entry
// synthesized at analysis time.
func (m Morpheme) IsOOV() bool {
	return m.node().wordID.IsOOV()
}

// PartOfSpeechID returns the morpheme's tag id in the merged tag table.
func (m Morpheme) PartOfSpeechID() uint16 {
	return m.node().info.POSID
}

// PartOfSpeech returns the morpheme's tag tuple.
func (m Morpheme) PartOfSpeech() (pos.POS, error) {
	n := m.node()
	return m.list.dicts.PartOfSpeechTable().At(n.info.POSID)
}

// NormalizedForm returns the entry's normalized writing.
func (m Morpheme) NormalizedForm() string {
	return m.node().info.NormalizedForm
}

// DictionaryForm returns the entry's uninflected writing.
func (m Morpheme) DictionaryForm() string {
	return m.node().info.DictionaryForm
}

// ReadingForm returns the entry's reading.
func (m Morpheme) ReadingForm() string {
	return m.node().info.ReadingForm
}

// SynonymGroupIDs returns the synonym groups the entry belongs to.
func (m Morpheme) SynonymGroupIDs() []uint32 {
	ids := m.node().info.SynonymGroupIDs
	out := make([]uint32, len(ids))
	copy(out, ids)
	return out
}

// WordInfo returns a copy of the morpheme's resolved attribute record.
func (m Morpheme) WordInfo() dictionary.WordInfo {
	return m.node().info
}

// Split re-segments the morpheme at a finer granularity and returns the
// resulting list. Requesting the morpheme's own granularity or a
// coarser one is the identity: a single-element list equal to the
// original. Out-of-vocabulary morphemes have no sub-structure and also
// yield themselves.
//
// When out is non-nil its contents are overwritten in place and its
// previously issued views are invalidated; otherwise a new list is
// allocated.
func (m Morpheme) Split(mode SplitMode, out *MorphemeList) (*MorphemeList, error) {
	n := m.node()
	l := m.list
	if out == l {
		return nil, errors.NewConfigurationError("split",
			"out must not be the list being split")
	}

	ids := n.splitUnits(mode, l.mode)
	resultMode := mode
	if resultMode > l.mode {
		resultMode = l.mode
	}

	if len(ids) == 0 {
		nodes := []node{*n}
		return commitSplit(l, out, resultMode, nodes), nil
	}

	nodes := make([]node, 0, len(ids))
	begin := n.begin
	for i, id := range ids {
		info, err := l.dicts.WordInfo(id)
		if err != nil {
			return nil, err
		}
		end := begin + utf8.RuneCountInString(info.Surface)
		if i == len(ids)-1 {
			// The last child absorbs any length drift so offsets stay
			// consistent with the parent's span of the input text.
			end = n.end
		}
		nodes = append(nodes, node{wordID: id, begin: begin, end: end, info: info})
		begin = end
	}
	return commitSplit(l, out, resultMode, nodes), nil
}

// splitUnits returns the word ids of the decomposition at the requested
// mode, or nil when the split is the identity.
func (n *node) splitUnits(mode, own SplitMode) []dictionary.WordID {
	if mode >= own || n.wordID.IsOOV() {
		return nil
	}
	switch mode {
	case SplitModeA:
		if len(n.info.AUnitSplit) > 1 {
			return n.info.AUnitSplit
		}
	case SplitModeB:
		if len(n.info.BUnitSplit) > 1 {
			return n.info.BUnitSplit
		}
		// An empty B decomposition means granularity B equals A for
		// this entry.
		if len(n.info.AUnitSplit) > 1 {
			return n.info.AUnitSplit
		}
	}
	return nil
}

func commitSplit(l *MorphemeList, out *MorphemeList, mode SplitMode, nodes []node) *MorphemeList {
	if out == nil {
		out = NewMorphemeList()
	}
	out.overwrite(l.dicts, l.projector, l.text, mode, nodes)
	return out
}
