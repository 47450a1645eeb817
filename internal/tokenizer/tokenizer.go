package tokenizer

import (
	"fmt"

	"github.com/gcbaptista/go-morph/internal/dictionary"
	"github.com/gcbaptista/go-morph/internal/errors"
	"github.com/gcbaptista/go-morph/internal/pos"
	"github.com/gcbaptista/go-morph/internal/projection"
)

// Segment is one item of an analyzer's raw output: a word identity and
// the rune offsets of its occurrence in the input.
//
// For out-of-vocabulary text the analyzer synthesizes the entry itself:
// Info carries the attribute record and Tag the part-of-speech tuple,
// since a synthetic id resolves through no dictionary.
type Segment struct {
	WordID dictionary.WordID
	Begin  int
	End    int

	Info *dictionary.WordInfo
	Tag  pos.POS
}

// Analyzer is the external segmentation collaborator: given input text
// and a granularity it returns an ordered, contiguous sequence of
// lexical entry references. Lattice construction and path search happen
// behind this interface; the view layer never sees them.
type Analyzer interface {
	Analyze(text string, mode SplitMode) ([]Segment, error)
}

// Tokenizer turns input text into morpheme lists: it delegates
// segmentation to the analyzer, resolves every raw entry reference
// through the dictionary set, and binds the configured projection.
type Tokenizer struct {
	analyzer  Analyzer
	dicts     *dictionary.Set
	projector projection.Projector
}

// New creates a tokenizer. A nil projector emits raw surfaces.
func New(analyzer Analyzer, dicts *dictionary.Set, projector projection.Projector) (*Tokenizer, error) {
	if analyzer == nil {
		return nil, errors.NewConfigurationError("tokenizer", "an analyzer is required")
	}
	if dicts == nil {
		return nil, errors.NewConfigurationError("tokenizer", "a dictionary set is required")
	}
	return &Tokenizer{analyzer: analyzer, dicts: dicts, projector: projector}, nil
}

// Dictionaries returns the dictionary set the tokenizer resolves against.
func (t *Tokenizer) Dictionaries() *dictionary.Set {
	return t.dicts
}

// Tokenize analyzes text at the given granularity and returns the
// morpheme list. When out is non-nil its storage is cleared and
// refilled, invalidating previously issued views; otherwise a new list
// is allocated. On error out is left untouched: a partial list is never
// produced.
func (t *Tokenizer) Tokenize(text string, mode SplitMode, out *MorphemeList) (*MorphemeList, error) {
	segments, err := t.analyzer.Analyze(text, mode)
	if err != nil {
		return nil, err
	}

	runes := []rune(text)
	nodes := make([]node, 0, len(segments))
	for _, seg := range segments {
		if seg.Begin < 0 || seg.End < seg.Begin || seg.End > len(runes) {
			return nil, errors.NewConfigurationError("analyzer",
				fmt.Sprintf("segment [%d, %d) outside input of length %d",
					seg.Begin, seg.End, len(runes)))
		}
		n, err := t.resolve(seg)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	if out == nil {
		out = NewMorphemeList()
	}
	out.overwrite(t.dicts, t.projector, runes, mode, nodes)
	return out, nil
}

func (t *Tokenizer) resolve(seg Segment) (node, error) {
	if seg.WordID.IsOOV() {
		if seg.Info == nil {
			return node{}, errors.NewLookupError(seg.WordID.String(),
				"synthetic segment carries no attribute record")
		}
		info := *seg.Info
		posID := t.dicts.PartOfSpeechTable().Intern(seg.Tag)
		info.POSID = posID
		if info.HeadWordLength == 0 {
			info.HeadWordLength = len(info.Surface)
		}
		if info.NormalizedForm == "" {
			info.NormalizedForm = info.Surface
		}
		if info.DictionaryForm == "" {
			info.DictionaryForm = info.Surface
		}
		if info.ReadingForm == "" {
			info.ReadingForm = info.Surface
		}
		// Synthetic entries never carry sub-structure.
		info.AUnitSplit = nil
		info.BUnitSplit = nil
		info.WordStructure = nil
		return node{
			wordID: dictionary.OOVWordID(posID),
			begin:  seg.Begin,
			end:    seg.End,
			info:   info,
		}, nil
	}

	info, err := t.dicts.WordInfo(seg.WordID)
	if err != nil {
		return node{}, err
	}
	return node{wordID: seg.WordID, begin: seg.Begin, end: seg.End, info: info}, nil
}
