// Package kagome adapts a kagome morphological tokenizer to the
// analyzer and dictionary interfaces of this module. The adapter interns
// every entry kagome produces into an in-memory lexicon, deriving the
// finer-granularity unit splits by re-analyzing entry surfaces in
// kagome's Search and Extended modes.
package kagome

import (
	"strings"
	"sync"

	kdict "github.com/ikawaha/kagome-dict/dict"
	ktok "github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/gcbaptista/go-morph/internal/dictionary"
	"github.com/gcbaptista/go-morph/internal/pos"
	"github.com/gcbaptista/go-morph/internal/tokenizer"
	"github.com/gcbaptista/go-morph/store"
)

// unknownTag classifies text kagome reports as unknown.
var unknownTag = pos.POS{"名詞", "サ変接続", "*", "*", "*", "*"}

// Analyzer implements tokenizer.Analyzer over a kagome tokenizer. Its
// interned lexicon must be registered as the system dictionary (index 0)
// of the set the tokenizer resolves against.
type Analyzer struct {
	tok *ktok.Tokenizer

	mu      sync.Mutex
	lex     *store.Lexicon
	entries map[string]uint32 // intern key to local id
}

// New creates an adapter over a kagome dictionary.
func New(d *kdict.Dict, label string) (*Analyzer, error) {
	t, err := ktok.New(d, ktok.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		tok:     t,
		lex:     store.NewLexicon(label),
		entries: make(map[string]uint32),
	}, nil
}

// Lexicon returns the interned lexicon backing the adapter's word ids.
func (a *Analyzer) Lexicon() *store.Lexicon {
	return a.lex
}

func kagomeMode(mode tokenizer.SplitMode) ktok.TokenizeMode {
	switch mode {
	case tokenizer.SplitModeA:
		return ktok.Extended
	case tokenizer.SplitModeB:
		return ktok.Search
	default:
		return ktok.Normal
	}
}

// Analyze implements tokenizer.Analyzer.
func (a *Analyzer) Analyze(text string, mode tokenizer.SplitMode) ([]tokenizer.Segment, error) {
	tokens := a.tok.Analyze(text, kagomeMode(mode))
	segments := make([]tokenizer.Segment, 0, len(tokens))
	for _, t := range tokens {
		if t.Class == ktok.UNKNOWN {
			segments = append(segments, a.oovSegment(t))
			continue
		}
		id, err := a.intern(t)
		if err != nil {
			return nil, err
		}
		wordID, err := dictionary.NewWordID(0, id)
		if err != nil {
			return nil, err
		}
		segments = append(segments, tokenizer.Segment{
			WordID: wordID,
			Begin:  t.Start,
			End:    t.End,
		})
	}
	return segments, nil
}

func (a *Analyzer) oovSegment(t ktok.Token) tokenizer.Segment {
	info := &dictionary.WordInfo{
		Surface:        t.Surface,
		HeadWordLength: len(t.Surface),
	}
	return tokenizer.Segment{
		WordID: dictionary.OOVWordID(0),
		Begin:  t.Start,
		End:    t.End,
		Info:   info,
		Tag:    unknownTag,
	}
}

// intern returns the local id of the entry for a known token, adding it
// to the lexicon on first sight together with its unit splits.
func (a *Analyzer) intern(t ktok.Token) (uint32, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.internLocked(t, true)
}

func (a *Analyzer) internLocked(t ktok.Token, withSplits bool) (uint32, error) {
	key := internKey(t)
	if id, ok := a.entries[key]; ok {
		return id, nil
	}

	info := wordInfoFor(t)
	if withSplits {
		aUnits, bUnits, err := a.unitSplits(t.Surface)
		if err != nil {
			return 0, err
		}
		info.AUnitSplit = aUnits
		info.BUnitSplit = bUnits
		info.WordStructure = aUnits
	}

	id, err := a.lex.AddEntry(info, tagFor(t))
	if err != nil {
		return 0, err
	}
	a.entries[key] = id
	return id, nil
}

// unitSplits derives the A and B decompositions of a surface from
// kagome's Extended and Search segmentations of that surface. The A
// units of each B child are aligned by span so that B-granularity
// entries can be split further.
func (a *Analyzer) unitSplits(surface string) (aUnits, bUnits []dictionary.WordID, err error) {
	extended := a.tok.Analyze(surface, ktok.Extended)
	search := a.tok.Analyze(surface, ktok.Search)

	var aIDs []dictionary.WordID
	if len(extended) > 1 {
		aIDs = make([]dictionary.WordID, 0, len(extended))
		for _, child := range extended {
			id, err := a.childWordID(child, nil)
			if err != nil {
				return nil, nil, err
			}
			aIDs = append(aIDs, id)
		}
	}

	var bIDs []dictionary.WordID
	if len(search) > 1 {
		bIDs = make([]dictionary.WordID, 0, len(search))
		for _, child := range search {
			// A units covered by this B child, for its own finer split.
			var within []dictionary.WordID
			for i, ac := range extended {
				if len(aIDs) > i && ac.Start >= child.Start && ac.End <= child.End {
					within = append(within, aIDs[i])
				}
			}
			if len(within) <= 1 {
				within = nil
			}
			id, err := a.childWordID(child, within)
			if err != nil {
				return nil, nil, err
			}
			bIDs = append(bIDs, id)
		}
	}
	return aIDs, bIDs, nil
}

func (a *Analyzer) childWordID(t ktok.Token, aUnits []dictionary.WordID) (dictionary.WordID, error) {
	if t.Class == ktok.UNKNOWN {
		// Unknown children cannot be referenced by id; intern them as
		// regular entries so the split stays resolvable.
		key := internKey(t)
		if id, ok := a.entries[key]; ok {
			return dictionary.NewWordID(0, id)
		}
		info := wordInfoFor(t)
		id, err := a.lex.AddEntry(info, unknownTag)
		if err != nil {
			return dictionary.WordID{}, err
		}
		a.entries[key] = id
		return dictionary.NewWordID(0, id)
	}

	key := internKey(t)
	id, ok := a.entries[key]
	if !ok {
		info := wordInfoFor(t)
		info.AUnitSplit = aUnits
		info.WordStructure = aUnits
		var err error
		id, err = a.lex.AddEntry(info, tagFor(t))
		if err != nil {
			return dictionary.WordID{}, err
		}
		a.entries[key] = id
	}
	return dictionary.NewWordID(0, id)
}

func internKey(t ktok.Token) string {
	return t.Surface + "\x1f" + strings.Join(t.Features(), "\x1f")
}

// tagFor builds the 6-dimension tag: up to four part-of-speech levels
// plus conjugation type and conjugated form.
func tagFor(t ktok.Token) pos.POS {
	var tag pos.POS
	for i := range tag {
		tag[i] = pos.Wildcard
	}
	for i, p := range t.POS() {
		if i >= 4 {
			break
		}
		if p != "" {
			tag[i] = p
		}
	}
	if v, ok := t.InflectionalType(); ok && v != "" {
		tag[4] = v
	}
	if v, ok := t.InflectionalForm(); ok && v != "" {
		tag[5] = v
	}
	return tag
}

func wordInfoFor(t ktok.Token) dictionary.WordInfo {
	base, ok := t.BaseForm()
	if !ok {
		base = t.Surface
	}
	reading, ok := t.Reading()
	if !ok {
		reading = ""
	}
	return dictionary.WordInfo{
		Surface:        t.Surface,
		HeadWordLength: len(t.Surface),
		NormalizedForm: base,
		DictionaryForm: base,
		ReadingForm:    reading,
	}
}
