package engine

import (
	"github.com/gcbaptista/go-morph/index"
	"github.com/gcbaptista/go-morph/internal/dictionary"
	"github.com/gcbaptista/go-morph/internal/pos"
	"github.com/gcbaptista/go-morph/internal/tokenizer"
)

// defaultOOVTag classifies text no loaded dictionary knows.
var defaultOOVTag = pos.POS{"名詞", "普通名詞", "一般", "*", "*", "*"}

// LongestMatchAnalyzer is the bundled reference analyzer: greedy
// longest-match segmentation over the loaded dictionaries, with runs of
// unknown text emitted as synthetic out-of-vocabulary entries. It
// stands in for an external lattice engine behind the same interface.
type LongestMatchAnalyzer struct {
	dicts  *dictionary.Set
	idx    *index.SurfaceIndex
	oovTag pos.POS
}

// NewLongestMatchAnalyzer indexes every entry surface of the set's
// dictionaries, in load order, and returns the analyzer.
func NewLongestMatchAnalyzer(dicts *dictionary.Set) (*LongestMatchAnalyzer, error) {
	idx := index.NewSurfaceIndex()
	for dic, d := range dicts.Dictionaries() {
		count := d.EntryCount()
		for word := 0; word < count; word++ {
			info, err := d.WordInfo(uint32(word))
			if err != nil {
				return nil, err
			}
			id, err := dictionary.NewWordID(dic, uint32(word))
			if err != nil {
				return nil, err
			}
			idx.Add(info.Surface, id)
		}
	}
	return &LongestMatchAnalyzer{dicts: dicts, idx: idx, oovTag: defaultOOVTag}, nil
}

// Analyze implements tokenizer.Analyzer.
func (a *LongestMatchAnalyzer) Analyze(text string, mode tokenizer.SplitMode) ([]tokenizer.Segment, error) {
	runes := []rune(text)
	var segments []tokenizer.Segment

	at := 0
	for at < len(runes) {
		n, ids := a.idx.LongestMatch(runes, at)
		if n == 0 {
			seg, consumed := a.oovSegment(runes, at)
			segments = append(segments, seg)
			at += consumed
			continue
		}
		seg := tokenizer.Segment{WordID: ids[0], Begin: at, End: at + n}
		expanded, err := a.expand(seg, mode)
		if err != nil {
			return nil, err
		}
		segments = append(segments, expanded...)
		at += n
	}
	return segments, nil
}

// oovSegment consumes the maximal run of runes that start no dictionary
// entry and wraps it as one synthetic entry.
func (a *LongestMatchAnalyzer) oovSegment(runes []rune, at int) (tokenizer.Segment, int) {
	end := at + 1
	for end < len(runes) {
		if n, _ := a.idx.LongestMatch(runes, end); n > 0 {
			break
		}
		end++
	}
	surface := string(runes[at:end])
	info := &dictionary.WordInfo{
		Surface:        surface,
		HeadWordLength: len(surface),
	}
	return tokenizer.Segment{
		WordID: dictionary.OOVWordID(0),
		Begin:  at,
		End:    end,
		Info:   info,
		Tag:    a.oovTag,
	}, end - at
}

// expand rewrites a top-level match into the requested granularity by
// walking the entry's unit splits, mirroring the split hierarchy rules.
func (a *LongestMatchAnalyzer) expand(seg tokenizer.Segment, mode tokenizer.SplitMode) ([]tokenizer.Segment, error) {
	if mode == tokenizer.SplitModeC {
		return []tokenizer.Segment{seg}, nil
	}
	info, err := a.dicts.WordInfo(seg.WordID)
	if err != nil {
		return nil, err
	}
	units := info.AUnitSplit
	if mode == tokenizer.SplitModeB && len(info.BUnitSplit) > 1 {
		units = info.BUnitSplit
	}
	if len(units) <= 1 {
		return []tokenizer.Segment{seg}, nil
	}

	out := make([]tokenizer.Segment, 0, len(units))
	begin := seg.Begin
	for i, id := range units {
		childInfo, err := a.dicts.WordInfo(id)
		if err != nil {
			return nil, err
		}
		end := begin + len([]rune(childInfo.Surface))
		if i == len(units)-1 {
			end = seg.End
		}
		out = append(out, tokenizer.Segment{WordID: id, Begin: begin, End: end})
		begin = end
	}
	return out, nil
}
