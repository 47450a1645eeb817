package dictionary

import (
	"fmt"

	"github.com/gcbaptista/go-morph/internal/errors"
	"github.com/gcbaptista/go-morph/internal/pos"
)

// Dictionary is one loaded dictionary: an entry table keyed by local id
// plus its own part-of-speech tag table. Implementations must be safe
// for concurrent reads once loading has finished.
type Dictionary interface {
	// Label names the dictionary for diagnostics and API output.
	Label() string

	// EntryCount returns the number of entries in the dictionary.
	EntryCount() int

	// WordInfo returns the attribute record of the entry with the given
	// local id. The record's POSID refers to the dictionary's own tag
	// table and its text form fields may be empty.
	WordInfo(word uint32) (WordInfo, error)

	// PartOfSpeechTable returns the dictionary's tag table.
	PartOfSpeechTable() *pos.Table
}

// Set is the ordered collection of loaded dictionaries: the system
// dictionary at index 0 followed by up to MaxUserDictionaries user
// dictionaries in load order. The order is fixed at construction.
//
// The set owns a merged tag table: system tags first, then any user
// dictionary tags not already present. Records resolved through the set
// carry merged tag ids.
type Set struct {
	dicts []Dictionary
	table *pos.Table
}

// NewSet creates a dictionary set from a system dictionary and user
// dictionaries in load order.
func NewSet(system Dictionary, users ...Dictionary) (*Set, error) {
	if system == nil {
		return nil, errors.NewConfigurationError("dictionaries",
			"a system dictionary is required")
	}
	if len(users) > MaxUserDictionaries {
		return nil, errors.NewConfigurationError("dictionaries",
			fmt.Sprintf("%d user dictionaries exceed the maximum of %d",
				len(users), MaxUserDictionaries))
	}
	dicts := make([]Dictionary, 0, len(users)+1)
	dicts = append(dicts, system)
	dicts = append(dicts, users...)

	table := pos.NewTable(nil)
	for _, d := range dicts {
		for _, tag := range d.PartOfSpeechTable().Tags() {
			table.Intern(tag)
		}
	}
	return &Set{dicts: dicts, table: table}, nil
}

// Len returns the number of loaded dictionaries.
func (s *Set) Len() int {
	return len(s.dicts)
}

// Dictionaries returns the loaded dictionaries in load order.
func (s *Set) Dictionaries() []Dictionary {
	out := make([]Dictionary, len(s.dicts))
	copy(out, s.dicts)
	return out
}

// PartOfSpeechTable returns the merged tag table of the set.
func (s *Set) PartOfSpeechTable() *pos.Table {
	return s.table
}

// WordInfo resolves a word id to a fully resolved attribute record:
// POSID remapped to the merged tag table, dictionary form resolved
// through its reference, and empty text forms backed by the surface.
//
// Synthetic ids do not resolve; their records travel with the analysis
// that created them.
func (s *Set) WordInfo(id WordID) (WordInfo, error) {
	if id.IsOOV() {
		return WordInfo{}, errors.NewLookupError(id.String(),
			"synthetic ids resolve only within their analysis")
	}
	dic := id.Dictionary()
	if dic >= len(s.dicts) {
		return WordInfo{}, errors.NewLookupError(id.String(),
			fmt.Sprintf("dictionary %d is not loaded", dic))
	}
	info, err := s.dicts[dic].WordInfo(id.Word())
	if err != nil {
		return WordInfo{}, err
	}
	return s.resolve(dic, info)
}

func (s *Set) resolve(dic int, info WordInfo) (WordInfo, error) {
	localTag, err := s.dicts[dic].PartOfSpeechTable().At(info.POSID)
	if err != nil {
		return WordInfo{}, errors.NewLookupError(
			fmt.Sprintf("(%d, ?)", dic),
			fmt.Sprintf("tag id %d missing from dictionary tag table", info.POSID))
	}
	info.POSID = s.table.Intern(localTag)

	if info.DictionaryFormWordID != nil {
		ref := *info.DictionaryFormWordID
		refDic := ref.Dictionary()
		if ref.IsOOV() || refDic >= len(s.dicts) {
			return WordInfo{}, errors.NewLookupError(ref.String(),
				"broken dictionary form reference")
		}
		refInfo, err := s.dicts[refDic].WordInfo(ref.Word())
		if err != nil {
			return WordInfo{}, errors.NewLookupError(ref.String(),
				"broken dictionary form reference")
		}
		info.DictionaryForm = refInfo.Surface
	}
	if info.DictionaryForm == "" {
		info.DictionaryForm = info.Surface
	}
	if info.NormalizedForm == "" {
		info.NormalizedForm = info.Surface
	}
	if info.ReadingForm == "" {
		info.ReadingForm = info.Surface
	}
	return info, nil
}
