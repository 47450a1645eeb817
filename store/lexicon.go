// Package store provides the in-memory lexicon used for user
// dictionaries and tests: an entry table keyed by local id plus a
// surface lookup map.
package store

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/gcbaptista/go-morph/internal/dictionary"
	"github.com/gcbaptista/go-morph/internal/errors"
	"github.com/gcbaptista/go-morph/internal/pos"
)

// Lexicon is an in-memory dictionary. Entries are appended while the
// lexicon is being loaded; after that it is read-only and safe to share
// across concurrently operating tokenizers.
type Lexicon struct {
	Mu           sync.RWMutex
	Name         string
	Entries      []dictionary.WordInfo
	SurfaceToIDs map[string][]uint32 // surface text to local entry ids
	Table        *pos.Table
}

// NewLexicon creates an empty lexicon with the given label.
func NewLexicon(name string) *Lexicon {
	return &Lexicon{
		Name:         name,
		SurfaceToIDs: make(map[string][]uint32),
		Table:        pos.NewTable(nil),
	}
}

// AddEntry appends an entry with the given tag and returns its local id.
// HeadWordLength is derived from the surface when left zero.
func (l *Lexicon) AddEntry(info dictionary.WordInfo, tag pos.POS) (uint32, error) {
	l.Mu.Lock()
	defer l.Mu.Unlock()

	if len(l.Entries) > dictionary.MaxLocalID {
		return 0, errors.NewConfigurationError("lexicon",
			"entry table is full")
	}
	if info.Surface == "" {
		return 0, errors.NewConfigurationError("lexicon",
			"entry surface must not be empty")
	}
	if info.HeadWordLength == 0 {
		info.HeadWordLength = len(info.Surface)
	}
	info.POSID = l.Table.Intern(tag)

	id := uint32(len(l.Entries))
	l.Entries = append(l.Entries, info)
	l.SurfaceToIDs[info.Surface] = append(l.SurfaceToIDs[info.Surface], id)
	return id, nil
}

// Label implements dictionary.Dictionary.
func (l *Lexicon) Label() string {
	return l.Name
}

// EntryCount implements dictionary.Dictionary.
func (l *Lexicon) EntryCount() int {
	l.Mu.RLock()
	defer l.Mu.RUnlock()
	return len(l.Entries)
}

// WordInfo implements dictionary.Dictionary.
func (l *Lexicon) WordInfo(word uint32) (dictionary.WordInfo, error) {
	l.Mu.RLock()
	defer l.Mu.RUnlock()
	if int(word) >= len(l.Entries) {
		return dictionary.WordInfo{}, errors.NewLookupError(
			fmt.Sprintf("(?, %d)", word),
			"no such entry in dictionary '"+l.Name+"'")
	}
	return l.Entries[word], nil
}

// PartOfSpeechTable implements dictionary.Dictionary.
func (l *Lexicon) PartOfSpeechTable() *pos.Table {
	return l.Table
}

// LookupSurface returns the local ids of all entries with the given
// surface, in insertion order.
func (l *Lexicon) LookupSurface(surface string) []uint32 {
	l.Mu.RLock()
	defer l.Mu.RUnlock()
	ids := l.SurfaceToIDs[surface]
	out := make([]uint32, len(ids))
	copy(out, ids)
	return out
}

// MaxSurfaceRunes returns the rune length of the longest surface stored.
func (l *Lexicon) MaxSurfaceRunes() int {
	l.Mu.RLock()
	defer l.Mu.RUnlock()
	longest := 0
	for surface := range l.SurfaceToIDs {
		if n := utf8.RuneCountInString(surface); n > longest {
			longest = n
		}
	}
	return longest
}
