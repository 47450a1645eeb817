// Package index provides the surface lookup index used by the bundled
// longest-match analyzer.
package index

import (
	"sync"
	"unicode/utf8"

	"github.com/gcbaptista/go-morph/internal/dictionary"
)

// SurfaceIndex maps an entry surface to the word ids carrying it,
// across every loaded dictionary. Candidates for one surface keep
// insertion order, so system dictionary entries come before user
// dictionary entries when dictionaries are indexed in load order.
type SurfaceIndex struct {
	Mu       sync.RWMutex
	Index    map[string][]dictionary.WordID
	maxRunes int
}

// NewSurfaceIndex creates an empty surface index.
func NewSurfaceIndex() *SurfaceIndex {
	return &SurfaceIndex{Index: make(map[string][]dictionary.WordID)}
}

// Add registers a word id under its surface.
func (si *SurfaceIndex) Add(surface string, id dictionary.WordID) {
	if surface == "" {
		return
	}
	si.Mu.Lock()
	defer si.Mu.Unlock()
	si.Index[surface] = append(si.Index[surface], id)
	if n := utf8.RuneCountInString(surface); n > si.maxRunes {
		si.maxRunes = n
	}
}

// Lookup returns the word ids registered for an exact surface.
func (si *SurfaceIndex) Lookup(surface string) []dictionary.WordID {
	si.Mu.RLock()
	defer si.Mu.RUnlock()
	ids := si.Index[surface]
	out := make([]dictionary.WordID, len(ids))
	copy(out, ids)
	return out
}

// LongestMatch finds the longest indexed surface starting at position
// `at` of the rune slice. It returns the match length in runes and the
// candidate word ids, or (0, nil) when nothing matches.
func (si *SurfaceIndex) LongestMatch(runes []rune, at int) (int, []dictionary.WordID) {
	si.Mu.RLock()
	defer si.Mu.RUnlock()

	limit := len(runes) - at
	if limit > si.maxRunes {
		limit = si.maxRunes
	}
	for n := limit; n > 0; n-- {
		ids := si.Index[string(runes[at:at+n])]
		if len(ids) > 0 {
			out := make([]dictionary.WordID, len(ids))
			copy(out, ids)
			return n, out
		}
	}
	return 0, nil
}

// MaxSurfaceRunes returns the rune length of the longest indexed surface.
func (si *SurfaceIndex) MaxSurfaceRunes() int {
	si.Mu.RLock()
	defer si.Mu.RUnlock()
	return si.maxRunes
}
