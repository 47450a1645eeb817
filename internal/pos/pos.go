// Package pos models the part-of-speech tag table of a dictionary and
// precomputed matchers over it.
package pos

import (
	"strings"
	"sync"

	"github.com/gcbaptista/go-morph/internal/errors"
)

// Depth is the number of dimensions in a part-of-speech tag, ordered
// coarse to fine. The last two dimensions carry conjugation type and form.
const Depth = 6

// Wildcard marks a dimension that carries no information.
const Wildcard = "*"

// POS is a single part-of-speech tag: a fixed 6-element tuple of strings.
type POS [Depth]string

// String returns the tag as a comma-joined string, e.g. "名詞,固有名詞,地名,一般,*,*".
func (p POS) String() string {
	return strings.Join(p[:], ",")
}

// Partial is a partially specified tag used for declarative matcher
// construction. Elements are literals; an empty string or Wildcard
// leaves that dimension unconstrained, and dimensions past the end of
// the slice are unconstrained as well.
type Partial []string

// Matches reports whether the tag satisfies every literal dimension of
// the partial tag.
func (p Partial) Matches(tag POS) bool {
	if len(p) > Depth {
		return false
	}
	for i, want := range p {
		if want == "" || want == Wildcard {
			continue
		}
		if tag[i] != want {
			return false
		}
	}
	return true
}

// Table is an ordered tag table. Tag ids are positions in the table and
// stay stable once assigned. A table may grow while dictionaries are
// being merged or while an interning analyzer observes new tags, but
// existing entries are never changed, so concurrent readers only need
// the lock for consistent sizing.
type Table struct {
	mu   sync.RWMutex
	tags []POS
	ids  map[POS]uint16
}

// NewTable creates a tag table from an ordered list of tags.
func NewTable(tags []POS) *Table {
	t := &Table{
		tags: make([]POS, 0, len(tags)),
		ids:  make(map[POS]uint16, len(tags)),
	}
	for _, tag := range tags {
		t.Intern(tag)
	}
	return t
}

// Size returns the number of tags in the table.
func (t *Table) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.tags)
}

// At returns the tag with the given id.
func (t *Table) At(id uint16) (POS, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(id) >= len(t.tags) {
		return POS{}, errors.NewRangeError(int(id), len(t.tags))
	}
	return t.tags[id], nil
}

// ID returns the id of the given tag, if present.
func (t *Table) ID(tag POS) (uint16, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.ids[tag]
	return id, ok
}

// Intern returns the id of the tag, appending it to the table when it
// has not been seen before.
func (t *Table) Intern(tag POS) uint16 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[tag]; ok {
		return id
	}
	id := uint16(len(t.tags))
	t.tags = append(t.tags, tag)
	t.ids[tag] = id
	return id
}

// Tags returns a copy of the table contents in id order.
func (t *Table) Tags() []POS {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]POS, len(t.tags))
	copy(out, t.tags)
	return out
}
