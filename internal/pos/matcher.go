package pos

import (
	"fmt"
	"sort"

	"github.com/gcbaptista/go-morph/internal/errors"
)

// Matcher is an immutable, precomputed predicate over a tag table: the
// set of tag ids for which some construction-time condition held.
// Membership checks never re-evaluate the original condition.
//
// A matcher remembers the table size it was built against; Complement
// is taken relative to that universe.
type Matcher struct {
	table    *Table
	ids      map[uint16]struct{}
	sorted   []uint16
	universe int
}

func newMatcher(table *Table, ids []uint16, universe int) *Matcher {
	set := make(map[uint16]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	sorted := make([]uint16, 0, len(set))
	for id := range set {
		sorted = append(sorted, id)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &Matcher{table: table, ids: set, sorted: sorted, universe: universe}
}

// NewMatcher creates a matcher over an explicit id set.
func NewMatcher(table *Table, ids []uint16) *Matcher {
	return newMatcher(table, ids, table.Size())
}

// MatcherFromPredicate builds a matcher by evaluating the predicate
// exactly once for every tag in the table.
func MatcherFromPredicate(table *Table, pred func(POS) bool) *Matcher {
	tags := table.Tags()
	var ids []uint16
	for id, tag := range tags {
		if pred(tag) {
			ids = append(ids, uint16(id))
		}
	}
	return newMatcher(table, ids, len(tags))
}

// MatcherFromPartials builds a matcher from a sequence of partial tags.
// A tag matches when it satisfies any of the partial tags (OR across the
// sequence, AND across the dimensions of one partial tag). A partial tag
// that matches no table entry is a configuration error.
func MatcherFromPartials(table *Table, partials []Partial) (*Matcher, error) {
	tags := table.Tags()
	var ids []uint16
	for _, p := range partials {
		found := false
		for id, tag := range tags {
			if p.Matches(tag) {
				ids = append(ids, uint16(id))
				found = true
			}
		}
		if !found {
			return nil, errors.NewConfigurationError("pos",
				fmt.Sprintf("partial tag %v did not match any table entry", []string(p)))
		}
	}
	return newMatcher(table, ids, len(tags)), nil
}

// MatchesID reports whether the tag id is in the matched set.
func (m *Matcher) MatchesID(id uint16) bool {
	_, ok := m.ids[id]
	return ok
}

// Size returns the number of matched tag ids.
func (m *Matcher) Size() int {
	return len(m.sorted)
}

// IDs returns the matched tag ids in ascending order.
func (m *Matcher) IDs() []uint16 {
	out := make([]uint16, len(m.sorted))
	copy(out, m.sorted)
	return out
}

// Tags returns the matched tags in ascending id order.
func (m *Matcher) Tags() []POS {
	out := make([]POS, 0, len(m.sorted))
	for _, id := range m.sorted {
		tag, err := m.table.At(id)
		if err != nil {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// Table returns the tag table this matcher was built against.
func (m *Matcher) Table() *Table {
	return m.table
}

func (m *Matcher) String() string {
	return fmt.Sprintf("Matcher(%d pos)", len(m.sorted))
}

func (m *Matcher) compatible(other *Matcher) error {
	if m.table != other.table {
		return errors.NewConfigurationError("pos",
			"cannot combine matchers built against different tag tables")
	}
	return nil
}

// Union returns a matcher over the ids matched by either matcher.
func (m *Matcher) Union(other *Matcher) (*Matcher, error) {
	if err := m.compatible(other); err != nil {
		return nil, err
	}
	ids := make([]uint16, 0, len(m.sorted)+len(other.sorted))
	ids = append(ids, m.sorted...)
	ids = append(ids, other.sorted...)
	universe := max(m.universe, other.universe)
	return newMatcher(m.table, ids, universe), nil
}

// Intersection returns a matcher over the ids matched by both matchers.
func (m *Matcher) Intersection(other *Matcher) (*Matcher, error) {
	if err := m.compatible(other); err != nil {
		return nil, err
	}
	var ids []uint16
	for _, id := range m.sorted {
		if other.MatchesID(id) {
			ids = append(ids, id)
		}
	}
	universe := max(m.universe, other.universe)
	return newMatcher(m.table, ids, universe), nil
}

// Difference returns a matcher over the ids matched by this matcher but
// not the other.
func (m *Matcher) Difference(other *Matcher) (*Matcher, error) {
	if err := m.compatible(other); err != nil {
		return nil, err
	}
	var ids []uint16
	for _, id := range m.sorted {
		if !other.MatchesID(id) {
			ids = append(ids, id)
		}
	}
	universe := max(m.universe, other.universe)
	return newMatcher(m.table, ids, universe), nil
}

// Complement returns a matcher over every id of the tag table, as it was
// when this matcher was built, that this matcher does not match.
func (m *Matcher) Complement() *Matcher {
	var ids []uint16
	for id := 0; id < m.universe; id++ {
		if !m.MatchesID(uint16(id)) {
			ids = append(ids, uint16(id))
		}
	}
	return newMatcher(m.table, ids, m.universe)
}
