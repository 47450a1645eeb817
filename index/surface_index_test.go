package index

import (
	"testing"

	"github.com/gcbaptista/go-morph/internal/dictionary"
)

func TestSurfaceIndexLookup(t *testing.T) {
	si := NewSurfaceIndex()
	si.Add("東京", dictionary.MustWordID(0, 0))
	si.Add("東京", dictionary.MustWordID(1, 5))
	si.Add("都", dictionary.MustWordID(0, 1))
	si.Add("", dictionary.MustWordID(0, 9)) // ignored

	ids := si.Lookup("東京")
	if len(ids) != 2 {
		t.Fatalf("Expected 2 candidates for 東京, got %d", len(ids))
	}
	if ids[0] != dictionary.MustWordID(0, 0) {
		t.Errorf("Candidates should keep insertion order, got %v first", ids[0])
	}

	if got := si.Lookup("京都"); len(got) != 0 {
		t.Errorf("Expected no candidates for 京都, got %v", got)
	}
	if got := si.Lookup(""); len(got) != 0 {
		t.Errorf("The empty surface should never be indexed, got %v", got)
	}
}

func TestSurfaceIndexLongestMatch(t *testing.T) {
	si := NewSurfaceIndex()
	si.Add("東京", dictionary.MustWordID(0, 0))
	si.Add("東京都", dictionary.MustWordID(0, 2))
	si.Add("都", dictionary.MustWordID(0, 1))

	runes := []rune("東京都に")

	n, ids := si.LongestMatch(runes, 0)
	if n != 3 {
		t.Fatalf("Expected the 3-rune match 東京都, got length %d", n)
	}
	if len(ids) != 1 || ids[0] != dictionary.MustWordID(0, 2) {
		t.Errorf("Unexpected candidates: %v", ids)
	}

	n, _ = si.LongestMatch(runes, 2)
	if n != 1 {
		t.Errorf("Expected the 1-rune match 都, got length %d", n)
	}

	n, ids = si.LongestMatch(runes, 3)
	if n != 0 || ids != nil {
		t.Errorf("Expected no match at に, got (%d, %v)", n, ids)
	}

	if got := si.MaxSurfaceRunes(); got != 3 {
		t.Errorf("Expected the longest surface to be 3 runes, got %d", got)
	}
}
