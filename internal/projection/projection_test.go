package projection

import (
	"testing"

	"github.com/gcbaptista/go-morph/internal/dictionary"
	"github.com/gcbaptista/go-morph/internal/pos"
)

func projectionTable() *pos.Table {
	return pos.NewTable([]pos.POS{
		{"名詞", "固有名詞", "地名", "一般", "*", "*"},
		{"動詞", "一般", "*", "*", "五段-カ行", "連用形-促音便"},
		{"助動詞", "*", "*", "*", "助動詞-タ", "終止形-一般"},
	})
}

func projectionEntries() []dictionary.WordInfo {
	return []dictionary.WordInfo{
		{
			Surface:        "東京",
			POSID:          0,
			NormalizedForm: "東京",
			DictionaryForm: "東京",
			ReadingForm:    "トウキョウ",
		},
		{
			Surface:        "行っ",
			POSID:          1,
			NormalizedForm: "行く",
			DictionaryForm: "行く",
			ReadingForm:    "イッ",
		},
		{
			Surface:        "た",
			POSID:          2,
			NormalizedForm: "た",
			DictionaryForm: "た",
			ReadingForm:    "タ",
		},
	}
}

func TestParseOption(t *testing.T) {
	opt, err := ParseOption("")
	if err != nil {
		t.Fatalf("ParseOption(\"\") failed: %v", err)
	}
	if opt != Surface {
		t.Errorf("Empty name should mean surface, got %q", opt)
	}

	for _, name := range Options() {
		if _, err := ParseOption(string(name)); err != nil {
			t.Errorf("ParseOption(%q) failed: %v", name, err)
		}
	}

	if _, err := ParseOption("romaji"); err == nil {
		t.Error("ParseOption should reject unknown names")
	}
}

func TestProjections(t *testing.T) {
	table := projectionTable()
	entries := projectionEntries()

	tests := []struct {
		option Option
		want   []string // one projected surface per entry
	}{
		{option: Surface, want: []string{"東京", "行っ", "た"}},
		{option: Normalized, want: []string{"東京", "行く", "た"}},
		{option: Reading, want: []string{"トウキョウ", "イッ", "タ"}},
		{option: Dictionary, want: []string{"東京", "行く", "た"}},
		// Conjugating words keep the raw surface, everything else the
		// dictionary or normalized form.
		{option: DictionaryAndSurface, want: []string{"東京", "行っ", "た"}},
		{option: NormalizedAndSurface, want: []string{"東京", "行っ", "た"}},
		// Only words without a conjugation form are normalized.
		{option: NormalizedNouns, want: []string{"東京", "行っ", "た"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.option), func(t *testing.T) {
			p, err := New(tt.option, table)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", tt.option, err)
			}
			for i := range entries {
				got := p.Project(&entries[i], entries[i].Surface)
				if got != tt.want[i] {
					t.Errorf("Entry %q projected to %q, expected %q",
						entries[i].Surface, got, tt.want[i])
				}
			}
		})
	}
}

func TestProjectionNeverChangesRawSurfaceArgument(t *testing.T) {
	table := projectionTable()
	info := projectionEntries()[1] // conjugating verb

	p, err := New(DictionaryAndSurface, table)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// The raw surface comes from the analyzed text, not the entry.
	if got := p.Project(&info, "イッ"); got != "イッ" {
		t.Errorf("Conjugating words should emit the raw surface, got %q", got)
	}
}

func TestProjectionOfLateInternedTag(t *testing.T) {
	table := projectionTable()

	p, err := New(NormalizedAndSurface, table)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Tags interned after the projector was built must still be
	// classified correctly.
	late := table.Intern(pos.POS{"形容詞", "一般", "*", "*", "形容詞", "終止形-一般"})
	info := dictionary.WordInfo{
		Surface:        "赤く",
		POSID:          late,
		NormalizedForm: "赤い",
		DictionaryForm: "赤い",
	}
	if got := p.Project(&info, "赤く"); got != "赤く" {
		t.Errorf("A late-interned adjective should keep the raw surface, got %q", got)
	}

	lateNoun := table.Intern(pos.POS{"名詞", "数詞", "*", "*", "*", "*"})
	numInfo := dictionary.WordInfo{
		Surface:        "３",
		POSID:          lateNoun,
		NormalizedForm: "3",
	}
	if got := p.Project(&numInfo, "３"); got != "3" {
		t.Errorf("A late-interned noun should be normalized, got %q", got)
	}
}
