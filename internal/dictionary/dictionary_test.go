package dictionary

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/gcbaptista/go-morph/internal/errors"
	"github.com/gcbaptista/go-morph/internal/pos"
)

// fakeDict is a minimal in-memory Dictionary for set tests.
type fakeDict struct {
	label   string
	entries []WordInfo
	table   *pos.Table
}

func newFakeDict(label string) *fakeDict {
	return &fakeDict{label: label, table: pos.NewTable(nil)}
}

func (d *fakeDict) add(info WordInfo, tag pos.POS) uint32 {
	info.POSID = d.table.Intern(tag)
	if info.HeadWordLength == 0 {
		info.HeadWordLength = len(info.Surface)
	}
	d.entries = append(d.entries, info)
	return uint32(len(d.entries) - 1)
}

func (d *fakeDict) Label() string   { return d.label }
func (d *fakeDict) EntryCount() int { return len(d.entries) }

func (d *fakeDict) WordInfo(word uint32) (WordInfo, error) {
	if int(word) >= len(d.entries) {
		return WordInfo{}, apperrors.NewLookupError(
			fmt.Sprintf("(?, %d)", word), "no such entry")
	}
	return d.entries[word], nil
}

func (d *fakeDict) PartOfSpeechTable() *pos.Table { return d.table }

var (
	nounTag = pos.POS{"名詞", "普通名詞", "一般", "*", "*", "*"}
	verbTag = pos.POS{"動詞", "一般", "*", "*", "五段-カ行", "連用形-促音便"}
)

func TestNewSetValidation(t *testing.T) {
	if _, err := NewSet(nil); err == nil {
		t.Error("NewSet should require a system dictionary")
	}

	users := make([]Dictionary, MaxUserDictionaries+1)
	for i := range users {
		users[i] = newFakeDict(fmt.Sprintf("user%d", i))
	}
	if _, err := NewSet(newFakeDict("system"), users...); err == nil {
		t.Errorf("NewSet should reject %d user dictionaries", len(users))
	}
	if _, err := NewSet(newFakeDict("system"), users[:MaxUserDictionaries]...); err != nil {
		t.Errorf("NewSet should accept %d user dictionaries: %v", MaxUserDictionaries, err)
	}
}

func TestSetMergesTagTables(t *testing.T) {
	system := newFakeDict("system")
	system.add(WordInfo{Surface: "木"}, nounTag)

	user := newFakeDict("user")
	user.add(WordInfo{Surface: "木"}, nounTag) // same tag, different table
	user.add(WordInfo{Surface: "行っ"}, verbTag)

	set, err := NewSet(system, user)
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}

	// The shared noun tag must appear once, the verb tag once.
	if got := set.PartOfSpeechTable().Size(); got != 2 {
		t.Fatalf("Expected 2 merged tags, got %d", got)
	}

	sysInfo, err := set.WordInfo(MustWordID(0, 0))
	if err != nil {
		t.Fatalf("WordInfo failed for the system entry: %v", err)
	}
	userInfo, err := set.WordInfo(MustWordID(1, 0))
	if err != nil {
		t.Fatalf("WordInfo failed for the user entry: %v", err)
	}
	if sysInfo.POSID != userInfo.POSID {
		t.Errorf("Identical tags should share a merged id: %d vs %d",
			sysInfo.POSID, userInfo.POSID)
	}

	tag, err := set.PartOfSpeechTable().At(sysInfo.POSID)
	if err != nil {
		t.Fatalf("At(%d) failed: %v", sysInfo.POSID, err)
	}
	if tag != nounTag {
		t.Errorf("Merged id %d resolves to %v, expected %v", sysInfo.POSID, tag, nounTag)
	}
}

func TestSetWordInfoResolution(t *testing.T) {
	system := newFakeDict("system")
	base := system.add(WordInfo{Surface: "行く", NormalizedForm: "行く", ReadingForm: "イク"}, verbTag)
	ref := MustWordID(0, base)
	system.add(WordInfo{
		Surface:              "行っ",
		ReadingForm:          "イッ",
		DictionaryFormWordID: &ref,
	}, verbTag)

	set, err := NewSet(system)
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}

	info, err := set.WordInfo(MustWordID(0, 1))
	if err != nil {
		t.Fatalf("WordInfo failed: %v", err)
	}
	if info.DictionaryForm != "行く" {
		t.Errorf("Dictionary form should resolve through its reference, got %q", info.DictionaryForm)
	}
	if info.NormalizedForm != "行っ" {
		t.Errorf("Empty normalized form should fall back to the surface, got %q", info.NormalizedForm)
	}
	if info.ReadingForm != "イッ" {
		t.Errorf("Reading form should be kept, got %q", info.ReadingForm)
	}
}

func TestSetWordInfoLookupFailures(t *testing.T) {
	system := newFakeDict("system")
	system.add(WordInfo{Surface: "木"}, nounTag)

	set, err := NewSet(system)
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}

	tests := []struct {
		name string
		id   WordID
	}{
		{name: "synthetic id", id: OOVWordID(0)},
		{name: "unloaded dictionary", id: MustWordID(3, 0)},
		{name: "missing entry", id: MustWordID(0, 99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := set.WordInfo(tt.id)
			if err == nil {
				t.Fatalf("WordInfo(%v) should have failed", tt.id)
			}
			if !errors.Is(err, apperrors.ErrWordNotFound) {
				t.Errorf("Expected ErrWordNotFound, got %v", err)
			}
		})
	}
}

func TestSetWordInfoBrokenDictionaryFormReference(t *testing.T) {
	system := newFakeDict("system")
	ref := MustWordID(5, 0) // dictionary 5 is not loaded
	system.add(WordInfo{Surface: "行っ", DictionaryFormWordID: &ref}, verbTag)

	set, err := NewSet(system)
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}

	if _, err := set.WordInfo(MustWordID(0, 0)); err == nil {
		t.Error("A dictionary form reference into an unloaded dictionary should fail")
	}
}
