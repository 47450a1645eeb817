package dictionary

import (
	"errors"
	"testing"

	apperrors "github.com/gcbaptista/go-morph/internal/errors"
)

func TestNewWordID(t *testing.T) {
	tests := []struct {
		name    string
		dic     int
		word    uint32
		wantErr bool
	}{
		{name: "system dictionary", dic: 0, word: 42},
		{name: "first user dictionary", dic: 1, word: 0},
		{name: "last user dictionary", dic: MaxUserDictionaries, word: 7},
		{name: "largest local id", dic: 0, word: MaxLocalID},
		{name: "dictionary index too large", dic: MaxUserDictionaries + 1, word: 0, wantErr: true},
		{name: "negative dictionary index", dic: -1, word: 0, wantErr: true},
		{name: "local id too large", dic: 0, word: MaxLocalID + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewWordID(tt.dic, tt.word)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewWordID(%d, %d) should have failed", tt.dic, tt.word)
				}
				if !errors.Is(err, apperrors.ErrInvalidConfiguration) {
					t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
				}
				if errors.Is(err, apperrors.ErrOutOfRange) {
					t.Errorf("A constructor contract violation should not match ErrOutOfRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewWordID(%d, %d) failed: %v", tt.dic, tt.word, err)
			}
			if id.Dictionary() != tt.dic {
				t.Errorf("Expected dictionary %d, got %d", tt.dic, id.Dictionary())
			}
			if id.Word() != tt.word {
				t.Errorf("Expected word %d, got %d", tt.word, id.Word())
			}
		})
	}
}

func TestWordIDPackedRoundTrip(t *testing.T) {
	ids := []WordID{
		MustWordID(0, 0),
		MustWordID(0, 123456),
		MustWordID(1, 0),
		MustWordID(3, MaxLocalID),
		MustWordID(MaxUserDictionaries, 99),
	}

	for _, id := range ids {
		raw, err := id.Packed()
		if err != nil {
			t.Fatalf("Packed() failed for %v: %v", id, err)
		}
		back := UnpackWordID(raw)
		if back != id {
			t.Errorf("Round trip changed %v into %v", id, back)
		}
	}
}

func TestOOVWordID(t *testing.T) {
	id := OOVWordID(5)

	if !id.IsOOV() {
		t.Error("OOV word id should report IsOOV")
	}
	if id.IsSystem() || id.IsUser() {
		t.Error("OOV word id should be neither system nor user")
	}
	if id.Word() != 5 {
		t.Errorf("Expected pos id 5 in the word field, got %d", id.Word())
	}

	if _, err := id.Packed(); err == nil {
		t.Error("Packing an OOV word id should fail")
	}
}

func TestWordIDLess(t *testing.T) {
	ordered := []WordID{
		MustWordID(0, 0),
		MustWordID(0, 1),
		MustWordID(0, MaxLocalID),
		MustWordID(1, 0),
		MustWordID(2, 5),
	}

	for i := 0; i < len(ordered)-1; i++ {
		if !ordered[i].Less(ordered[i+1]) {
			t.Errorf("%v should sort before %v", ordered[i], ordered[i+1])
		}
		if ordered[i+1].Less(ordered[i]) {
			t.Errorf("%v should not sort before %v", ordered[i+1], ordered[i])
		}
	}

	if MustWordID(0, 7).Less(MustWordID(0, 7)) {
		t.Error("A word id should not sort before itself")
	}
}

func TestWordIDString(t *testing.T) {
	if got := MustWordID(2, 41).String(); got != "(2, 41)" {
		t.Errorf("Expected \"(2, 41)\", got %q", got)
	}
}
