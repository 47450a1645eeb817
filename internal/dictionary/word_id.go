// Package dictionary models word identity and per-entry attributes
// across a set of loaded dictionaries.
package dictionary

import (
	"fmt"

	"github.com/gcbaptista/go-morph/internal/errors"
)

const (
	// MaxLocalID is the largest local entry index a dictionary may hold;
	// the packed encoding reserves 28 bits for it.
	MaxLocalID = 1<<28 - 1

	// MaxUserDictionaries is the largest number of user dictionaries a
	// set may contain. Dictionary index 0 is the system dictionary.
	MaxUserDictionaries = 14

	syntheticDic = -1
)

// WordID identifies a lexical entry: the index of its owning dictionary
// and its local index within that dictionary's entry table.
//
// A WordID is either resolved (dictionary index >= 0) or synthetic: an
// out-of-vocabulary entry materialized during analysis, which owns no
// stable local id and must never be used as a cross-dictionary
// reference. The zero value is entry 0 of the system dictionary.
type WordID struct {
	dic  int8
	word uint32
}

// NewWordID creates a resolved WordID, validating both components.
func NewWordID(dic int, word uint32) (WordID, error) {
	if dic < 0 || dic > MaxUserDictionaries {
		return WordID{}, errors.NewConfigurationError("word_id",
			fmt.Sprintf("dictionary index %d outside [0, %d]", dic, MaxUserDictionaries))
	}
	if word > MaxLocalID {
		return WordID{}, errors.NewConfigurationError("word_id",
			fmt.Sprintf("local id %d exceeds %d", word, uint32(MaxLocalID)))
	}
	return WordID{dic: int8(dic), word: word}, nil
}

// MustWordID creates a resolved WordID and panics on invalid components.
// Intended for fixtures and literals known to be valid.
func MustWordID(dic int, word uint32) WordID {
	id, err := NewWordID(dic, word)
	if err != nil {
		panic(err)
	}
	return id
}

// OOVWordID creates a synthetic WordID carrying the tag id the analyzer
// assigned to the out-of-vocabulary entry.
func OOVWordID(posID uint16) WordID {
	return WordID{dic: syntheticDic, word: uint32(posID)}
}

// Dictionary returns the owning dictionary index, or -1 for synthetic ids.
func (w WordID) Dictionary() int {
	return int(w.dic)
}

// Word returns the local entry index. For synthetic ids it carries the
// analyzer-assigned tag id instead and has no cross-reference meaning.
func (w WordID) Word() uint32 {
	return w.word
}

// IsOOV reports whether the id is synthetic.
func (w WordID) IsOOV() bool {
	return w.dic == syntheticDic
}

// IsSystem reports whether the id belongs to the system dictionary.
func (w WordID) IsSystem() bool {
	return w.dic == 0
}

// IsUser reports whether the id belongs to a user dictionary.
func (w WordID) IsUser() bool {
	return w.dic > 0
}

// Packed returns the flat integer encoding dic*2^28 + word, suitable for
// comparison and storage. Synthetic ids have no packed form.
func (w WordID) Packed() (uint32, error) {
	if w.IsOOV() {
		return 0, errors.NewConfigurationError("word_id",
			"synthetic word id has no packed form")
	}
	return uint32(w.dic)<<28 | w.word, nil
}

// UnpackWordID reverses Packed.
func UnpackWordID(raw uint32) WordID {
	return WordID{dic: int8(raw >> 28), word: raw & MaxLocalID}
}

// Less orders word ids lexicographically by (dictionary, word). The
// ordering exists for deterministic iteration only and carries no
// linguistic meaning. Synthetic ids order before all resolved ids.
func (w WordID) Less(other WordID) bool {
	if w.dic != other.dic {
		return w.dic < other.dic
	}
	return w.word < other.word
}

func (w WordID) String() string {
	return fmt.Sprintf("(%d, %d)", w.dic, w.word)
}
