// Package model defines the API-facing representations of analysis
// results.
package model

// Morpheme is the serialized form of one analyzed morpheme.
//
// Surface carries the text under the active projection; RawSurface is
// always the untouched input slice. Begin and End are character
// offsets into the analyzed text.
type Morpheme struct {
	Surface         string   `json:"surface"`
	RawSurface      string   `json:"raw_surface"`
	DictionaryForm  string   `json:"dictionary_form"`
	NormalizedForm  string   `json:"normalized_form"`
	ReadingForm     string   `json:"reading_form"`
	PartOfSpeech    []string `json:"part_of_speech"`
	Begin           int      `json:"begin"`
	End             int      `json:"end"`
	IsOOV           bool     `json:"is_oov"`
	DictionaryIndex int      `json:"dictionary_index"`  // -1 for OOV
	WordID          *uint32  `json:"word_id,omitempty"` // packed id; absent for OOV
	SynonymGroupIDs []uint32 `json:"synonym_group_ids,omitempty"`
}

// POSTag is one part-of-speech tag tuple, coarse to fine.
type POSTag []string

// DictionaryInfo describes one loaded dictionary.
type DictionaryInfo struct {
	Index      int    `json:"index"` // 0 = system, 1..N = user
	Label      string `json:"label"`
	EntryCount int    `json:"entry_count"`
}
