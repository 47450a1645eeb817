package dictionary

// WordInfo is the immutable attribute record of one lexical entry.
//
// A WordInfo returned by Set.WordInfo is fully resolved: the text form
// fields are filled (falling back to Surface where the dictionary left
// them empty) and POSID refers to the set's merged tag table. Records
// obtained straight from a single dictionary may still carry empty
// fields and a dictionary-local POSID.
type WordInfo struct {
	// Surface is the canonical entry text, distinct from any particular
	// occurrence's slice of the input.
	Surface string

	// HeadWordLength is the UTF-8 byte length of Surface.
	HeadWordLength int

	// POSID indexes the part-of-speech tag table.
	POSID uint16

	NormalizedForm string
	ReadingForm    string

	// DictionaryFormWordID references the entry holding this entry's
	// dictionary form. Nil means the entry is its own dictionary form.
	DictionaryFormWordID *WordID
	DictionaryForm       string

	// AUnitSplit and BUnitSplit decompose the entry at the two finer
	// granularities; empty when the entry is atomic at that granularity.
	AUnitSplit []WordID
	BUnitSplit []WordID

	// WordStructure lists the entry's internal constituents. It usually
	// mirrors AUnitSplit but may differ for irregular entries.
	WordStructure []WordID

	SynonymGroupIDs []uint32
}
