// Package testing provides utilities and helpers for testing the analyzer.
package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-morph/config"
	"github.com/gcbaptista/go-morph/internal/dictionary"
	"github.com/gcbaptista/go-morph/internal/engine"
	"github.com/gcbaptista/go-morph/internal/pos"
	"github.com/gcbaptista/go-morph/internal/projection"
	"github.com/gcbaptista/go-morph/internal/tokenizer"
	"github.com/gcbaptista/go-morph/store"
)

// TestEntry describes one lexicon entry to load in a fixture.
type TestEntry struct {
	Info dictionary.WordInfo
	Tag  pos.POS
}

// Common tags used by the fixture lexicon.
var (
	TagProperNoun = pos.POS{"名詞", "固有名詞", "地名", "一般", "*", "*"}
	TagCommonNoun = pos.POS{"名詞", "普通名詞", "一般", "*", "*", "*"}
	TagVerb       = pos.POS{"動詞", "一般", "*", "*", "五段-カ行", "連用形-促音便"}
)

// SystemLexiconEntries returns the entries of the fixture system
// dictionary. Entry ids are their positions in the returned slice.
//
//	0 東京    1 都      2 東京都 (A units: 東京 + 都)
//	3 行っ    4 た      5 京都
func SystemLexiconEntries() []TestEntry {
	return []TestEntry{
		{
			Info: dictionary.WordInfo{
				Surface:        "東京",
				NormalizedForm: "東京",
				ReadingForm:    "トウキョウ",
			},
			Tag: TagProperNoun,
		},
		{
			Info: dictionary.WordInfo{
				Surface:        "都",
				NormalizedForm: "都",
				ReadingForm:    "ト",
			},
			Tag: TagCommonNoun,
		},
		{
			Info: dictionary.WordInfo{
				Surface:        "東京都",
				NormalizedForm: "東京都",
				ReadingForm:    "トウキョウト",
				AUnitSplit: []dictionary.WordID{
					dictionary.MustWordID(0, 0),
					dictionary.MustWordID(0, 1),
				},
				WordStructure: []dictionary.WordID{
					dictionary.MustWordID(0, 0),
					dictionary.MustWordID(0, 1),
				},
			},
			Tag: TagProperNoun,
		},
		{
			Info: dictionary.WordInfo{
				Surface:        "行っ",
				NormalizedForm: "行く",
				DictionaryForm: "行く",
				ReadingForm:    "イッ",
			},
			Tag: TagVerb,
		},
		{
			Info: dictionary.WordInfo{
				Surface:        "た",
				NormalizedForm: "た",
				ReadingForm:    "タ",
			},
			Tag: pos.POS{"助動詞", "*", "*", "*", "助動詞-タ", "終止形-一般"},
		},
		{
			Info: dictionary.WordInfo{
				Surface:        "京都",
				NormalizedForm: "京都",
				ReadingForm:    "キョウト",
			},
			Tag: TagProperNoun,
		},
	}
}

// CreateTestLexicon builds an in-memory lexicon from the given entries.
func CreateTestLexicon(t *testing.T, name string, entries []TestEntry) *store.Lexicon {
	t.Helper()

	lex := store.NewLexicon(name)
	for _, e := range entries {
		_, err := lex.AddEntry(e.Info, e.Tag)
		require.NoError(t, err, "Failed to load fixture entry %q", e.Info.Surface)
	}
	return lex
}

// CreateTestDictionarySet builds a dictionary set around the fixture
// system lexicon plus any user lexicons.
func CreateTestDictionarySet(t *testing.T, users ...dictionary.Dictionary) *dictionary.Set {
	t.Helper()

	system := CreateTestLexicon(t, "test-system", SystemLexiconEntries())
	set, err := dictionary.NewSet(system, users...)
	require.NoError(t, err, "Failed to build dictionary set")
	return set
}

// CreateTestTokenizer builds a tokenizer over the fixture dictionary
// with a longest-match analyzer and the named projection.
func CreateTestTokenizer(t *testing.T, projectionName string) *tokenizer.Tokenizer {
	t.Helper()

	dicts := CreateTestDictionarySet(t)
	analyzer, err := engine.NewLongestMatchAnalyzer(dicts)
	require.NoError(t, err, "Failed to build analyzer")

	opt, err := projection.ParseOption(projectionName)
	require.NoError(t, err, "Unknown projection %q", projectionName)
	proj, err := projection.New(opt, dicts.PartOfSpeechTable())
	require.NoError(t, err, "Failed to build projector")

	tok, err := tokenizer.New(analyzer, dicts, proj)
	require.NoError(t, err, "Failed to build tokenizer")
	return tok
}

// CreateTestEngine builds a full engine over the fixture dictionary.
func CreateTestEngine(t *testing.T, settings config.TokenizerSettings) *engine.Engine {
	t.Helper()

	dicts := CreateTestDictionarySet(t)
	analyzer, err := engine.NewLongestMatchAnalyzer(dicts)
	require.NoError(t, err, "Failed to build analyzer")

	eng, err := engine.NewEngine(analyzer, dicts, settings)
	require.NoError(t, err, "Failed to build engine")
	return eng
}

// Tokenize analyzes text with the fixture tokenizer and fails the test
// on error.
func Tokenize(t *testing.T, tok *tokenizer.Tokenizer, text string, mode tokenizer.SplitMode) *tokenizer.MorphemeList {
	t.Helper()

	list, err := tok.Tokenize(text, mode, nil)
	require.NoError(t, err, "Tokenize(%q, %v) should not fail", text, mode)
	return list
}

// AssertContiguous verifies that the morphemes of a list tile the input
// text without gaps or overlaps.
func AssertContiguous(t *testing.T, list *tokenizer.MorphemeList) {
	t.Helper()

	runes := len([]rune(list.Surface()))
	prevEnd := 0
	for _, m := range list.Morphemes() {
		assert.Equal(t, prevEnd, m.Begin(), "Morpheme %d should start where the previous one ended", m.Index())
		assert.Greater(t, m.End(), m.Begin(), "Morpheme %d should not be empty", m.Index())
		prevEnd = m.End()
	}
	assert.Equal(t, runes, prevEnd, "Morphemes should cover the whole input")
}

// Surfaces collects the projected surfaces of a list in order.
func Surfaces(list *tokenizer.MorphemeList) []string {
	out := make([]string, 0, list.Size())
	for _, m := range list.Morphemes() {
		out = append(out, m.Surface())
	}
	return out
}
