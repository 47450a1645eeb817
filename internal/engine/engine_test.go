package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-morph/config"
	"github.com/gcbaptista/go-morph/internal/engine"
	apptesting "github.com/gcbaptista/go-morph/internal/testing"
	"github.com/gcbaptista/go-morph/services"
)

func TestEngineAnalyze(t *testing.T) {
	eng := apptesting.CreateTestEngine(t, config.TokenizerSettings{})

	result, err := eng.Analyze(services.AnalysisQuery{Text: "東京都に行った"})
	require.NoError(t, err)

	assert.Equal(t, "東京都に行った", result.Text)
	assert.Equal(t, "C", result.Mode, "The default granularity is C")
	assert.NotEmpty(t, result.RequestID)
	require.Len(t, result.Morphemes, 4)

	first := result.Morphemes[0]
	assert.Equal(t, "東京都", first.Surface)
	assert.Equal(t, 0, first.Begin)
	assert.Equal(t, 3, first.End)
	assert.False(t, first.IsOOV)
	require.NotNil(t, first.WordID)
	assert.Equal(t, []string{"名詞", "固有名詞", "地名", "一般", "*", "*"}, first.PartOfSpeech)

	oov := result.Morphemes[1]
	assert.Equal(t, "に", oov.Surface)
	assert.True(t, oov.IsOOV)
	assert.Equal(t, -1, oov.DictionaryIndex)
	assert.Nil(t, oov.WordID, "Synthetic entries have no packed id")
}

func TestEngineAnalyzeModes(t *testing.T) {
	eng := apptesting.CreateTestEngine(t, config.TokenizerSettings{})

	tests := []struct {
		mode string
		want []string
	}{
		{mode: "C", want: []string{"東京都"}},
		{mode: "B", want: []string{"東京", "都"}},
		{mode: "A", want: []string{"東京", "都"}},
		{mode: "", want: []string{"東京都"}}, // default
	}

	for _, tt := range tests {
		t.Run("mode "+tt.mode, func(t *testing.T) {
			result, err := eng.Analyze(services.AnalysisQuery{Text: "東京都", Mode: tt.mode})
			require.NoError(t, err)

			surfaces := make([]string, 0, len(result.Morphemes))
			for _, m := range result.Morphemes {
				surfaces = append(surfaces, m.Surface)
			}
			assert.Equal(t, tt.want, surfaces)
		})
	}

	_, err := eng.Analyze(services.AnalysisQuery{Text: "東京都", Mode: "X"})
	require.Error(t, err, "Unknown modes are rejected")
}

func TestEngineAnalyzeProjectionOverride(t *testing.T) {
	eng := apptesting.CreateTestEngine(t, config.TokenizerSettings{})

	result, err := eng.Analyze(services.AnalysisQuery{Text: "行った", Projection: "normalized"})
	require.NoError(t, err)
	require.Len(t, result.Morphemes, 2)
	assert.Equal(t, "行く", result.Morphemes[0].Surface)
	assert.Equal(t, "行っ", result.Morphemes[0].RawSurface)

	// The override is per request; the default stays untouched.
	result, err = eng.Analyze(services.AnalysisQuery{Text: "行った"})
	require.NoError(t, err)
	assert.Equal(t, "行っ", result.Morphemes[0].Surface)

	_, err = eng.Analyze(services.AnalysisQuery{Text: "行った", Projection: "romaji"})
	require.Error(t, err, "Unknown projections are rejected")
}

func TestEngineAnalyzeLengthLimit(t *testing.T) {
	eng := apptesting.CreateTestEngine(t, config.TokenizerSettings{MaxInputRunes: 4})

	_, err := eng.Analyze(services.AnalysisQuery{Text: "東京都"})
	require.NoError(t, err)

	_, err = eng.Analyze(services.AnalysisQuery{Text: "東京都に行った"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "maximum length")
}

func TestEngineRejectsInvalidSettings(t *testing.T) {
	dicts := apptesting.CreateTestDictionarySet(t)
	analyzer, err := engine.NewLongestMatchAnalyzer(dicts)
	require.NoError(t, err)

	tests := []config.TokenizerSettings{
		{Projection: "romaji"},
		{DefaultMode: "Z"},
		{MaxInputRunes: -1},
	}
	for _, settings := range tests {
		_, err := engine.NewEngine(analyzer, dicts, settings)
		require.Error(t, err, "Settings %+v should be rejected", settings)
	}
}

func TestEngineIntrospection(t *testing.T) {
	eng := apptesting.CreateTestEngine(t, config.TokenizerSettings{})

	tags := eng.PartOfSpeechTags()
	assert.NotEmpty(t, tags)
	for _, tag := range tags {
		assert.Len(t, tag, 6, "Every tag has six dimensions")
	}

	dicts := eng.Dictionaries()
	require.Len(t, dicts, 1)
	assert.Equal(t, 0, dicts[0].Index)
	assert.Equal(t, "test-system", dicts[0].Label)
	assert.Equal(t, 6, dicts[0].EntryCount)
}
