// Package engine wires the analyzer collaborator, the dictionary set,
// and the configured projection into the service surface the API layer
// consumes.
package engine

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-morph/config"
	"github.com/gcbaptista/go-morph/internal/dictionary"
	"github.com/gcbaptista/go-morph/internal/errors"
	"github.com/gcbaptista/go-morph/internal/projection"
	"github.com/gcbaptista/go-morph/internal/tokenizer"
	"github.com/gcbaptista/go-morph/model"
	"github.com/gcbaptista/go-morph/services"
)

// Engine owns the loaded dictionaries, the default projection, and
// tokenizer creation. Dictionaries are read-only after construction, so
// one engine serves concurrent requests without locking; morpheme list
// reuse is handled with a pool.
type Engine struct {
	analyzer tokenizer.Analyzer
	dicts    *dictionary.Set
	settings config.TokenizerSettings

	defaultTokenizer *tokenizer.Tokenizer

	// lists recycles morpheme lists across requests via the `out`
	// reuse parameter of Tokenize.
	lists sync.Pool
}

// NewEngine creates an engine over an analyzer and dictionary set.
func NewEngine(analyzer tokenizer.Analyzer, dicts *dictionary.Set, settings config.TokenizerSettings) (*Engine, error) {
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return nil, errors.NewConfigurationError("settings", problems[0])
	}

	e := &Engine{
		analyzer: analyzer,
		dicts:    dicts,
		settings: settings,
	}
	e.lists.New = func() any { return tokenizer.NewMorphemeList() }

	tok, err := e.CreateTokenizer(settings.Projection)
	if err != nil {
		return nil, err
	}
	e.defaultTokenizer = tok
	return e, nil
}

// Settings returns the engine's effective settings.
func (e *Engine) Settings() config.TokenizerSettings {
	return e.settings
}

// DictionarySet returns the loaded dictionaries.
func (e *Engine) DictionarySet() *dictionary.Set {
	return e.dicts
}

// Tokenizer returns the shared tokenizer carrying the dictionary-wide
// default projection.
func (e *Engine) Tokenizer() *tokenizer.Tokenizer {
	return e.defaultTokenizer
}

// CreateTokenizer builds a tokenizer whose projection replaces the
// configured default. An empty name keeps the default projection.
func (e *Engine) CreateTokenizer(projectionName string) (*tokenizer.Tokenizer, error) {
	name := projectionName
	if name == "" {
		name = e.settings.Projection
	}
	opt, err := projection.ParseOption(name)
	if err != nil {
		return nil, err
	}
	proj, err := projection.New(opt, e.dicts.PartOfSpeechTable())
	if err != nil {
		return nil, err
	}
	return tokenizer.New(e.analyzer, e.dicts, proj)
}

// Analyze implements services.MorphologicalAnalyzer.
func (e *Engine) Analyze(query services.AnalysisQuery) (*services.AnalysisResult, error) {
	if utf8.RuneCountInString(query.Text) > e.settings.MaxInputRunes {
		return nil, errors.NewConfigurationError("text",
			"input exceeds the configured maximum length")
	}
	mode, err := tokenizer.ParseSplitMode(orDefault(query.Mode, e.settings.DefaultMode))
	if err != nil {
		return nil, err
	}
	tok := e.defaultTokenizer
	if query.Projection != "" && query.Projection != e.settings.Projection {
		tok, err = e.CreateTokenizer(query.Projection)
		if err != nil {
			return nil, err
		}
	}

	start := time.Now()
	list := e.lists.Get().(*tokenizer.MorphemeList)
	defer e.lists.Put(list)

	list, err = tok.Tokenize(query.Text, mode, list)
	if err != nil {
		return nil, err
	}

	morphemes := make([]model.Morpheme, 0, list.Size())
	for _, m := range list.Morphemes() {
		morphemes = append(morphemes, toModel(m))
	}
	return &services.AnalysisResult{
		Morphemes: morphemes,
		Text:      query.Text,
		Mode:      mode.String(),
		Took:      time.Since(start).Milliseconds(),
		RequestID: uuid.New().String(),
	}, nil
}

// PartOfSpeechTags implements services.MorphologicalAnalyzer.
func (e *Engine) PartOfSpeechTags() []model.POSTag {
	tags := e.dicts.PartOfSpeechTable().Tags()
	out := make([]model.POSTag, 0, len(tags))
	for _, tag := range tags {
		out = append(out, model.POSTag(tag[:]))
	}
	return out
}

// Dictionaries implements services.MorphologicalAnalyzer.
func (e *Engine) Dictionaries() []model.DictionaryInfo {
	dicts := e.dicts.Dictionaries()
	out := make([]model.DictionaryInfo, 0, len(dicts))
	for i, d := range dicts {
		out = append(out, model.DictionaryInfo{
			Index:      i,
			Label:      d.Label(),
			EntryCount: d.EntryCount(),
		})
	}
	return out
}

func toModel(m tokenizer.Morpheme) model.Morpheme {
	out := model.Morpheme{
		Surface:         m.Surface(),
		RawSurface:      m.RawSurface(),
		DictionaryForm:  m.DictionaryForm(),
		NormalizedForm:  m.NormalizedForm(),
		ReadingForm:     m.ReadingForm(),
		Begin:           m.Begin(),
		End:             m.End(),
		IsOOV:           m.IsOOV(),
		DictionaryIndex: m.DictionaryID(),
		SynonymGroupIDs: m.SynonymGroupIDs(),
	}
	if tag, err := m.PartOfSpeech(); err == nil {
		out.PartOfSpeech = tag[:]
	}
	if packed, err := m.WordID().Packed(); err == nil {
		out.WordID = &packed
	}
	return out
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
