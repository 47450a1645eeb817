// Package services defines the interfaces and data transfer types the
// API layer consumes.
package services

import (
	"github.com/gcbaptista/go-morph/model"
)

// AnalysisQuery is a single analysis request.
type AnalysisQuery struct {
	Text string `json:"text"`

	// Mode selects the granularity: "A", "B", or "C". Empty means the
	// configured default.
	Mode string `json:"mode,omitempty"`

	// Projection overrides the configured surface projection for this
	// request only. Empty means the configured default.
	Projection string `json:"projection,omitempty"`
}

// AnalysisResult is the response to one analysis request.
type AnalysisResult struct {
	Morphemes []model.Morpheme `json:"morphemes"`
	Text      string           `json:"text"`
	Mode      string           `json:"mode"`
	Took      int64            `json:"took"`       // milliseconds
	RequestID string           `json:"request_id"` // unique UUID for this analysis
}

// MorphologicalAnalyzer is the service surface of the analysis engine.
type MorphologicalAnalyzer interface {
	// Analyze tokenizes the query text and returns the morphemes.
	Analyze(query AnalysisQuery) (*AnalysisResult, error)

	// PartOfSpeechTags returns the merged tag table in id order.
	PartOfSpeechTags() []model.POSTag

	// Dictionaries describes the loaded dictionaries in load order.
	Dictionaries() []model.DictionaryInfo
}
