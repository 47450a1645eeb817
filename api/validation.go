package api

import (
	"fmt"
	"unicode/utf8"

	"github.com/gcbaptista/go-morph/internal/projection"
	"github.com/gcbaptista/go-morph/internal/tokenizer"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// ValidationResult collects validation failures for a request
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError records a validation failure
func (vr *ValidationResult) AddError(field, message, value string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	})
}

// AnalyzeRequest is the request body for the analyze endpoint.
type AnalyzeRequest struct {
	Text       string `json:"text"`
	Mode       string `json:"mode,omitempty"`
	Projection string `json:"projection,omitempty"`
}

// ValidateAnalyzeRequest validates an analysis request against the
// configured input limits and the known mode and projection names.
func ValidateAnalyzeRequest(req *AnalyzeRequest, maxInputRunes int) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req.Text == "" {
		result.AddError("text", "text cannot be empty", "")
	} else if !utf8.ValidString(req.Text) {
		result.AddError("text", "text must be valid UTF-8", "")
	} else if n := utf8.RuneCountInString(req.Text); maxInputRunes > 0 && n > maxInputRunes {
		result.AddError("text",
			fmt.Sprintf("text exceeds the maximum length of %d characters", maxInputRunes),
			fmt.Sprintf("%d characters", n))
	}

	if _, err := tokenizer.ParseSplitMode(req.Mode); err != nil {
		result.AddError("mode", "mode must be one of A, B, C", req.Mode)
	}

	if _, err := projection.ParseOption(req.Projection); err != nil {
		result.AddError("projection",
			fmt.Sprintf("projection must be one of %v", projection.Options()), req.Projection)
	}

	return result
}
