package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrOutOfRange is returned when a morpheme index is outside the valid range
	ErrOutOfRange = errors.New("index out of range")

	// ErrWordNotFound is returned when a word id does not resolve to a dictionary entry
	ErrWordNotFound = errors.New("word not found")

	// ErrInvalidConfiguration is returned when a caller-supplied option or
	// combination of objects is invalid
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// RangeError represents an index outside [-size, size-1] with context
type RangeError struct {
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index %d out of range for list of size %d", e.Index, e.Size)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NewRangeError creates a new RangeError
func NewRangeError(index, size int) *RangeError {
	return &RangeError{Index: index, Size: size}
}

// LookupError represents a word id that does not resolve, e.g. a
// cross-dictionary reference into a dictionary that is not loaded
type LookupError struct {
	WordID string
	Reason string
}

func (e *LookupError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("word id %s did not resolve: %s", e.WordID, e.Reason)
	}
	return fmt.Sprintf("word id %s did not resolve", e.WordID)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrWordNotFound
}

// NewLookupError creates a new LookupError
func NewLookupError(wordID string, reason ...string) *LookupError {
	err := &LookupError{WordID: wordID}
	if len(reason) > 0 {
		err.Reason = reason[0]
	}
	return err
}

// ConfigurationError represents an invalid option, such as an unknown
// projection name or matcher algebra across different tag tables
type ConfigurationError struct {
	Option  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("configuration error for '%s': %s", e.Option, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(option, message string) *ConfigurationError {
	return &ConfigurationError{Option: option, Message: message}
}
