// Package errors provides the engine's structured error taxonomy:
// fatal configuration errors raised by the compiler, the façade's
// unknown-language error, and the CLI-facing error codes.
package errors

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Configuration and façade error codes.
const (
	ErrUnknownLanguage  = "UNKNOWN_LANGUAGE"
	ErrUnknownState     = "UNKNOWN_STATE"
	ErrUnresolvedClass  = "UNRESOLVED_CLASS_REFERENCE"
	ErrMalformedMatcher = "MALFORMED_MATCHER"
)

// CLI-facing error codes.
const (
	ErrInvalidArgs      = "INVALID_ARGS"
	ErrInvalidExtract   = "INVALID_EXTRACT"
	ErrLanguageRequired = "LANGUAGE_REQUIRED"
	ErrExecution        = "EXECUTION_ERROR"
)

// CodeError is a structured error with a stable code and optional
// context, following the teacher's DevCmdError shape.
type CodeError struct {
	Code    string
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *CodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap allows errors.Is / errors.As to see through to Cause.
func (e *CodeError) Unwrap() error {
	return e.Cause
}

// New creates a CodeError with no cause.
func New(code, message string) *CodeError {
	return &CodeError{Code: code, Message: message, Context: make(map[string]any)}
}

// Wrap creates a CodeError wrapping cause.
func Wrap(code, message string, cause error) *CodeError {
	return &CodeError{Code: code, Message: message, Cause: cause, Context: make(map[string]any)}
}

// WithContext attaches a context value and returns e for chaining.
func (e *CodeError) WithContext(key string, value any) *CodeError {
	e.Context[key] = value
	return e
}

// NewUnknownLanguage creates the façade's UNKNOWN_LANGUAGE error, naming
// the identifier and the registry's known names for the caller. When a
// known name is a close fuzzy match for identifier, the message suggests
// it ("did you mean ...").
func NewUnknownLanguage(identifier string, knownNames []string) *CodeError {
	message := fmt.Sprintf("unknown language %q", identifier)
	if suggestion := closestName(identifier, knownNames); suggestion != "" {
		message = fmt.Sprintf("%s (did you mean %q?)", message, suggestion)
	}
	return New(ErrUnknownLanguage, message).
		WithContext("identifier", identifier).
		WithContext("knownNames", knownNames)
}

// closestName returns the known name fuzzy-ranked closest to identifier,
// or "" if no known name fuzzy-matches it (including when knownNames is
// empty).
func closestName(identifier string, knownNames []string) string {
	ranks := fuzzy.RankFindFold(identifier, knownNames)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}

// Is reports whether err is a *CodeError with the given code.
func Is(err error, code string) bool {
	ce, ok := err.(*CodeError)
	if !ok {
		return false
	}
	return ce.Code == code
}
