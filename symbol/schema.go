// Package symbol runs declarative token patterns over a token stream to
// detect structural symbols (functions, classes, headings, and so on).
package symbol

import "github.com/aledsdavies/codelang/reader"

// StepKind identifies which variant of the token-pattern-step sum type a
// Step is.
type StepKind int

const (
	// MatchStep requires the current token to have a given type (and,
	// optionally, value), and may capture it under a name.
	MatchStep StepKind = iota
	// SkipUntilStep scans forward for the next step's match, bounded by
	// MaxTokens.
	SkipUntilStep
	// OptionalStep attempts its inner step once; failure leaves position
	// unchanged.
	OptionalStep
	// AnyOfStep tries each alternative in order, taking the first success.
	AnyOfStep
)

// Step is one element of a symbol rule's pattern.
type Step struct {
	Kind StepKind

	// MatchStep
	TokenType string
	Value     string // "" means any value
	Capture   string // "" means no capture

	// SkipUntilStep
	MaxTokens int // 0 means use the default of 50

	// OptionalStep
	Inner *Step

	// AnyOfStep
	Alternatives []Step
}

// BodyStyle selects how a matched symbol's content end is determined.
type BodyStyle int

const (
	NoBody BodyStyle = iota
	Braces
	Indentation
	MarkupBlock
	EndKeyword
)

// Rule is a declarative description of one kind of detectable symbol.
type Rule struct {
	Name       string
	Kind       string
	Pattern    []Step
	HasBody    bool
	BodyStyle  BodyStyle
	EndKeyword string // only meaningful when BodyStyle == EndKeyword
	Nested     bool
}

// Symbol is a detected structural element of the source.
type Symbol struct {
	Name         string       `json:"name"`
	Kind         string       `json:"kind"`
	NameRange    reader.Range `json:"nameRange"`
	ContentRange reader.Range `json:"contentRange"`
}

// DefaultMaxSkipTokens is the bound applied to a SkipUntilStep whose
// MaxTokens is left at zero.
const DefaultMaxSkipTokens = 50
