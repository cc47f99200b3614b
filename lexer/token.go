package lexer

import "github.com/aledsdavies/codelang/reader"

// Reserved category names emitted directly by the engine.
const (
	CategoryError = "error"
	CategoryPlain = "plain"
)

// ErrorTokenType is the synthetic token type produced when no rule
// matches at the lexer's current position.
const ErrorTokenType = "error"

// Token is one classified slice of source text.
type Token struct {
	Type     string       `json:"type"`
	Value    string       `json:"value"`
	Category string       `json:"category"`
	Range    reader.Range `json:"range"`
}
