// Package profile defines the declarative language profile schema and
// the registry that resolves a language name or file extension to one.
package profile

import (
	"github.com/aledsdavies/codelang/block"
	"github.com/aledsdavies/codelang/lexer"
	"github.com/aledsdavies/codelang/symbol"
)

// IndentationConfig is accepted as part of a profile's lexer
// configuration but is not consulted by the core symbol detector, whose
// indentation body style reasons about token columns directly (see
// symbol.Detect). It exists so profile data carrying it is not rejected.
type IndentationConfig struct {
	TabWidth int
}

// Profile is the complete, immutable declarative description of one
// language: a lexer configuration plus the structural rules the symbol
// detector and block tracker run over its output.
//
// A *Profile is never mutated after Register; its identity (pointer
// value) is the cache key for its compiled lexer.
type Profile struct {
	Name       string
	Extensions []string

	Lexer lexer.Config

	BlockRules  []block.Rule
	SymbolRules []symbol.Rule

	Indentation *IndentationConfig

	// Extras carries profile fields the core accepts but does not
	// interpret: embedded-language declarations, inheritance metadata,
	// and similar surrounding-ecosystem concerns (see the distilled
	// spec's §9 design notes).
	Extras map[string]any
}
