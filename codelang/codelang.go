// Package codelang is the library façade: given a language identifier
// (a registered profile name or file extension) and source text, it
// produces the token stream or the symbol list for that source.
package codelang

import (
	"sync"

	"github.com/aledsdavies/codelang/block"
	cerrors "github.com/aledsdavies/codelang/errors"
	"github.com/aledsdavies/codelang/lexer"
	"github.com/aledsdavies/codelang/profile"
	"github.com/aledsdavies/codelang/symbol"
)

// defaultRegistry is the process-wide registry blank-imported profile
// packages register themselves against.
var defaultRegistry = profile.NewRegistry()

// DefaultRegistry returns the process-wide profile registry.
func DefaultRegistry() *profile.Registry {
	return defaultRegistry
}

// lexerCache holds compiled lexers keyed by profile pointer identity, so
// two lookups of the same *profile.Profile reuse one compiled Lexer
// instead of recompiling its matchers on every call.
var lexerCache sync.Map // map[*profile.Profile]*lexer.Lexer

func compiledLexerFor(p *profile.Profile) (*lexer.Lexer, error) {
	if cached, ok := lexerCache.Load(p); ok {
		return cached.(*lexer.Lexer), nil
	}
	compiled, err := lexer.Compile(p.Lexer, p.Name)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrMalformedMatcher, "failed to compile lexer for profile "+p.Name, err)
	}
	actual, _ := lexerCache.LoadOrStore(p, compiled)
	return actual.(*lexer.Lexer), nil
}

func resolveProfile(nameOrExt string) (*profile.Profile, error) {
	p, ok := defaultRegistry.Lookup(nameOrExt)
	if !ok {
		return nil, cerrors.NewUnknownLanguage(nameOrExt, defaultRegistry.ListNames())
	}
	return p, nil
}

// Tokenize resolves nameOrExt against the default registry and runs the
// resulting profile's lexer over source.
func Tokenize(source, nameOrExt string) ([]lexer.Token, error) {
	p, err := resolveProfile(nameOrExt)
	if err != nil {
		return nil, err
	}
	lx, err := compiledLexerFor(p)
	if err != nil {
		return nil, err
	}
	return lx.Run(source)
}

// ExtractSymbols resolves nameOrExt against the default registry,
// tokenizes source, tracks its block spans, and runs the symbol
// detector over the result.
func ExtractSymbols(source, nameOrExt string) ([]symbol.Symbol, error) {
	p, err := resolveProfile(nameOrExt)
	if err != nil {
		return nil, err
	}
	lx, err := compiledLexerFor(p)
	if err != nil {
		return nil, err
	}
	tokens, err := lx.Run(source)
	if err != nil {
		return nil, err
	}
	spans := block.Track(tokens, p.BlockRules)
	return symbol.Detect(tokens, lx.SkipSet(), p.SymbolRules, spans), nil
}
