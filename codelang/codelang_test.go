package codelang

import (
	"testing"

	"github.com/aledsdavies/codelang/classes"
	"github.com/aledsdavies/codelang/lexer"
	"github.com/aledsdavies/codelang/match"
	"github.com/aledsdavies/codelang/profile"
	"github.com/aledsdavies/codelang/symbol"
)

// buildToyProfile registers a minimal "toytest" profile: a single
// keyword "fn", an identifier, and a function-like symbol rule with no
// body. It exercises the façade's name and extension resolution paths.
func buildToyProfile() *profile.Profile {
	identifierExpr := classes.Expr{
		Kind: classes.Union,
		Of: []classes.Expr{
			{Kind: classes.Predefined, Name: classes.Letter},
			{Kind: classes.Predefined, Name: classes.Digit},
		},
	}
	whitespaceExpr := classes.Expr{Kind: classes.Predefined, Name: classes.Whitespace}

	p := &profile.Profile{
		Name:       "toytest",
		Extensions: []string{".toy"},
		Lexer: lexer.Config{
			Initial: "main",
			States: map[string][]lexer.Rule{
				"main": {
					{
						Match: match.Spec{Kind: match.Keywords, Words: []string{"fn"}},
						Token: "keyword",
					},
					{
						Match: match.Spec{
							Kind:  match.CharSequence,
							First: classes.Expr{Kind: classes.Predefined, Name: classes.Letter},
							Rest:  &identifierExpr,
						},
						Token: "identifier",
					},
					{
						Match: match.Spec{Kind: match.StringMatch, Literals: []string{"(", ")", ";"}},
						Token: "punctuation",
					},
					{
						Match: match.Spec{
							Kind:  match.CharSequence,
							First: classes.Expr{Kind: classes.Predefined, Name: classes.Whitespace},
							Rest:  &whitespaceExpr,
						},
						Token: "whitespace",
					},
				},
			},
			Skip: map[string]bool{"whitespace": true},
		},
		SymbolRules: []symbol.Rule{
			{
				Name: "fn",
				Kind: "function",
				Pattern: []symbol.Step{
					{Kind: symbol.MatchStep, TokenType: "keyword", Value: "fn"},
					{Kind: symbol.MatchStep, TokenType: "identifier", Capture: "name"},
				},
				BodyStyle: symbol.NoBody,
			},
		},
	}
	defaultRegistry.Register(p)
	return p
}

func TestTokenizeAndExtractByNameAndExtension(t *testing.T) {
	buildToyProfile()
	source := "fn add(); "

	byName, err := Tokenize(source, "toytest")
	if err != nil {
		t.Fatalf("Tokenize by name: %v", err)
	}
	if len(byName) == 0 {
		t.Fatal("Tokenize by name returned no tokens")
	}

	byExt, err := Tokenize(source, ".toy")
	if err != nil {
		t.Fatalf("Tokenize by extension: %v", err)
	}
	if len(byExt) == 0 {
		t.Fatal("Tokenize by extension returned no tokens")
	}

	symbols, err := ExtractSymbols(source, "toytest")
	if err != nil {
		t.Fatalf("ExtractSymbols: %v", err)
	}
	if len(symbols) != 1 {
		t.Fatalf("want 1 symbol, got %d: %+v", len(symbols), symbols)
	}
	if symbols[0].Name != "add" {
		t.Errorf("want symbol name add, got %q", symbols[0].Name)
	}
}

func TestTokenizeUnknownLanguage(t *testing.T) {
	_, err := Tokenize("irrelevant", "no-such-language")
	if err == nil {
		t.Fatal("want error for unknown language")
	}
}
