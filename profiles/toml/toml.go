// Package toml registers the "toml" language profile against the
// default registry as a side effect of being imported. It is the
// simplest of the bundled profiles: no block rule and no nested body
// style, since TOML's table/key-value structure is flat per line.
package toml

import (
	"github.com/aledsdavies/codelang/classes"
	"github.com/aledsdavies/codelang/codelang"
	"github.com/aledsdavies/codelang/lexer"
	"github.com/aledsdavies/codelang/match"
	"github.com/aledsdavies/codelang/profile"
	"github.com/aledsdavies/codelang/symbol"
)

var keywords = []string{"true", "false"}

var identFirst = classes.Expr{
	Kind: classes.Union,
	Of: []classes.Expr{
		{Kind: classes.Predefined, Name: classes.Letter},
		{Kind: classes.Set, Chars: "_-"},
	},
}

var identRest = classes.Expr{
	Kind: classes.Union,
	Of: []classes.Expr{
		{Kind: classes.Predefined, Name: classes.Alphanumeric},
		{Kind: classes.Set, Chars: "_-"},
	},
}

var horizontalWhitespace = classes.Expr{Kind: classes.Set, Chars: " \t"}

func buildProfile() *profile.Profile {
	mainRules := []lexer.Rule{
		{
			Match: match.Spec{Kind: match.Line, Start: "#"},
			Token: "comment",
		},
		{
			Match: match.Spec{Kind: match.Delimited, Open: `"""`, Close: `"""`, Multiline: true},
			Token: "string",
		},
		{
			Match: match.Spec{Kind: match.Delimited, Open: `"`, Close: `"`, Escape: `\`},
			Token: "string",
		},
		{
			Match: match.Spec{Kind: match.Delimited, Open: "'", Close: "'"},
			Token: "string",
		},
		{
			Match: match.Spec{Kind: match.Sequence, Subs: []match.Spec{
				{Kind: match.StringMatch, Literals: []string{"["}},
				{Kind: match.StringMatch, Literals: []string{"["}},
			}},
			Token: "tableArrayOpen",
		},
		{
			Match: match.Spec{Kind: match.Keywords, Words: keywords},
			Token: "keyword",
		},
		{
			Match: match.Spec{
				Kind: match.Number,
				NumberConfig: match.NumberConfig{
					Hex: true, Octal: true, Binary: true, Float: true,
					DigitSeparator: "_",
				},
			},
			Token: "number",
		},
		{
			Match: match.Spec{Kind: match.CharSequence, First: identFirst, Rest: &identRest},
			Token: "identifier",
		},
		{
			Match: match.Spec{Kind: match.StringMatch, Literals: []string{"[", "]", "{", "}", "=", ",", "."}},
			Token: "punctuation",
		},
		{
			Match: match.Spec{Kind: match.CharSequence,
				First: classes.Expr{Kind: classes.Predefined, Name: classes.Newline},
			},
			Token: "newline",
		},
		{
			Match: match.Spec{Kind: match.CharSequence,
				First: classes.Expr{Kind: classes.Set, Chars: " \t"},
				Rest:  &horizontalWhitespace,
			},
			Token: "whitespace",
		},
	}

	return &profile.Profile{
		Name:       "toml",
		Extensions: []string{".toml"},
		Lexer: lexer.Config{
			Initial: "main",
			States:  map[string][]lexer.Rule{"main": mainRules},
			Categories: map[string]string{
				"keyword": "keyword", "string": "string", "number": "number",
				"comment": "comment", "identifier": "identifier", "punctuation": "punctuation",
			},
			Skip: map[string]bool{"whitespace": true, "newline": true, "comment": true},
		},
		SymbolRules: []symbol.Rule{
			{
				Name: "tableHeader",
				Kind: "table",
				Pattern: []symbol.Step{
					{Kind: symbol.MatchStep, TokenType: "punctuation", Value: "["},
					{Kind: symbol.MatchStep, TokenType: "identifier", Capture: "name"},
					{Kind: symbol.MatchStep, TokenType: "punctuation", Value: "]"},
				},
				HasBody:   false,
				BodyStyle: symbol.NoBody,
			},
			{
				Name: "keyValue",
				Kind: "entry",
				Pattern: []symbol.Step{
					{Kind: symbol.MatchStep, TokenType: "identifier", Capture: "name"},
					{Kind: symbol.MatchStep, TokenType: "punctuation", Value: "="},
				},
				HasBody:   false,
				BodyStyle: symbol.NoBody,
			},
		},
	}
}

func init() {
	codelang.DefaultRegistry().Register(buildProfile())
}
