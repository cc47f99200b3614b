// Package python registers the "python" language profile against the
// default registry as a side effect of being imported.
package python

import (
	"github.com/aledsdavies/codelang/classes"
	"github.com/aledsdavies/codelang/codelang"
	"github.com/aledsdavies/codelang/lexer"
	"github.com/aledsdavies/codelang/match"
	"github.com/aledsdavies/codelang/profile"
	"github.com/aledsdavies/codelang/symbol"
)

var keywords = []string{
	"def", "class", "return", "if", "elif", "else", "for", "while",
	"import", "from", "as", "with", "try", "except", "finally", "raise",
	"pass", "break", "continue", "lambda", "yield", "global", "nonlocal",
	"True", "False", "None", "and", "or", "not", "in", "is", "async", "await",
}

var operators = []string{
	"**=", "//=", "==", "!=", "<=", ">=", "->", "**", "//", "+=", "-=",
	"*=", "/=", "%=",
	"(", ")", "[", "]", "{", "}", ":", ",", ".", "=", "+", "-", "*", "/",
	"%", "<", ">",
}

var identFirst = classes.Expr{
	Kind: classes.Union,
	Of: []classes.Expr{
		{Kind: classes.Predefined, Name: classes.Letter},
		{Kind: classes.Set, Chars: "_"},
	},
}

var identRest = classes.Expr{
	Kind: classes.Union,
	Of: []classes.Expr{
		{Kind: classes.Predefined, Name: classes.Alphanumeric},
		{Kind: classes.Set, Chars: "_"},
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
			Match: match.Spec{Kind: match.Delimited, Open: "'''", Close: "'''", Multiline: true},
			Token: "string",
		},
		{
			Match: match.Spec{Kind: match.Delimited, Open: `"`, Close: `"`, Escape: `\`},
			Token: "string",
		},
		{
			Match: match.Spec{Kind: match.Delimited, Open: "'", Close: "'", Escape: `\`},
			Token: "string",
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
			Match: match.Spec{Kind: match.StringMatch, Literals: operators},
			Token: "punctuation",
		},
		{
			Match: match.Spec{Kind: match.CharSequence,
				First: classes.Expr{Kind: classes.Set, Chars: " \t"},
				Rest:  &horizontalWhitespace,
			},
			Token: "whitespace",
		},
		{
			Match: match.Spec{Kind: match.CharSequence,
				First: classes.Expr{Kind: classes.Predefined, Name: classes.Newline},
			},
			Token: "newline",
		},
	}

	return &profile.Profile{
		Name:       "python",
		Extensions: []string{".py"},
		Lexer: lexer.Config{
			Initial: "main",
			States:  map[string][]lexer.Rule{"main": mainRules},
			Categories: map[string]string{
				"keyword": "keyword", "string": "string", "number": "number",
				"comment": "comment", "identifier": "identifier", "punctuation": "punctuation",
			},
			Skip: map[string]bool{"whitespace": true, "comment": true},
		},
		SymbolRules: []symbol.Rule{
			{
				Name: "function",
				Kind: "function",
				Pattern: []symbol.Step{
					{Kind: symbol.MatchStep, TokenType: "keyword", Value: "def"},
					{Kind: symbol.MatchStep, TokenType: "identifier", Capture: "name"},
					{Kind: symbol.SkipUntilStep, MaxTokens: 30},
					{Kind: symbol.MatchStep, TokenType: "punctuation", Value: ":"},
				},
				HasBody:   true,
				BodyStyle: symbol.Indentation,
			},
			{
				Name: "class",
				Kind: "class",
				Pattern: []symbol.Step{
					{Kind: symbol.MatchStep, TokenType: "keyword", Value: "class"},
					{Kind: symbol.MatchStep, TokenType: "identifier", Capture: "name"},
					{Kind: symbol.SkipUntilStep, MaxTokens: 30},
					{Kind: symbol.MatchStep, TokenType: "punctuation", Value: ":"},
				},
				HasBody:   true,
				BodyStyle: symbol.Indentation,
				Nested:    true,
			},
		},
	}
}

func init() {
	codelang.DefaultRegistry().Register(buildProfile())
}
