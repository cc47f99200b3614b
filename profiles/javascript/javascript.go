// Package javascript registers the "javascript" language profile
// against the default registry as a side effect of being imported.
package javascript

import (
	"github.com/aledsdavies/codelang/block"
	"github.com/aledsdavies/codelang/classes"
	"github.com/aledsdavies/codelang/codelang"
	"github.com/aledsdavies/codelang/lexer"
	"github.com/aledsdavies/codelang/match"
	"github.com/aledsdavies/codelang/profile"
	"github.com/aledsdavies/codelang/symbol"
)

var keywords = []string{
	"function", "class", "extends", "return", "if", "else", "for", "while",
	"const", "let", "var", "new", "this", "import", "export", "from",
	"default", "async", "await", "true", "false", "null", "undefined",
	"typeof", "instanceof", "try", "catch", "finally", "throw", "break",
	"continue", "switch", "case", "static", "get", "set",
}

var operators = []string{
	"===", "!==", "=>", "==", "!=", "<=", ">=", "&&", "||", "??", "...",
	"+=", "-=", "*=", "/=", "++", "--",
	"{", "}", "(", ")", "[", "]", ";", ",", ".", "=", "<", ">", "!", "?",
	":", "+", "-", "*", "/", "%", "&", "|",
}

var identFirst = classes.Expr{
	Kind: classes.Union,
	Of: []classes.Expr{
		{Kind: classes.Predefined, Name: classes.Letter},
		{Kind: classes.Set, Chars: "_$"},
	},
}

var identRest = classes.Expr{
	Kind: classes.Union,
	Of: []classes.Expr{
		{Kind: classes.Predefined, Name: classes.Alphanumeric},
		{Kind: classes.Set, Chars: "_$"},
	},
}

var whitespaceRest = classes.Expr{Kind: classes.Predefined, Name: classes.Whitespace}

func buildProfile() *profile.Profile {
	mainRules := []lexer.Rule{
		{
			Match: match.Spec{Kind: match.Line, Start: "//"},
			Token: "comment",
		},
		{
			Match: match.Spec{Kind: match.Delimited, Open: "/*", Close: "*/", Multiline: true},
			Token: "comment",
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
			Match: match.Spec{Kind: match.Delimited, Open: "`", Close: "`", Escape: `\`, Multiline: true},
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
				First: classes.Expr{Kind: classes.Predefined, Name: classes.Whitespace},
				Rest:  &whitespaceRest,
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
		Name:       "javascript",
		Extensions: []string{".js", ".mjs", ".cjs"},
		Lexer: lexer.Config{
			Initial: "main",
			States:  map[string][]lexer.Rule{"main": mainRules},
			Categories: map[string]string{
				"keyword": "keyword", "string": "string", "number": "number",
				"comment": "comment", "identifier": "identifier", "punctuation": "punctuation",
			},
			Skip: map[string]bool{"whitespace": true, "newline": true, "comment": true},
		},
		BlockRules: []block.Rule{
			{Name: "braces", Open: "{", Close: "}"},
			{Name: "parens", Open: "(", Close: ")"},
			{Name: "brackets", Open: "[", Close: "]"},
		},
		SymbolRules: []symbol.Rule{
			{
				Name: "function",
				Kind: "function",
				Pattern: []symbol.Step{
					{Kind: symbol.MatchStep, TokenType: "keyword", Value: "function"},
					{Kind: symbol.MatchStep, TokenType: "identifier", Capture: "name"},
					{Kind: symbol.SkipUntilStep, MaxTokens: 20},
					{Kind: symbol.MatchStep, TokenType: "punctuation", Value: "{"},
				},
				HasBody:   true,
				BodyStyle: symbol.Braces,
			},
			{
				Name: "class",
				Kind: "class",
				Pattern: []symbol.Step{
					{Kind: symbol.MatchStep, TokenType: "keyword", Value: "class"},
					{Kind: symbol.MatchStep, TokenType: "identifier", Capture: "name"},
					{Kind: symbol.SkipUntilStep, MaxTokens: 20},
					{Kind: symbol.MatchStep, TokenType: "punctuation", Value: "{"},
				},
				HasBody:   true,
				BodyStyle: symbol.Braces,
			},
			{
				Name: "variable",
				Kind: "variable",
				Pattern: []symbol.Step{
					{Kind: symbol.AnyOfStep, Alternatives: []symbol.Step{
						{Kind: symbol.MatchStep, TokenType: "keyword", Value: "const"},
						{Kind: symbol.MatchStep, TokenType: "keyword", Value: "let"},
						{Kind: symbol.MatchStep, TokenType: "keyword", Value: "var"},
					}},
					{Kind: symbol.MatchStep, TokenType: "identifier", Capture: "name"},
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
