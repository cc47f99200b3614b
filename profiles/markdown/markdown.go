// Package markdown registers the "markdown" language profile against
// the default registry as a side effect of being imported. Unlike the
// javascript and toml profiles, markdown deliberately leaves newline
// tokens unskipped: the markup-block body style needs to
// see a blank line (two consecutive newline tokens) to know where a
// heading's section ends.
package markdown

import (
	"github.com/aledsdavies/codelang/classes"
	"github.com/aledsdavies/codelang/codelang"
	"github.com/aledsdavies/codelang/lexer"
	"github.com/aledsdavies/codelang/match"
	"github.com/aledsdavies/codelang/profile"
	"github.com/aledsdavies/codelang/symbol"
)

var headingMarkers = []string{
	"###### ", "##### ", "#### ", "### ", "## ", "# ",
}

var notNewline = classes.Expr{Kind: classes.Negate, Of: []classes.Expr{
	{Kind: classes.Predefined, Name: classes.Newline},
}}

var horizontalWhitespace = classes.Expr{Kind: classes.Set, Chars: " \t"}

func buildProfile() *profile.Profile {
	mainRules := []lexer.Rule{
		{
			Match: match.Spec{Kind: match.Delimited, Open: "```", Close: "```", Multiline: true},
			Token: "codefence",
		},
		{
			Match: match.Spec{Kind: match.Delimited, Open: "`", Close: "`"},
			Token: "inlinecode",
		},
		{
			Match: match.Spec{Kind: match.StringMatch, Literals: headingMarkers},
			Token: "headingMarker",
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
		{
			Match: match.Spec{Kind: match.CharSequence, First: notNewline, Rest: &notNewline},
			Token: "text",
		},
	}

	return &profile.Profile{
		Name:       "markdown",
		Extensions: []string{".md", ".markdown"},
		Lexer: lexer.Config{
			Initial:    "main",
			States:     map[string][]lexer.Rule{"main": mainRules},
			Categories: map[string]string{"headingMarker": "keyword", "codefence": "string", "inlinecode": "string"},
			Skip:       map[string]bool{"whitespace": true},
		},
		SymbolRules: []symbol.Rule{
			{
				Name: "heading",
				Kind: "heading",
				Pattern: []symbol.Step{
					{Kind: symbol.MatchStep, TokenType: "headingMarker"},
					{Kind: symbol.MatchStep, TokenType: "text", Capture: "name"},
				},
				HasBody:   true,
				BodyStyle: symbol.MarkupBlock,
			},
			{
				Name: "codeblock",
				Kind: "codeblock",
				Pattern: []symbol.Step{
					{Kind: symbol.MatchStep, TokenType: "codefence"},
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
