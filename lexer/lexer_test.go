package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/codelang/classes"
	"github.com/aledsdavies/codelang/lexstate"
	"github.com/aledsdavies/codelang/match"
	"github.com/aledsdavies/codelang/reader"
)

func simpleConfig() Config {
	ident := match.Spec{
		Kind:  match.CharSequence,
		First: classes.Expr{Kind: classes.Predefined, Name: classes.Letter},
		Rest:  &classes.Expr{Kind: classes.Predefined, Name: classes.Alphanumeric},
	}
	return Config{
		Initial: "root",
		States: map[string][]Rule{
			"root": {
				{Match: match.Spec{Kind: match.StringMatch, Literals: []string{"fn"}}, Token: "keyword"},
				{Match: ident, Token: "identifier"},
				{Match: match.Spec{Kind: match.StringMatch, Literals: []string{"(", ")"}}, Token: "punctuation"},
				{Match: match.Spec{Kind: match.CharSequence, First: classes.Expr{Kind: classes.Predefined, Name: classes.Whitespace}}, Token: "whitespace"},
			},
		},
		Categories: map[string]string{"keyword": "keyword", "identifier": "name", "punctuation": "operator"},
		Skip:       map[string]bool{"whitespace": true},
	}
}

func TestLexerCoverageAndMonotoneRanges(t *testing.T) {
	cfg := simpleConfig()
	lx, err := Compile(cfg, "test")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	source := "fn greet()"
	tokens, err := lx.Run(source)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var concatenated string
	for i, tok := range tokens {
		concatenated += tok.Value
		if i > 0 {
			prev := tokens[i-1]
			if prev.Range.End.Offset != tok.Range.Start.Offset {
				t.Errorf("gap/overlap between token %d and %d", i-1, i)
			}
		}
		if tok.Range.End.Offset < tok.Range.Start.Offset {
			t.Errorf("token %d has end < start", i)
		}
	}
	if concatenated != source {
		t.Errorf("coverage invariant violated: got %q want %q", concatenated, source)
	}
}

func TestLexerEmptyInput(t *testing.T) {
	lx, err := Compile(simpleConfig(), "test")
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := lx.Run("")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 0 {
		t.Errorf("want empty token list, got %d tokens", len(tokens))
	}
}

func TestLexerErrorTokenOnNoMatch(t *testing.T) {
	lx, err := Compile(simpleConfig(), "test")
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := lx.Run("#")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{{
		Type:     ErrorTokenType,
		Value:    "#",
		Category: CategoryError,
		Range: reader.Range{
			Start: reader.Position{Line: 1, Column: 0, Offset: 0},
			End:   reader.Position{Line: 1, Column: 1, Offset: 1},
		},
	}}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestLexerUnknownStateIsFatal(t *testing.T) {
	cfg := simpleConfig()
	cfg.States["root"] = append(cfg.States["root"], Rule{
		Match:      match.Spec{Kind: match.StringMatch, Literals: []string{"!"}},
		Token:      "bang",
		Transition: lexstate.Transition{SwitchTo: "missing"},
	})
	lx, err := Compile(cfg, "test")
	if err != nil {
		t.Fatal(err)
	}
	_, err = lx.Run("!")
	if err == nil {
		t.Fatal("expected error when reaching an unknown state")
	}
}

func TestLexerMissingTokenTypeCategoryDefaultsToPlain(t *testing.T) {
	cfg := simpleConfig()
	cfg.Categories = map[string]string{} // no entries at all
	lx, err := Compile(cfg, "test")
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := lx.Run("fn")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Category != CategoryPlain {
		t.Errorf("want plain category default, got %q", tokens[0].Category)
	}
}
