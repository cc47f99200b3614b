package block

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/codelang/lexer"
)

func tok(value string) lexer.Token {
	return lexer.Token{Type: "punctuation", Value: value, Category: "plain"}
}

var braceRule = []Rule{{Name: "braces", Open: "{", Close: "}"}}

func TestSimpleBraceMatch(t *testing.T) {
	tokens := []lexer.Token{tok("{"), tok("x"), tok("}")}
	spans := Track(tokens, braceRule)
	want := []Span{{Name: "braces", OpenIndex: 0, CloseIndex: 2, Depth: 0}}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("unexpected spans (-want +got):\n%s", diff)
	}
}

func TestNestedBraces(t *testing.T) {
	tokens := []lexer.Token{tok("{"), tok("{"), tok("}"), tok("}")}
	spans := Track(tokens, braceRule)
	want := []Span{
		{Name: "braces", OpenIndex: 0, CloseIndex: 3, Depth: 0},
		{Name: "braces", OpenIndex: 1, CloseIndex: 2, Depth: 1},
	}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("unexpected spans (-want +got):\n%s", diff)
	}
}

func TestUnmatchedCloseDroppedSilently(t *testing.T) {
	tokens := []lexer.Token{tok("}"), tok("{"), tok("}")}
	spans := Track(tokens, braceRule)
	want := []Span{{Name: "braces", OpenIndex: 1, CloseIndex: 2, Depth: 0}}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("unexpected spans (-want +got):\n%s", diff)
	}
}

func TestUnmatchedOpenAtEndProducesNoSpan(t *testing.T) {
	tokens := []lexer.Token{tok("{"), tok("x")}
	spans := Track(tokens, braceRule)
	if len(spans) != 0 {
		t.Fatalf("want 0 spans, got %d", len(spans))
	}
}

func TestMismatchDiscardsIntermediateOpens(t *testing.T) {
	rules := []Rule{
		{Name: "braces", Open: "{", Close: "}"},
		{Name: "parens", Open: "(", Close: ")"},
	}
	// "{" "(" "}" -- the parens open is orphaned by the brace close.
	tokens := []lexer.Token{tok("{"), tok("("), tok("}")}
	spans := Track(tokens, rules)
	want := []Span{{Name: "braces", OpenIndex: 0, CloseIndex: 2, Depth: 0}}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("unexpected spans (-want +got):\n%s", diff)
	}
}

func TestSpansSortedByOpenIndex(t *testing.T) {
	tokens := []lexer.Token{tok("{"), tok("{"), tok("}"), tok("}")}
	spans := Track(tokens, braceRule)
	for i := 1; i < len(spans); i++ {
		if spans[i-1].OpenIndex > spans[i].OpenIndex {
			t.Fatalf("spans not sorted: %+v", spans)
		}
	}
}
