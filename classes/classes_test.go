package classes

import "testing"

func mustCompile(t *testing.T, expr Expr, table Table) Predicate {
	t.Helper()
	p, err := Compile(expr, table)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return p
}

func TestPredefinedClasses(t *testing.T) {
	tests := []struct {
		name  string
		class string
		yes   []string
		no    []string
	}{
		{"letter", Letter, []string{"a", "Z", "È"}, []string{"1", " ", ""}},
		{"digit", Digit, []string{"0", "9"}, []string{"a", ""}},
		{"whitespace", Whitespace, []string{" ", "\t"}, []string{"\n", "a", ""}},
		{"newline", Newline, []string{"\n", "\r"}, []string{" ", ""}},
		{"alphanumeric", Alphanumeric, []string{"a", "9"}, []string{"_", ""}},
		{"any", Any, []string{"a", " ", "\n"}, []string{""}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pred := mustCompile(t, Expr{Kind: Predefined, Name: tc.class}, nil)
			for _, ch := range tc.yes {
				if !pred(ch) {
					t.Errorf("%s: expected %q to match", tc.class, ch)
				}
			}
			for _, ch := range tc.no {
				if pred(ch) {
					t.Errorf("%s: expected %q not to match", tc.class, ch)
				}
			}
		})
	}
}

func TestNegateFailsOnEmpty(t *testing.T) {
	pred := mustCompile(t, Expr{Kind: Negate, Of: []Expr{{Kind: Predefined, Name: Digit}}}, nil)
	if pred("") {
		t.Error("negate must fail on empty input")
	}
	if pred("5") {
		t.Error("negate of digit should reject a digit")
	}
	if !pred("a") {
		t.Error("negate of digit should accept a letter")
	}
}

func TestUnionAndRange(t *testing.T) {
	union := mustCompile(t, Expr{Kind: Union, Of: []Expr{
		{Kind: Predefined, Name: Digit},
		{Kind: Range, Low: 'a', High: 'f'},
	}}, nil)
	for _, ch := range []string{"0", "a", "f"} {
		if !union(ch) {
			t.Errorf("expected %q in union", ch)
		}
	}
	if union("g") {
		t.Error("g should not be in digit ∪ a-f")
	}
}

func TestNamedReferenceResolution(t *testing.T) {
	table := Table{"ident-start": {Kind: Union, Of: []Expr{
		{Kind: Predefined, Name: Letter},
		{Kind: Set, Chars: "_"},
	}}}
	pred := mustCompile(t, Expr{Kind: Named, Name: "ident-start"}, table)
	if !pred("_") || !pred("a") || pred("1") {
		t.Error("named reference did not resolve correctly")
	}
}

func TestUnresolvedNamedReferenceIsFatal(t *testing.T) {
	_, err := Compile(Expr{Kind: Named, Name: "missing"}, Table{})
	if err == nil {
		t.Fatal("expected error for unresolved named class")
	}
}

func TestIsWordChar(t *testing.T) {
	for _, ch := range []string{"a", "Z", "9", "_", "$"} {
		if !IsWordChar(ch) {
			t.Errorf("expected %q to be a word char", ch)
		}
	}
	for _, ch := range []string{" ", "(", ""} {
		if IsWordChar(ch) {
			t.Errorf("expected %q not to be a word char", ch)
		}
	}
}
