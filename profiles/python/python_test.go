package python

import (
	"testing"

	"github.com/aledsdavies/codelang/codelang"
)

func TestClassWithIndentedBodyExtraction(t *testing.T) {
	source := "class Animal:\n    def speak(self):\n        return 'noise'\n\nx = 1\n"

	tokens, err := codelang.Tokenize(source, "python")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	var rebuilt string
	for _, tok := range tokens {
		rebuilt += tok.Value
	}
	if rebuilt != source {
		t.Errorf("token values do not cover source exactly:\n got: %q\nwant: %q", rebuilt, source)
	}

	symbols, err := codelang.ExtractSymbols(source, ".py")
	if err != nil {
		t.Fatalf("ExtractSymbols: %v", err)
	}

	var class, fn *struct {
		Name string
		Kind string
	}
	for i := range symbols {
		s := symbols[i]
		if s.Kind == "class" && s.Name == "Animal" {
			class = &struct {
				Name string
				Kind string
			}{s.Name, s.Kind}
		}
		if s.Kind == "function" && s.Name == "speak" {
			fn = &struct {
				Name string
				Kind string
			}{s.Name, s.Kind}
		}
	}
	if class == nil {
		t.Errorf("expected class Animal among symbols, got %+v", symbols)
	}
	if fn == nil {
		t.Errorf("expected function speak among symbols, got %+v", symbols)
	}
}
