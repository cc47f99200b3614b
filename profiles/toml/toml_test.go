package toml

import (
	"testing"

	"github.com/aledsdavies/codelang/codelang"
)

func TestTokensAndSymbols(t *testing.T) {
	source := "[server]\nhost = \"localhost\"\nport = 8080\n"

	tokens, err := codelang.Tokenize(source, "toml")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("expected tokens")
	}
	var rebuilt string
	for _, tok := range tokens {
		rebuilt += tok.Value
	}
	if rebuilt != source {
		t.Errorf("token values do not cover source exactly:\n got: %q\nwant: %q", rebuilt, source)
	}

	symbols, err := codelang.ExtractSymbols(source, ".toml")
	if err != nil {
		t.Fatalf("ExtractSymbols: %v", err)
	}

	var table, hostKey bool
	for _, s := range symbols {
		if s.Kind == "table" && s.Name == "server" {
			table = true
		}
		if s.Kind == "entry" && s.Name == "host" {
			hostKey = true
		}
	}
	if !table {
		t.Errorf("expected table server among symbols, got %+v", symbols)
	}
	if !hostKey {
		t.Errorf("expected entry host among symbols, got %+v", symbols)
	}
}
