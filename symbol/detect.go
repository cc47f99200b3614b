package symbol

import (
	"sort"

	"github.com/aledsdavies/codelang/block"
	"github.com/aledsdavies/codelang/lexer"
	"github.com/aledsdavies/codelang/reader"
)

type compressedToken struct {
	origIndex int
	token     lexer.Token
}

type capture struct {
	value     string
	origIndex int
}

// Detect runs rules over tokens in profile order, using skip to build the
// compressed view the pattern engine scans, and blockSpans to resolve the
// braces body style. Symbols are returned sorted by content start
// (line, then column).
func Detect(tokens []lexer.Token, skip map[string]bool, rules []Rule, blockSpans []block.Span) []Symbol {
	compressed := compress(tokens, skip)
	claimed := make([]bool, len(compressed))

	var symbols []Symbol
	for _, rule := range rules {
		for pos := 0; pos < len(compressed); pos++ {
			if claimed[pos] {
				continue
			}
			captures := map[string]capture{}
			endPos, firstIdx, lastIdx, ok := matchPattern(compressed, pos, rule.Pattern, captures)
			if !ok {
				continue
			}

			startOrig := compressed[firstIdx].origIndex
			lastOrig := compressed[lastIdx].origIndex

			name := rule.Name
			nameOrig := startOrig
			if nameCap, has := captures["name"]; has {
				name = nameCap.value
				nameOrig = nameCap.origIndex
			}

			contentEndOrig := contentEnd(tokens, compressed, rule, lastOrig, tokens[startOrig].Range.Start.Column, blockSpans)

			symbols = append(symbols, Symbol{
				Name:         name,
				Kind:         rule.Kind,
				NameRange:    tokens[nameOrig].Range,
				ContentRange: rangeBetween(tokens[startOrig], tokens[contentEndOrig]),
			})

			for k := pos; k < endPos; k++ {
				claimed[k] = true
			}
		}
	}

	sort.SliceStable(symbols, func(i, j int) bool {
		a, b := symbols[i].ContentRange.Start, symbols[j].ContentRange.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return symbols
}

func compress(tokens []lexer.Token, skip map[string]bool) []compressedToken {
	out := make([]compressedToken, 0, len(tokens))
	for i, tok := range tokens {
		if skip[tok.Type] {
			continue
		}
		out = append(out, compressedToken{origIndex: i, token: tok})
	}
	return out
}

func rangeBetween(start, end lexer.Token) reader.Range {
	return reader.Range{Start: start.Range.Start, End: end.Range.End}
}
