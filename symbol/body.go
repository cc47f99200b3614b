package symbol

import (
	"sort"
	"strings"

	"github.com/aledsdavies/codelang/block"
	"github.com/aledsdavies/codelang/lexer"
)

// contentEnd determines the original-token index where a matched
// symbol's content ends, per rule.BodyStyle.
func contentEnd(tokens []lexer.Token, compressed []compressedToken, rule Rule, lastMatchOrig, baseColumn int, blockSpans []block.Span) int {
	switch rule.BodyStyle {
	case Braces:
		return bracesContentEnd(tokens, lastMatchOrig, blockSpans)
	case Indentation:
		return indentationContentEnd(tokens, compressed, lastMatchOrig, baseColumn)
	case MarkupBlock:
		return markupBlockContentEnd(tokens, compressed, lastMatchOrig)
	case EndKeyword:
		return endKeywordContentEnd(tokens, lastMatchOrig, rule.EndKeyword)
	default: // NoBody
		return noBodyContentEnd(tokens, compressed, lastMatchOrig)
	}
}

func bracesContentEnd(tokens []lexer.Token, lastMatchOrig int, blockSpans []block.Span) int {
	sorted := blockSpans
	if !sort.SliceIsSorted(sorted, func(i, j int) bool { return sorted[i].OpenIndex < sorted[j].OpenIndex }) {
		sorted = append([]block.Span(nil), blockSpans...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].OpenIndex < sorted[j].OpenIndex })
	}
	for _, span := range sorted {
		if span.Name == "braces" && span.OpenIndex >= lastMatchOrig {
			return span.CloseIndex
		}
	}
	return lastMatchOrig
}

// firstCompressedAfter returns the index into compressed of the first
// entry whose origIndex is > origIndex, or len(compressed) if none.
func firstCompressedAfter(compressed []compressedToken, origIndex int) int {
	return sort.Search(len(compressed), func(i int) bool {
		return compressed[i].origIndex > origIndex
	})
}

func isWhitespaceOrNewline(tok lexer.Token) bool {
	trimmed := strings.TrimFunc(tok.Value, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	return trimmed == ""
}

func indentationContentEnd(tokens []lexer.Token, compressed []compressedToken, lastMatchOrig, baseColumn int) int {
	i := firstCompressedAfter(compressed, lastMatchOrig)
	for i < len(compressed) && isWhitespaceOrNewline(compressed[i].token) {
		i++
	}
	if i >= len(compressed) || compressed[i].token.Range.Start.Column <= baseColumn {
		return lastMatchOrig
	}

	lastOrig := lastMatchOrig
	for i < len(compressed) {
		tok := compressed[i].token
		if isWhitespaceOrNewline(tok) {
			i++
			continue
		}
		if tok.Range.Start.Column <= baseColumn {
			break
		}
		lastOrig = compressed[i].origIndex
		i++
	}
	return lastOrig
}

func markupBlockContentEnd(tokens []lexer.Token, compressed []compressedToken, lastMatchOrig int) int {
	i := firstCompressedAfter(compressed, lastMatchOrig)
	lastOrig := lastMatchOrig
	for i < len(compressed) {
		tok := compressed[i].token
		if isNewlineToken(tok) {
			if i+1 < len(compressed) && isNewlineToken(compressed[i+1].token) {
				break
			}
			i++
			continue
		}
		if !isWhitespaceOrNewline(tok) {
			lastOrig = compressed[i].origIndex
		}
		i++
	}
	return lastOrig
}

func isNewlineToken(tok lexer.Token) bool {
	if tok.Value == "" {
		return false
	}
	for _, r := range tok.Value {
		if r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func noBodyContentEnd(tokens []lexer.Token, compressed []compressedToken, lastMatchOrig int) int {
	i := firstCompressedAfter(compressed, lastMatchOrig)
	depth := 0
	lastNonWhitespace := lastMatchOrig

	for i < len(compressed) {
		tok := compressed[i].token

		if isNewlineToken(tok) && depth == 0 {
			return lastNonWhitespace
		}

		switch tok.Value {
		case "{", "(", "[":
			depth++
		case "}", ")", "]":
			if depth > 0 {
				depth--
			}
		case ";":
			if depth == 0 {
				return compressed[i].origIndex
			}
		}

		if !isWhitespaceOrNewline(tok) {
			lastNonWhitespace = compressed[i].origIndex
		}
		i++
	}
	return lastNonWhitespace
}

func endKeywordContentEnd(tokens []lexer.Token, lastMatchOrig int, endKeyword string) int {
	depth := 0
	for i := lastMatchOrig + 1; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Value {
		case "{", "(", "[":
			depth++
		case "}", ")", "]":
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 && tok.Type == "keyword" && tok.Value == endKeyword {
			return i
		}
	}
	return lastMatchOrig
}
