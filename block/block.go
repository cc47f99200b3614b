// Package block matches bracket-like token pairs into nested spans,
// tolerating mismatched closes.
package block

import (
	"sort"

	"github.com/aledsdavies/codelang/lexer"
)

// Rule names one bracket pair by the literal values of its open and
// close tokens. Track keeps one rule per open literal and one per close
// literal: when several rules share a literal, the last of them in the
// rules slice is the one used for it. A close only matches an open
// frame recorded under that rule's name.
type Rule struct {
	Name  string
	Open  string
	Close string
}

// Span is a matched open/close token pair with its nesting depth.
type Span struct {
	Name       string `json:"name"`
	OpenIndex  int    `json:"openIndex"`
	CloseIndex int    `json:"closeIndex"`
	Depth      int    `json:"depth"`
}

type frame struct {
	ruleName    string
	openIndex   int
	depthBefore int
}

// Track walks tokens, matching open/close literals against rules by
// token value (not type), and returns matched spans sorted by
// openIndex. Unmatched closes are dropped silently; unmatched opens at
// end of input produce no span.
func Track(tokens []lexer.Token, rules []Rule) []Span {
	openTable := map[string]Rule{}
	closeTable := map[string]Rule{}
	for _, r := range rules {
		openTable[r.Open] = r
		closeTable[r.Close] = r
	}

	var stack []frame
	var spans []Span

	for i, tok := range tokens {
		if closeRule, ok := closeTable[tok.Value]; ok {
			if idx := findMatchingFrame(stack, closeRule.Name); idx >= 0 {
				f := stack[idx]
				spans = append(spans, Span{
					Name:       f.ruleName,
					OpenIndex:  f.openIndex,
					CloseIndex: i,
					Depth:      f.depthBefore,
				})
				stack = stack[:idx]
				continue
			}
			// No matching open on the stack: drop the close silently.
			continue
		}
		if openRule, ok := openTable[tok.Value]; ok {
			stack = append(stack, frame{
				ruleName:    openRule.Name,
				openIndex:   i,
				depthBefore: len(stack),
			})
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].OpenIndex < spans[j].OpenIndex })
	return spans
}

func findMatchingFrame(stack []frame, ruleName string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].ruleName == ruleName {
			return i
		}
	}
	return -1
}
