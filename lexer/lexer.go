// Package lexer drives a character reader through a profile's compiled
// matchers and state stack, producing a token stream.
package lexer

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aledsdavies/codelang/classes"
	"github.com/aledsdavies/codelang/lexstate"
	"github.com/aledsdavies/codelang/match"
	"github.com/aledsdavies/codelang/reader"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Rule is one entry in a lexer state: what to match, what token type to
// emit, and what state transition to apply on a match.
type Rule struct {
	Match      match.Spec
	Token      string
	Transition lexstate.Transition
}

// Config is the uncompiled, data-driven description of one profile's
// lexer: named states (each an ordered rule list), the initial state,
// the character-class table rules may reference by name, the token
// type -> highlighting category table, and the set of token types the
// structure parser should not see.
type Config struct {
	States     map[string][]Rule
	Initial    string
	Classes    classes.Table
	Categories map[string]string
	Skip       map[string]bool
}

type compiledRule struct {
	scan       match.Scanner
	tokenType  string
	transition lexstate.Transition
}

// Lexer is a compiled, immutable, concurrency-safe lexer for one
// profile. Build it once per profile and reuse it across calls.
type Lexer struct {
	states     map[string][]compiledRule
	initial    string
	categories map[string]string
	skip       map[string]bool
	profileTag string
}

// Compile builds a Lexer from a Config, compiling every rule's matcher
// once. profileTag is used only for diagnostic logging.
func Compile(cfg Config, profileTag string) (*Lexer, error) {
	if _, ok := cfg.States[cfg.Initial]; !ok {
		return nil, fmt.Errorf("lexer: initial state %q is not defined", cfg.Initial)
	}
	states := make(map[string][]compiledRule, len(cfg.States))
	for name, rules := range cfg.States {
		compiled := make([]compiledRule, len(rules))
		for i, rule := range rules {
			scan, err := match.Compile(rule.Match, cfg.Classes)
			if err != nil {
				return nil, fmt.Errorf("lexer: state %q rule %d: %w", name, i, err)
			}
			compiled[i] = compiledRule{scan: scan, tokenType: rule.Token, transition: rule.Transition}
		}
		states[name] = compiled
	}
	return &Lexer{
		states:     states,
		initial:    cfg.Initial,
		categories: cfg.Categories,
		skip:       cfg.Skip,
		profileTag: profileTag,
	}, nil
}

// SkipSet reports which token types this lexer's profile marks as
// hidden from the structure parser.
func (l *Lexer) SkipSet() map[string]bool {
	return l.skip
}

// Run tokenizes source, returning a token stream that covers source
// without gaps or overlap. An empty source produces an empty token
// list. A rule match of zero length would stall the lexer, so only
// scanners returning n > 0 ever commit.
func (l *Lexer) Run(source string) ([]Token, error) {
	r := reader.New(source)
	stack := lexstate.New(l.initial)
	var tokens []Token

	for !r.AtEOF() {
		stateName := stack.Top()
		rules, ok := l.states[stateName]
		if !ok {
			logger.Error("lexer: unknown state reached", "profile", l.profileTag, "state", stateName)
			return nil, fmt.Errorf("lexer: unknown state %q", stateName)
		}

		start := r.Position()
		matched := false
		for _, cr := range rules {
			n := cr.scan(r)
			if n <= 0 {
				continue
			}
			value := r.AdvanceN(n)
			tokens = append(tokens, Token{
				Type:     cr.tokenType,
				Value:    value,
				Category: categoryFor(l.categories, cr.tokenType),
				Range:    reader.Range{Start: start, End: r.Position()},
			})
			stack.Apply(cr.transition)
			if _, ok := l.states[stack.Top()]; !ok {
				logger.Error("lexer: unknown state reached", "profile", l.profileTag, "state", stack.Top())
				return nil, fmt.Errorf("lexer: unknown state %q", stack.Top())
			}
			matched = true
			break
		}

		if !matched {
			value := r.Advance()
			tokens = append(tokens, Token{
				Type:     ErrorTokenType,
				Value:    value,
				Category: CategoryError,
				Range:    reader.Range{Start: start, End: r.Position()},
			})
		}
	}

	return tokens, nil
}

func categoryFor(categories map[string]string, tokenType string) string {
	if cat, ok := categories[tokenType]; ok {
		return cat
	}
	return CategoryPlain
}
