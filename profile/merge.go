package profile

import (
	"github.com/aledsdavies/codelang/classes"
	"github.com/aledsdavies/codelang/lexer"
)

// Merge produces a new Profile by shallowly overriding base with
// override, field by field, wherever override carries a non-zero value.
// It exists for profile authors who want one profile to inherit
// another's lexer or structure rules; the core interpreter never calls
// it itself (inheritance bookkeeping is an external concern per the
// distilled spec's §1 scope — this helper is supplied only because
// nothing else in the surrounding ecosystem will be).
func Merge(base, override *Profile) *Profile {
	merged := *base

	if override.Name != "" {
		merged.Name = override.Name
	}
	if len(override.Extensions) > 0 {
		merged.Extensions = override.Extensions
	}

	if override.Lexer.Initial != "" {
		merged.Lexer.Initial = override.Lexer.Initial
	}
	if override.Lexer.States != nil {
		merged.Lexer.States = mergeStates(merged.Lexer.States, override.Lexer.States)
	}
	if override.Lexer.Classes != nil {
		merged.Lexer.Classes = mergeClassTable(merged.Lexer.Classes, override.Lexer.Classes)
	}
	if override.Lexer.Categories != nil {
		merged.Lexer.Categories = mergeStringMap(merged.Lexer.Categories, override.Lexer.Categories)
	}
	if override.Lexer.Skip != nil {
		merged.Lexer.Skip = mergeBoolMap(merged.Lexer.Skip, override.Lexer.Skip)
	}

	if len(override.BlockRules) > 0 {
		merged.BlockRules = override.BlockRules
	}
	if len(override.SymbolRules) > 0 {
		merged.SymbolRules = override.SymbolRules
	}
	if override.Indentation != nil {
		merged.Indentation = override.Indentation
	}
	if len(override.Extras) > 0 {
		merged.Extras = mergeExtras(merged.Extras, override.Extras)
	}

	return &merged
}

// mergeStates overlays override's state rule lists on top of base's,
// state name by state name; an override state replaces the base state
// of the same name wholesale rather than merging rule-by-rule.
func mergeStates(base, override map[string][]lexer.Rule) map[string][]lexer.Rule {
	merged := make(map[string][]lexer.Rule, len(base)+len(override))
	for name, rules := range base {
		merged[name] = rules
	}
	for name, rules := range override {
		merged[name] = rules
	}
	return merged
}

func mergeClassTable(base, override classes.Table) classes.Table {
	merged := make(classes.Table, len(base)+len(override))
	for name, expr := range base {
		merged[name] = expr
	}
	for name, expr := range override {
		merged[name] = expr
	}
	return merged
}

func mergeStringMap(base, override map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

func mergeBoolMap(base, override map[string]bool) map[string]bool {
	merged := make(map[string]bool, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

func mergeExtras(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
