// Package classes compiles declarative character-class expressions into
// fast single-character predicates.
package classes

import "fmt"

// Kind identifies which variant of the character-class sum type an Expr is.
type Kind int

const (
	// Predefined selects one of the built-in classes by Name.
	Predefined Kind = iota
	// Set matches any character in Chars.
	Set
	// Range matches characters between Low and High inclusive.
	Range
	// Union matches any character accepted by one of Of.
	Union
	// Negate matches any non-empty character not accepted by Of[0].
	Negate
	// Named resolves Name against the profile's class table.
	Named
)

// Predefined class names.
const (
	Letter        = "letter"
	Upper         = "upper"
	Lower         = "lower"
	Digit         = "digit"
	HexDigit      = "hexDigit"
	Alphanumeric  = "alphanumeric"
	Whitespace    = "whitespace"
	Newline       = "newline"
	Any           = "any"
)

// Expr is a character-class expression, as read from profile data.
type Expr struct {
	Kind  Kind
	Name  string   // Predefined or Named
	Chars string   // Set
	Low   rune     // Range
	High  rune     // Range
	Of    []Expr   // Union (any length), Negate (length 1)
}

// Predicate reports whether a single character (as a one-rune string)
// belongs to the compiled class. It must return false on "".
type Predicate func(ch string) bool

// Table maps named-class references to their expressions, as declared by
// a profile.
type Table map[string]Expr

// Compile turns expr into a Predicate, resolving Named references lazily
// against table. An unresolved Named reference is a fatal configuration
// error.
func Compile(expr Expr, table Table) (Predicate, error) {
	switch expr.Kind {
	case Predefined:
		pred, ok := predefined[expr.Name]
		if !ok {
			return nil, fmt.Errorf("classes: unknown predefined class %q", expr.Name)
		}
		return pred, nil

	case Set:
		chars := expr.Chars
		return func(ch string) bool {
			if ch == "" {
				return false
			}
			return containsRune(chars, ch)
		}, nil

	case Range:
		low, high := expr.Low, expr.High
		return func(ch string) bool {
			if ch == "" {
				return false
			}
			r := []rune(ch)[0]
			return r >= low && r <= high
		}, nil

	case Union:
		preds := make([]Predicate, len(expr.Of))
		for i, sub := range expr.Of {
			p, err := Compile(sub, table)
			if err != nil {
				return nil, err
			}
			preds[i] = p
		}
		return func(ch string) bool {
			if ch == "" {
				return false
			}
			for _, p := range preds {
				if p(ch) {
					return true
				}
			}
			return false
		}, nil

	case Negate:
		if len(expr.Of) != 1 {
			return nil, fmt.Errorf("classes: negate requires exactly one inner class")
		}
		inner, err := Compile(expr.Of[0], table)
		if err != nil {
			return nil, err
		}
		return func(ch string) bool {
			if ch == "" {
				return false
			}
			return !inner(ch)
		}, nil

	case Named:
		named, ok := table[expr.Name]
		if !ok {
			return nil, fmt.Errorf("classes: unresolved named class reference %q", expr.Name)
		}
		return Compile(named, table)

	default:
		return nil, fmt.Errorf("classes: unknown expression kind %d", expr.Kind)
	}
}

func containsRune(set, ch string) bool {
	target := []rune(ch)[0]
	for _, r := range set {
		if r == target {
			return true
		}
	}
	return false
}

var predefined = map[string]Predicate{
	Letter: func(ch string) bool {
		if ch == "" {
			return false
		}
		r := []rune(ch)[0]
		return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= 0x00C0 && r <= 0x024F)
	},
	Upper: func(ch string) bool {
		if ch == "" {
			return false
		}
		r := []rune(ch)[0]
		return r >= 'A' && r <= 'Z'
	},
	Lower: func(ch string) bool {
		if ch == "" {
			return false
		}
		r := []rune(ch)[0]
		return r >= 'a' && r <= 'z'
	},
	Digit: func(ch string) bool {
		if ch == "" {
			return false
		}
		r := []rune(ch)[0]
		return r >= '0' && r <= '9'
	},
	HexDigit: func(ch string) bool {
		if ch == "" {
			return false
		}
		r := []rune(ch)[0]
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	},
	Alphanumeric: func(ch string) bool {
		if ch == "" {
			return false
		}
		r := []rune(ch)[0]
		isLetter := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= 0x00C0 && r <= 0x024F)
		isDigit := r >= '0' && r <= '9'
		return isLetter || isDigit
	},
	Whitespace: func(ch string) bool {
		return ch == " " || ch == "\t"
	},
	Newline: func(ch string) bool {
		return ch == "\n" || ch == "\r"
	},
	Any: func(ch string) bool {
		return ch != ""
	},
}

// IsWordChar reports whether ch is a "word" character for keyword
// boundary checks: ASCII letter, digit, underscore or dollar sign.
func IsWordChar(ch string) bool {
	if ch == "" {
		return false
	}
	r := []rune(ch)[0]
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '$'
}
