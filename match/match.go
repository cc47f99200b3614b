// Package match compiles declarative matcher specifications into scan
// functions that measure, without consuming, how many bytes of source a
// rule would match at the reader's current position.
package match

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/aledsdavies/codelang/classes"
	"github.com/aledsdavies/codelang/reader"
)

// Kind identifies which variant of the matcher sum type a Spec is.
type Kind int

const (
	StringMatch Kind = iota
	Keywords
	Delimited
	Line
	CharSequence
	Number
	Sequence
	Regex
)

// Spec is a matcher specification, as read from profile data.
type Spec struct {
	Kind Kind

	// StringMatch
	Literals []string // single literal is a one-element slice

	// Keywords
	Words []string

	// Delimited
	Open      string
	Close     string
	Escape    string // single character, "" disables
	Multiline bool
	Nested    bool

	// Line
	Start string

	// CharSequence
	First classes.Expr
	Rest  *classes.Expr // nil means "first char only"

	// Number
	NumberConfig NumberConfig

	// Sequence
	Subs []Spec

	// Regex
	Pattern string
}

// NumberConfig configures the numeric-literal matcher.
type NumberConfig struct {
	Hex            bool
	Octal          bool
	Binary         bool
	Float          bool   // allow a leading `.digit`; fractional and exponent parts are scanned either way
	DigitSeparator string // e.g. "_"; "" disables
	Suffixes       []string
}

// Scanner reports, without advancing r, how many bytes of source a
// matcher would consume starting at r's current position (the unit
// reader.AdvanceN takes). A return of 0 means no match.
type Scanner func(r *reader.Reader) int

// Compile turns spec into a Scanner. classTable resolves named character
// classes referenced by CharSequence specs embedded in this matcher.
func Compile(spec Spec, classTable classes.Table) (Scanner, error) {
	switch spec.Kind {
	case StringMatch:
		return compileString(spec)
	case Keywords:
		return compileKeywords(spec)
	case Delimited:
		return compileDelimited(spec)
	case Line:
		return compileLine(spec)
	case CharSequence:
		return compileCharSequence(spec, classTable)
	case Number:
		return compileNumber(spec)
	case Sequence:
		return compileSequence(spec, classTable)
	case Regex:
		return compileRegex(spec)
	default:
		return nil, fmt.Errorf("match: unknown matcher kind %d", spec.Kind)
	}
}

func compileString(spec Spec) (Scanner, error) {
	if len(spec.Literals) == 0 {
		return nil, fmt.Errorf("match: string matcher requires at least one literal")
	}
	literals := append([]string(nil), spec.Literals...)
	sort.Slice(literals, func(i, j int) bool { return len(literals[i]) > len(literals[j]) })
	return func(r *reader.Reader) int {
		for _, lit := range literals {
			if r.MatchLiteral(lit) {
				return len(lit)
			}
		}
		return 0
	}, nil
}

func compileKeywords(spec Spec) (Scanner, error) {
	if len(spec.Words) == 0 {
		return nil, fmt.Errorf("match: keywords matcher requires at least one word")
	}
	words := append([]string(nil), spec.Words...)
	sort.Slice(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	return func(r *reader.Reader) int {
		for _, w := range words {
			if !r.MatchLiteral(w) {
				continue
			}
			before := r.Peek(-1)
			if before != "" && classes.IsWordChar(before) {
				continue
			}
			after := r.Peek(len(w))
			if after != "" && classes.IsWordChar(after) {
				continue
			}
			return len(w)
		}
		return 0
	}, nil
}

func compileDelimited(spec Spec) (Scanner, error) {
	if spec.Open == "" || spec.Close == "" {
		return nil, fmt.Errorf("match: delimited matcher requires open and close literals")
	}
	open, close_, escape := spec.Open, spec.Close, spec.Escape
	multiline, nested := spec.Multiline, spec.Nested

	return func(r *reader.Reader) int {
		if !r.MatchLiteral(open) {
			return 0
		}
		startOffset := r.Position().Offset
		mark := r.Save()

		r.AdvanceN(len(open))
		depth := 1

		for {
			if r.AtEOF() {
				r.Restore(mark)
				return 0
			}
			if escape != "" && r.MatchLiteral(escape) {
				r.AdvanceN(1)
				if !r.AtEOF() {
					r.AdvanceN(1)
				}
				continue
			}
			if nested && r.MatchLiteral(open) {
				depth++
				r.AdvanceN(len(open))
				continue
			}
			if r.MatchLiteral(close_) {
				depth--
				r.AdvanceN(len(close_))
				if depth == 0 {
					n := r.Position().Offset - startOffset
					r.Restore(mark)
					return n
				}
				continue
			}
			if !multiline {
				ch := r.Peek(0)
				if ch == "\n" || ch == "\r" {
					r.Restore(mark)
					return 0
				}
			}
			r.AdvanceN(1)
		}
	}, nil
}

func compileLine(spec Spec) (Scanner, error) {
	if spec.Start == "" {
		return nil, fmt.Errorf("match: line matcher requires a start literal")
	}
	start := spec.Start
	return func(r *reader.Reader) int {
		if !r.MatchLiteral(start) {
			return 0
		}
		rest := r.PeekN(len(r.Source()))[len(start):]
		if i := strings.IndexAny(rest, "\n\r"); i >= 0 {
			return len(start) + i
		}
		return len(start) + len(rest)
	}, nil
}

func compileCharSequence(spec Spec, classTable classes.Table) (Scanner, error) {
	first, err := classes.Compile(spec.First, classTable)
	if err != nil {
		return nil, err
	}
	var rest classes.Predicate
	if spec.Rest != nil {
		rest, err = classes.Compile(*spec.Rest, classTable)
		if err != nil {
			return nil, err
		}
	}
	return func(r *reader.Reader) int {
		ch := r.Peek(0)
		if !first(ch) {
			return 0
		}
		size := len(ch)
		if rest == nil {
			return size
		}
		for i := 1; ; i++ {
			ch = r.Peek(i)
			if !rest(ch) {
				break
			}
			size += len(ch)
		}
		return size
	}, nil
}

func compileNumber(spec Spec) (Scanner, error) {
	cfg := spec.NumberConfig
	return func(r *reader.Reader) int {
		return scanNumber(r, cfg)
	}, nil
}

func scanNumber(r *reader.Reader, cfg NumberConfig) int {
	isDigit := func(ch string) bool { return ch >= "0" && ch <= "9" }
	isHex := func(ch string) bool {
		return isDigit(ch) || (ch >= "a" && ch <= "f") || (ch >= "A" && ch <= "F")
	}
	isOctal := func(ch string) bool { return ch >= "0" && ch <= "7" }
	isBinary := func(ch string) bool { return ch == "0" || ch == "1" }
	isSep := func(ch string) bool { return cfg.DigitSeparator != "" && ch == cfg.DigitSeparator }

	consumeDigits := func(n int, isDigitFn func(string) bool) (int, int) {
		count := 0
		for {
			ch := r.Peek(n)
			if isDigitFn(ch) {
				n++
				count++
				continue
			}
			if isSep(ch) && isDigitFn(r.Peek(n+1)) {
				n++
				continue
			}
			break
		}
		return n, count
	}

	if (cfg.Hex || cfg.Octal || cfg.Binary) && r.Peek(0) == "0" {
		c1 := r.Peek(1)
		switch {
		case cfg.Hex && (c1 == "x" || c1 == "X"):
			n, count := consumeDigits(2, isHex)
			if count == 0 {
				return 0
			}
			return n + consumeSuffix(r, n, cfg.Suffixes)
		case cfg.Octal && (c1 == "o" || c1 == "O"):
			n, count := consumeDigits(2, isOctal)
			if count == 0 {
				return 0
			}
			return n + consumeSuffix(r, n, cfg.Suffixes)
		case cfg.Binary && (c1 == "b" || c1 == "B"):
			n, count := consumeDigits(2, isBinary)
			if count == 0 {
				return 0
			}
			return n + consumeSuffix(r, n, cfg.Suffixes)
		}
	}

	// Decimal.
	n := 0
	start := n
	n, intCount := consumeDigits(n, isDigit)
	if intCount == 0 {
		if cfg.Float && r.Peek(n) == "." && isDigit(r.Peek(n+1)) {
			// leading .digit, handled below
		} else {
			return 0
		}
	}

	if r.Peek(n) == "." && isDigit(r.Peek(n+1)) {
		n++ // consume the dot only because a digit follows
		n, _ = consumeDigits(n, isDigit)
	}

	if ch := r.Peek(n); ch == "e" || ch == "E" {
		save := n
		m := n + 1
		if next := r.Peek(m); next == "+" || next == "-" {
			m++
		}
		mm, expCount := consumeDigits(m, isDigit)
		if expCount > 0 {
			n = mm
		} else {
			n = save
		}
	}

	if n == start {
		return 0
	}
	return n + consumeSuffix(r, n, cfg.Suffixes)
}

func consumeSuffix(r *reader.Reader, at int, suffixes []string) int {
	if len(suffixes) == 0 {
		return 0
	}
	sorted := append([]string(nil), suffixes...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for _, suf := range sorted {
		if matchesAt(r, at, suf) {
			return len(suf)
		}
	}
	return 0
}

func matchesAt(r *reader.Reader, at int, literal string) bool {
	for i := 0; i < len(literal); i++ {
		if r.Peek(at+i) != string(literal[i]) {
			return false
		}
	}
	return true
}

func compileSequence(spec Spec, classTable classes.Table) (Scanner, error) {
	subs := make([]Scanner, len(spec.Subs))
	for i, sub := range spec.Subs {
		s, err := Compile(sub, classTable)
		if err != nil {
			return nil, err
		}
		subs[i] = s
	}
	return func(r *reader.Reader) int {
		mark := r.Save()
		total := 0
		ok := true
		for _, s := range subs {
			n := s(r)
			if n == 0 {
				ok = false
				break
			}
			r.AdvanceN(n)
			total += n
		}
		r.Restore(mark)
		if !ok {
			return 0
		}
		return total
	}, nil
}

func compileRegex(spec Spec) (Scanner, error) {
	re, err := regexp.Compile(`\A(?:` + spec.Pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("match: invalid regex %q: %w", spec.Pattern, err)
	}
	return func(r *reader.Reader) int {
		tail := r.PeekN(len(r.Source()))
		loc := re.FindStringIndex(tail)
		if loc == nil {
			return 0
		}
		return loc[1]
	}, nil
}
