// Package matcher provides line-oriented pattern matching: it reads a text
// source line by line and reports which lines satisfy a compiled pattern,
// counting matches and extracting capture groups.
//
// Matching is delegated entirely to the regexp2 engine; no matching
// algorithm is implemented here. Greedy/lazy quantifier semantics, anchor
// semantics, and character-class semantics are the engine's and are
// preserved exactly. Each line is matched independently, so ^ and $ bind
// to line start and end.
package matcher

import (
	"time"

	"github.com/dlclark/regexp2"
	"github.com/grepline/grepline/pkg/prefilter"
)

// DefaultMatchTimeout bounds a single line match to protect against
// catastrophic backtracking in Perl-compatible mode.
const DefaultMatchTimeout = 5 * time.Second

// Config for pattern compilation.
type Config struct {
	// Expr is the pattern text to compile.
	Expr string

	// MatchTimeout overrides DefaultMatchTimeout when positive.
	MatchTimeout time.Duration

	// DisablePrefilter turns off the literal prefilter. Results are
	// identical either way; this exists for testing and measurement.
	DisablePrefilter bool
}

// Pattern is a compiled, immutable pattern. It is safe for concurrent
// scans as long as each scan holds its own reader.
type Pattern struct {
	expr string
	re   *regexp2.Regexp
	pre  *prefilter.Prefilter
}

// MatchResult is the outcome of matching one line.
type MatchResult struct {
	Matched bool
	// Groups holds the captured substrings when the pattern has capture
	// groups (empty string for a group that did not participate), or the
	// whole match when it has none. Nil when Matched is false.
	Groups []string
	// Start and End delimit the whole match within the line, as byte
	// offsets suitable for slicing the line.
	Start, End int
}

// Compile compiles a pattern per the config.
// Returns *InvalidPatternError if the expression cannot be compiled.
func Compile(cfg Config) (*Pattern, error) {
	// Try RE2 mode first (safer, no backtracking), then fall back to
	// Perl-compatible mode for constructs RE2 rejects.
	re, err := regexp2.Compile(cfg.Expr, regexp2.RE2)
	if err != nil {
		re, err = regexp2.Compile(cfg.Expr, regexp2.None)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: cfg.Expr, Err: err}
		}
	}

	timeout := cfg.MatchTimeout
	if timeout <= 0 {
		timeout = DefaultMatchTimeout
	}
	re.MatchTimeout = timeout

	p := &Pattern{expr: cfg.Expr, re: re}
	if !cfg.DisablePrefilter {
		p.pre = prefilter.FromExpr(cfg.Expr)
	}
	return p, nil
}

// String returns the pattern text as supplied to Compile.
func (p *Pattern) String() string {
	return p.expr
}

// MatchLine matches one line (terminator already stripped).
func (p *Pattern) MatchLine(line string) (MatchResult, error) {
	if p.pre != nil && !p.pre.MaybeMatch([]byte(line)) {
		return MatchResult{}, nil
	}

	m, err := p.re.FindStringMatch(line)
	if err != nil {
		return MatchResult{}, err
	}
	if m == nil {
		return MatchResult{}, nil
	}

	// regexp2 reports rune offsets; callers slice lines by byte.
	result := MatchResult{
		Matched: true,
		Start:   runeOffsetToByte(line, m.Index),
		End:     runeOffsetToByte(line, m.Index+m.Length),
	}

	groups := m.Groups()
	if len(groups) > 1 {
		for _, g := range groups[1:] {
			if len(g.Captures) > 0 {
				result.Groups = append(result.Groups, g.Captures[0].String())
			} else {
				result.Groups = append(result.Groups, "")
			}
		}
	} else {
		result.Groups = []string{m.String()}
	}

	return result, nil
}

// runeOffsetToByte converts a rune offset within s to a byte offset.
func runeOffsetToByte(s string, runeOffset int) int {
	if runeOffset <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == runeOffset {
			return i
		}
		n++
	}
	return len(s)
}
