// Package prefilter uses Aho-Corasick for efficient literal matching
// ahead of the regex engine. Literals required by a pattern are derived
// from the pattern text; lines missing any of them cannot match, so the
// engine is never consulted for them. The prefilter is transparent:
// match results are identical with and without it.
package prefilter

import (
	"strings"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"
)

// minLiteralLen is the shortest literal worth prefiltering on. Shorter
// literals hit too often to pay for the extra scan.
const minLiteralLen = 3

// Prefilter gates lines on literals the pattern requires.
type Prefilter struct {
	matcher  *ahocorasick.Matcher
	literals []string
}

// FromExpr derives required literals from a pattern expression and builds
// a prefilter over them. Returns nil when no usable literal exists
// (callers must treat nil as "always maybe").
func FromExpr(expr string) *Prefilter {
	literals := RequiredLiterals(expr)
	if len(literals) == 0 {
		return nil
	}
	return &Prefilter{
		matcher:  ahocorasick.NewStringMatcher(literals),
		literals: literals,
	}
}

// Literals returns the literals the prefilter requires, for inspection.
func (pf *Prefilter) Literals() []string {
	return pf.literals
}

// MaybeMatch reports whether line could match the pattern. False means
// the line definitely cannot match; true means the engine must decide.
func (pf *Prefilter) MaybeMatch(line []byte) bool {
	hits := pf.matcher.Match(line)
	// Every required literal must be present. The literals are unique and
	// Match reports each pattern index at most once, so a length check
	// suffices.
	return len(hits) == len(pf.literals)
}

// RequiredLiterals extracts literal substrings that any match of expr
// must contain. It is deliberately conservative: whenever a construct
// makes the analysis uncertain (alternation, inline flags, backreference)
// it gives up and returns nil, and a quantifier that can make its operand
// vanish discards the operand's literals.
func RequiredLiterals(expr string) []string {
	var literals []string
	var run strings.Builder

	// Literal runs collected inside a group are discarded wholesale if
	// the group turns out to be optional, so remember how many literals
	// existed when each group opened.
	type groupMark struct{ literalLen, runLen int }
	var groups []groupMark

	flush := func() {
		if run.Len() >= minLiteralLen {
			literals = append(literals, run.String())
		}
		run.Reset()
	}

	// dropLast removes the last rune of the run: the preceding
	// single-rune unit is governed by a quantifier that may repeat or
	// erase it, so only the prefix before it is guaranteed.
	dropLast := func() {
		s := run.String()
		run.Reset()
		if s == "" {
			return
		}
		_, size := utf8.DecodeLastRuneInString(s)
		run.WriteString(s[:len(s)-size])
	}

	i := 0
	for i < len(expr) {
		c := expr[i]
		switch c {
		case '|':
			// Either branch may match; nothing is required.
			return nil
		case '\\':
			if i+1 >= len(expr) {
				return nil // trailing backslash, not a valid pattern
			}
			next := expr[i+1]
			switch {
			case next >= '1' && next <= '9':
				return nil // backreference
			case (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z'):
				// Class escape (\d, \w, \s, \b, ...): matches a set,
				// not a fixed character.
				flush()
			default:
				run.WriteByte(next)
			}
			i += 2
			continue
		case '[':
			j := skipClass(expr, i)
			if j < 0 {
				return nil // unbalanced class; Compile will reject it
			}
			flush()
			i = j
			continue
		case '(':
			if i+1 < len(expr) && expr[i+1] == '?' {
				// Inline flags or lookaround change matching semantics.
				return nil
			}
			flush()
			groups = append(groups, groupMark{literalLen: len(literals)})
			i++
			continue
		case ')':
			flush()
			if len(groups) == 0 {
				return nil
			}
			mark := groups[len(groups)-1]
			groups = groups[:len(groups)-1]
			// A quantifier on the group may erase everything inside it.
			if i+1 < len(expr) && isQuantifier(expr[i+1]) {
				literals = literals[:mark.literalLen]
			}
			i++
			continue
		case '*', '?':
			dropLast()
			flush()
			i++
			continue
		case '{':
			// Counted repetition; treat like * without parsing bounds.
			j := strings.IndexByte(expr[i:], '}')
			if j < 0 {
				return nil
			}
			dropLast()
			flush()
			i += j + 1
			continue
		case '+':
			// At least one occurrence: the preceding character is
			// required, but the run cannot extend past it contiguously.
			flush()
			i++
			continue
		case '.', '^', '$':
			flush()
			i++
			continue
		default:
			run.WriteByte(c)
			i++
			continue
		}
	}
	flush()
	return dedupe(literals)
}

// dedupe drops repeated literals, preserving order. A pattern like
// `From:.*From:` requires the same literal twice, but presence checking
// sees it once; duplicates would make MaybeMatch reject every line.
func dedupe(literals []string) []string {
	if len(literals) < 2 {
		return literals
	}
	seen := make(map[string]struct{}, len(literals))
	out := literals[:0]
	for _, lit := range literals {
		if _, ok := seen[lit]; ok {
			continue
		}
		seen[lit] = struct{}{}
		out = append(out, lit)
	}
	return out
}

func isQuantifier(c byte) bool {
	return c == '*' || c == '+' || c == '?' || c == '{'
}

// skipClass returns the index just past the ']' closing the class that
// opens at expr[start], or -1 if the class is unbalanced.
func skipClass(expr string, start int) int {
	i := start + 1
	if i < len(expr) && expr[i] == '^' {
		i++
	}
	// A ']' immediately after the opening (or the negation) is a literal
	// member of the class.
	if i < len(expr) && expr[i] == ']' {
		i++
	}
	for i < len(expr) {
		switch expr[i] {
		case '\\':
			i += 2
		case ']':
			return i + 1
		default:
			i++
		}
	}
	return -1
}
