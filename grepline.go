// Package grepline provides a line-oriented pattern-matching library.
//
// Grepline reads a text source line by line and reports which lines
// satisfy a pattern, counting matches and extracting capture groups.
// Matching is delegated to the regexp2 engine.
//
// # Basic Usage
//
// Create a matcher for a pattern and count matching lines:
//
//	m, err := grepline.New(`^From:`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	n, err := m.CountFile("mbox-short.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d lines matched\n", n)
//
// # Extracting Groups
//
// Iterate the capture groups of each matching line lazily:
//
//	gs, err := m.ExtractFile("mbox-short.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for gs.Scan() {
//	    fmt.Println(gs.Groups())
//	}
//	if err := gs.Err(); err != nil {
//	    log.Fatal(err)
//	}
package grepline

import (
	"io"
	"time"

	"github.com/grepline/grepline/pkg/matcher"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/grepline/grepline" without subpackages.
type (
	// MatchResult is the outcome of matching one line.
	MatchResult = matcher.MatchResult

	// GroupScanner lazily yields capture groups of matching lines.
	GroupScanner = matcher.GroupScanner

	// InvalidPatternError reports a pattern that failed to compile.
	InvalidPatternError = matcher.InvalidPatternError

	// SourceUnavailableError reports a source that could not be read.
	SourceUnavailableError = matcher.SourceUnavailableError
)

// Matcher counts and extracts matching lines for one compiled pattern.
// A Matcher is immutable after New; concurrent scans over separate
// readers are independent.
type Matcher struct {
	pattern *matcher.Pattern
}

// Option configures a Matcher.
type Option func(*matcher.Config)

// WithMatchTimeout bounds a single line match. Default is 5 seconds.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *matcher.Config) {
		c.MatchTimeout = d
	}
}

// WithoutPrefilter disables the literal prefilter. Results are identical
// either way; useful for measurement.
func WithoutPrefilter() Option {
	return func(c *matcher.Config) {
		c.DisablePrefilter = true
	}
}

// New compiles expr into a Matcher.
// Returns *InvalidPatternError if the expression cannot be compiled.
func New(expr string, opts ...Option) (*Matcher, error) {
	cfg := matcher.Config{Expr: expr}
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := matcher.Compile(cfg)
	if err != nil {
		return nil, err
	}
	return &Matcher{pattern: p}, nil
}

// Pattern returns the pattern text as supplied to New.
func (m *Matcher) Pattern() string {
	return m.pattern.String()
}

// CountReader counts lines in r that the pattern matches.
func (m *Matcher) CountReader(r io.Reader) (int, error) {
	return m.pattern.Count(r)
}

// CountFile counts matching lines in the named file.
// Returns *SourceUnavailableError if the file cannot be opened or read.
func (m *Matcher) CountFile(path string) (int, error) {
	return m.pattern.CountFile(path)
}

// ExtractReader returns a lazy scanner over the capture groups of each
// matching line in r.
func (m *Matcher) ExtractReader(r io.Reader) *GroupScanner {
	return m.pattern.Extract(r)
}

// ExtractFile returns a lazy scanner over the capture groups of each
// matching line in the named file.
func (m *Matcher) ExtractFile(path string) (*GroupScanner, error) {
	return m.pattern.ExtractFile(path)
}
