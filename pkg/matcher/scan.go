package matcher

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineSize caps a single line at 1 MiB; longer lines fail the scan
// rather than silently truncating.
const maxLineSize = 1 << 20

// Count scans r line by line and returns the tally of lines the pattern
// matches. The source is read once, read-only; no line is counted twice
// and input order does not affect the result.
// Read failures are reported as *SourceUnavailableError.
func (p *Pattern) Count(r io.Reader) (int, error) {
	return p.count(r, "input")
}

// CountFile opens path and counts matching lines.
// Returns *SourceUnavailableError if the file cannot be opened or read.
func (p *Pattern) CountFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &SourceUnavailableError{Source: path, Err: err}
	}
	defer f.Close()
	return p.count(f, path)
}

func (p *Pattern) count(r io.Reader, source string) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	tally := 0
	lineno := 0
	for scanner.Scan() {
		lineno++
		result, err := p.MatchLine(scanner.Text())
		if err != nil {
			return 0, fmt.Errorf("matching line %d: %w", lineno, err)
		}
		if result.Matched {
			tally++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, &SourceUnavailableError{Source: source, Err: err}
	}
	return tally, nil
}

// GroupScanner lazily yields the capture groups of each matching line,
// in source order. Use like bufio.Scanner:
//
//	gs := pattern.Extract(r)
//	for gs.Scan() {
//	    groups := gs.Groups()
//	    ...
//	}
//	if err := gs.Err(); err != nil { ... }
//
// Stopping consumption stops reading the source. A scanner is not
// restartable; re-invoke Extract with a fresh reader to scan again.
type GroupScanner struct {
	p       *Pattern
	scanner *bufio.Scanner
	source  string
	closer  io.Closer
	lineno  int
	groups  []string
	line    string
	result  MatchResult
	err     error
	done    bool
}

// Extract returns a GroupScanner over r. For each matching line it yields
// the captured groups, or the whole match when the pattern has no groups;
// non-matching lines are skipped.
func (p *Pattern) Extract(r io.Reader) *GroupScanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &GroupScanner{p: p, scanner: scanner, source: "input"}
}

// ExtractFile opens path and returns a GroupScanner over its lines.
// The file is closed when the scanner is exhausted or Close is called.
// Returns *SourceUnavailableError if the file cannot be opened.
func (p *Pattern) ExtractFile(path string) (*GroupScanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceUnavailableError{Source: path, Err: err}
	}
	gs := p.Extract(f)
	gs.source = path
	gs.closer = f
	return gs, nil
}

// Scan advances to the next matching line. It returns false when the
// source is exhausted or an error occurred; Err distinguishes the two.
func (gs *GroupScanner) Scan() bool {
	if gs.done {
		return false
	}
	for gs.scanner.Scan() {
		gs.lineno++
		result, err := gs.p.MatchLine(gs.scanner.Text())
		if err != nil {
			gs.fail(fmt.Errorf("matching line %d: %w", gs.lineno, err))
			return false
		}
		if result.Matched {
			gs.groups = result.Groups
			gs.line = gs.scanner.Text()
			gs.result = result
			return true
		}
	}
	if err := gs.scanner.Err(); err != nil {
		gs.fail(&SourceUnavailableError{Source: gs.source, Err: err})
		return false
	}
	gs.finish()
	return false
}

// Groups returns the captures of the current match. Valid until the next
// call to Scan.
func (gs *GroupScanner) Groups() []string {
	return gs.groups
}

// Line returns the full text of the current matching line.
func (gs *GroupScanner) Line() string {
	return gs.line
}

// Result returns the full MatchResult for the current matching line.
func (gs *GroupScanner) Result() MatchResult {
	return gs.result
}

// Err returns the first error encountered while scanning, nil at EOF.
func (gs *GroupScanner) Err() error {
	return gs.err
}

// Close releases the underlying source. Only needed when abandoning a
// file-backed scanner before exhausting it.
func (gs *GroupScanner) Close() error {
	gs.done = true
	if gs.closer == nil {
		return nil
	}
	c := gs.closer
	gs.closer = nil
	return c.Close()
}

func (gs *GroupScanner) fail(err error) {
	gs.err = err
	gs.finish()
}

func (gs *GroupScanner) finish() {
	gs.done = true
	if gs.closer != nil {
		gs.closer.Close()
		gs.closer = nil
	}
}
