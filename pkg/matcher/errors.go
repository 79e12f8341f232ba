package matcher

import "fmt"

// InvalidPatternError reports a pattern that failed to compile.
// It is terminal for the invocation: the caller should report and exit,
// not retry.
type InvalidPatternError struct {
	Pattern string // the offending pattern text
	Err     error  // underlying engine error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// SourceUnavailableError reports a text source that could not be opened
// or read. Terminal for the invocation, like InvalidPatternError.
type SourceUnavailableError struct {
	Source string // filename or source description
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}
