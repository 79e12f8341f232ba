package main

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// styles holds color formatters for CLI output.
type styles struct {
	id      *color.Color
	name    *color.Color
	match   *color.Color
	heading *color.Color
}

// newStyles creates color formatters.
// enabled=false respects --color=never and the NO_COLOR env var.
func newStyles(enabled bool) *styles {
	s := &styles{
		id:      color.New(color.FgHiGreen),
		name:    color.New(color.Bold, color.FgHiBlue),
		match:   color.New(color.FgYellow),
		heading: color.New(color.Bold),
	}

	if !enabled {
		s.id.DisableColor()
		s.name.DisableColor()
		s.match.DisableColor()
		s.heading.DisableColor()
	}

	return s
}

// colorEnabled resolves a --color mode (auto, always, never) against the
// terminal and the NO_COLOR convention.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
