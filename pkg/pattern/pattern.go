// Package pattern provides a library of named, reusable line patterns
// loaded from YAML files, with a set of builtins embedded in the binary.
package pattern

// Pattern is a named pattern with metadata.
type Pattern struct {
	ID               string   // e.g., "mail.from-header"
	Name             string   // human-readable name
	Pattern          string   // regex pattern
	Description      string   // optional
	Examples         []string // lines the pattern must match
	NegativeExamples []string // lines the pattern must not match
}
