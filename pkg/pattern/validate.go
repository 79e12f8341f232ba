package pattern

import (
	"fmt"

	"github.com/grepline/grepline/pkg/matcher"
)

// Validate checks pattern consistency and required fields, compiles the
// expression, and verifies that every example matches and every negative
// example does not.
func Validate(p *Pattern) error {
	if p == nil {
		return fmt.Errorf("pattern is nil")
	}

	if p.ID == "" {
		return fmt.Errorf("pattern ID is required")
	}
	if p.Name == "" {
		return fmt.Errorf("pattern name is required")
	}
	if p.Pattern == "" {
		return fmt.Errorf("pattern expression is required")
	}

	compiled, err := matcher.Compile(matcher.Config{Expr: p.Pattern})
	if err != nil {
		return fmt.Errorf("pattern %s: %w", p.ID, err)
	}

	for _, example := range p.Examples {
		result, err := compiled.MatchLine(example)
		if err != nil {
			return fmt.Errorf("pattern %s example %q: %w", p.ID, example, err)
		}
		if !result.Matched {
			return fmt.Errorf("pattern %s does not match its example %q", p.ID, example)
		}
	}

	for _, example := range p.NegativeExamples {
		result, err := compiled.MatchLine(example)
		if err != nil {
			return fmt.Errorf("pattern %s negative example %q: %w", p.ID, example, err)
		}
		if result.Matched {
			return fmt.Errorf("pattern %s matches its negative example %q", p.ID, example)
		}
	}

	return nil
}
