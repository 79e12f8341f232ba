package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// FilterConfig specifies include and exclude expressions for pattern
// filtering. Expressions are matched against pattern IDs and names.
type FilterConfig struct {
	Include []string // only matching patterns included (empty = all)
	Exclude []string // matching patterns excluded
}

// ParseList splits a comma-separated string into individual expressions,
// trimming whitespace and dropping empties.
func ParseList(s string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Filter applies include and exclude expressions to patterns. Include is
// applied first, then exclude. Returns an error if any expression is an
// invalid regex.
func Filter(patterns []*Pattern, config FilterConfig) ([]*Pattern, error) {
	include, err := compileAll(config.Include)
	if err != nil {
		return nil, err
	}
	exclude, err := compileAll(config.Exclude)
	if err != nil {
		return nil, err
	}

	var result []*Pattern
	for _, p := range patterns {
		if len(include) > 0 && !anyMatch(include, p) {
			continue
		}
		if anyMatch(exclude, p) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func compileAll(exprs []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression %q: %w", expr, err)
		}
		res = append(res, re)
	}
	return res, nil
}

func anyMatch(res []*regexp.Regexp, p *Pattern) bool {
	for _, re := range res {
		if re.MatchString(p.ID) || re.MatchString(p.Name) {
			return true
		}
	}
	return false
}
