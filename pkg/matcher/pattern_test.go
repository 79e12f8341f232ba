package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	p, err := Compile(Config{Expr: `^From:`})
	require.NoError(t, err)
	assert.Equal(t, `^From:`, p.String())
}

func TestCompileInvalidPattern(t *testing.T) {
	_, err := Compile(Config{Expr: `[unbalanced`})
	require.Error(t, err)

	var invalidErr *InvalidPatternError
	require.True(t, errors.As(err, &invalidErr), "error should be *InvalidPatternError")
	assert.Equal(t, `[unbalanced`, invalidErr.Pattern)
	assert.Contains(t, err.Error(), `[unbalanced`, "error should report the offending pattern")
}

func TestMatchLineWholeMatch(t *testing.T) {
	p, err := Compile(Config{Expr: `\$[0-9.]+`})
	require.NoError(t, err)

	result, err := p.MatchLine("We just received $10.00 for cookies.")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, []string{"$10.00"}, result.Groups, "whole match when pattern has no groups")
}

func TestMatchLineCaptureGroups(t *testing.T) {
	p, err := Compile(Config{Expr: `^From .* ([0-9][0-9]):`})
	require.NoError(t, err)

	result, err := p.MatchLine("From stephen.marquard@uct.ac.za Sat Jan  5 09:14:16 2008")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, []string{"09"}, result.Groups)
}

func TestMatchLineNoMatch(t *testing.T) {
	p, err := Compile(Config{Expr: `^From:`})
	require.NoError(t, err)

	result, err := p.MatchLine("Subject: [sakai] svn commit")
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Nil(t, result.Groups)
}

func TestMatchLineOptionalGroup(t *testing.T) {
	p, err := Compile(Config{Expr: `status=(ok)?(fail)?`})
	require.NoError(t, err)

	result, err := p.MatchLine("status=fail")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	require.Len(t, result.Groups, 2)
	assert.Equal(t, "", result.Groups[0], "non-participating group yields empty string")
	assert.Equal(t, "fail", result.Groups[1])
}

func TestGreedyVersusLazy(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"greedy consumes maximum span", `<.+>`, "<a><b>"},
		{"lazy consumes minimum span", `<.+?>`, "<a>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(Config{Expr: tt.expr})
			require.NoError(t, err)

			result, err := p.MatchLine("<a><b>")
			require.NoError(t, err)
			require.True(t, result.Matched)
			assert.Equal(t, []string{tt.want}, result.Groups)
		})
	}
}

func TestAnchors(t *testing.T) {
	start, err := Compile(Config{Expr: `^From:`})
	require.NoError(t, err)

	result, err := start.MatchLine("  From: indented")
	require.NoError(t, err)
	assert.False(t, result.Matched, "^ anchors to line start")

	end, err := Compile(Config{Expr: `[0-9]+$`})
	require.NoError(t, err)

	result, err = end.MatchLine("revision 39772")
	require.NoError(t, err)
	assert.True(t, result.Matched)

	result, err = end.MatchLine("39772 revisions")
	require.NoError(t, err)
	assert.False(t, result.Matched, "$ anchors to line end")
}

func TestNegatedCharacterClass(t *testing.T) {
	p, err := Compile(Config{Expr: `^[^0-9]+$`})
	require.NoError(t, err)

	result, err := p.MatchLine("no digits here")
	require.NoError(t, err)
	assert.True(t, result.Matched)

	result, err = p.MatchLine("one 1 digit")
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestMatchLineByteOffsets(t *testing.T) {
	p, err := Compile(Config{Expr: `cash`})
	require.NoError(t, err)

	// Multibyte runes before the match: Start/End must be byte offsets
	// so slicing the line yields the matched text.
	line := "é¢ price: cash only"
	result, err := p.MatchLine(line)
	require.NoError(t, err)
	require.True(t, result.Matched)
	assert.Equal(t, "cash", line[result.Start:result.End])
	assert.Equal(t, []string{"cash"}, result.Groups)
}

func TestMatchLineByteOffsetsMultibyteMatch(t *testing.T) {
	p, err := Compile(Config{Expr: `caf(é)`})
	require.NoError(t, err)

	line := "über café menu"
	result, err := p.MatchLine(line)
	require.NoError(t, err)
	require.True(t, result.Matched)
	assert.Equal(t, "café", line[result.Start:result.End])
	assert.Equal(t, []string{"é"}, result.Groups)
}

func TestCompilePerlFallback(t *testing.T) {
	// Lookahead needs Perl-compatible mode when RE2 mode rejects it;
	// either way the match must succeed.
	p, err := Compile(Config{Expr: `From(?=:)`})
	require.NoError(t, err)

	result, err := p.MatchLine("From: stephen.marquard@uct.ac.za")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, []string{"From"}, result.Groups)
}
