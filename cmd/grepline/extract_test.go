package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetExtractFlags() {
	extractPatternID = ""
	extractLines = false
	extractColor = "never"
}

func TestRunExtractGroups(t *testing.T) {
	path := writeSampleFile(t)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	resetExtractFlags()

	err := runExtract(cmd, []string{`^From: (\S+)@(\S+)`, path})
	require.NoError(t, err)

	assert.Equal(t, "stephen.marquard\tuct.ac.za\nlouis\tmedia.berkeley.edu\n", buf.String())
}

func TestRunExtractWholeMatch(t *testing.T) {
	path := writeSampleFile(t)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	resetExtractFlags()

	err := runExtract(cmd, []string{`\$[0-9.]+`, path})
	require.NoError(t, err)

	assert.Equal(t, "$10.00\n", buf.String())
}

func TestRunExtractLines(t *testing.T) {
	path := writeSampleFile(t)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	resetExtractFlags()
	extractLines = true

	err := runExtract(cmd, []string{`\$[0-9.]+`, path})
	require.NoError(t, err)

	assert.Equal(t, "We just received $10.00 for cookies.\n", buf.String())
}

func TestRunExtractLinesMultibyte(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "prices.txt")
	err := os.WriteFile(path, []byte("é¢ price: cash only\ncard only\n"), 0644)
	require.NoError(t, err)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	resetExtractFlags()
	extractLines = true

	err = runExtract(cmd, []string{`cash`, path})
	require.NoError(t, err)

	// Highlight slicing must not mangle lines with multibyte runes
	// before the match.
	assert.Equal(t, "é¢ price: cash only\n", buf.String())
}

func TestRunExtractPatternID(t *testing.T) {
	path := writeSampleFile(t)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	resetExtractFlags()
	extractPatternID = "mail.from-hour"

	err := runExtract(cmd, []string{path})
	require.NoError(t, err)

	assert.Equal(t, "09\n", buf.String())
}

func TestRunExtractInvalidPattern(t *testing.T) {
	path := writeSampleFile(t)

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	resetExtractFlags()

	err := runExtract(cmd, []string{`[unbalanced`, path})
	require.Error(t, err)
}
