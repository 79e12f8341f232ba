package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/grepline/grepline/pkg/pattern"
	"github.com/spf13/cobra"
)

// resolveInputs determines the pattern expression and source file for a
// command invocation. Positional args win; missing values are prompted
// interactively on the command's input. When patternID is set the
// expression comes from the builtin pattern library and the only
// positional arg is the file.
func resolveInputs(cmd *cobra.Command, args []string, patternID string, in *bufio.Reader) (expr, file string, err error) {
	rest := args

	switch {
	case patternID != "":
		p, err := pattern.NewLoader().Lookup(patternID)
		if err != nil {
			return "", "", err
		}
		expr = p.Pattern
	case len(rest) > 0:
		expr = rest[0]
		rest = rest[1:]
	default:
		expr, err = promptLine(cmd, in, "Enter a regular expression: ")
		if err != nil {
			return "", "", err
		}
	}

	if len(rest) > 0 {
		file = rest[0]
	} else {
		file, err = promptLine(cmd, in, "Enter file: ")
		if err != nil {
			return "", "", err
		}
	}

	return expr, file, nil
}

// promptLine prints prompt and reads one line of input, terminator
// stripped.
func promptLine(cmd *cobra.Command, in *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("no input given")
	}
	return line, nil
}
