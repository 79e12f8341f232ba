package main

import (
	"bufio"
	"fmt"

	"github.com/grepline/grepline"
	"github.com/spf13/cobra"
)

var countPatternID string

var countCmd = &cobra.Command{
	Use:   "count [pattern] [file]",
	Short: "Count lines matching a pattern",
	Long: `Count the lines of a file that a regular expression matches.

The pattern and file may be given as arguments; missing values are
prompted for interactively. A file of "-" reads standard input.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCount,
}

func init() {
	countCmd.Flags().StringVar(&countPatternID, "pattern-id", "", "Use a builtin named pattern instead of a raw expression")
}

func runCount(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(cmd.InOrStdin())

	expr, file, err := resolveInputs(cmd, args, countPatternID, in)
	if err != nil {
		return err
	}

	m, err := grepline.New(expr)
	if err != nil {
		return err
	}

	name := file
	var n int
	if file == "-" {
		name = "stdin"
		n, err = m.CountReader(in)
	} else {
		n, err = m.CountFile(file)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s had %d lines that matched %s\n", name, n, expr)
	return nil
}
