package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/grepline/grepline"
	"github.com/spf13/cobra"
)

var (
	extractPatternID string
	extractLines     bool
	extractColor     string
)

var extractCmd = &cobra.Command{
	Use:   "extract [pattern] [file]",
	Short: "Extract capture groups from matching lines",
	Long: `Print the capture groups of each line a regular expression matches,
one match per output line, groups separated by tabs. When the pattern has
no capture groups the whole match is printed. Lines with no match are
skipped.

With --lines the full matching line is printed instead, with the matched
span highlighted when color is enabled.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractPatternID, "pattern-id", "", "Use a builtin named pattern instead of a raw expression")
	extractCmd.Flags().BoolVar(&extractLines, "lines", false, "Print whole matching lines instead of groups")
	extractCmd.Flags().StringVar(&extractColor, "color", "auto", "Colorize matches: auto, always, never")
}

func runExtract(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(cmd.InOrStdin())

	expr, file, err := resolveInputs(cmd, args, extractPatternID, in)
	if err != nil {
		return err
	}

	m, err := grepline.New(expr)
	if err != nil {
		return err
	}

	var gs *grepline.GroupScanner
	if file == "-" {
		gs = m.ExtractReader(in)
	} else {
		gs, err = m.ExtractFile(file)
		if err != nil {
			return err
		}
	}
	defer gs.Close()

	st := newStyles(colorEnabled(extractColor))
	out := cmd.OutOrStdout()
	matched := 0

	for gs.Scan() {
		matched++
		if extractLines {
			line := gs.Line()
			r := gs.Result()
			fmt.Fprintf(out, "%s%s%s\n", line[:r.Start], st.match.Sprint(line[r.Start:r.End]), line[r.End:])
		} else {
			fmt.Fprintln(out, strings.Join(gs.Groups(), "\t"))
		}
	}
	if err := gs.Err(); err != nil {
		return err
	}

	if verbose && !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d lines matched %s\n", matched, expr)
	}
	return nil
}
