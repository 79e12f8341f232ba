package main

import (
	"fmt"

	"github.com/grepline/grepline/pkg/pattern"
	"github.com/spf13/cobra"
)

var (
	patternsInclude string
	patternsExclude string
	patternsColor   string
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List builtin named patterns",
	Long: `List the builtin named patterns that count and extract accept via
--pattern-id. Include and exclude filters are comma-separated regular
expressions matched against pattern IDs and names.`,
	RunE: runPatterns,
}

func init() {
	patternsCmd.Flags().StringVar(&patternsInclude, "include", "", "Include patterns matching regex (comma-separated)")
	patternsCmd.Flags().StringVar(&patternsExclude, "exclude", "", "Exclude patterns matching regex (comma-separated)")
	patternsCmd.Flags().StringVar(&patternsColor, "color", "auto", "Colorize output: auto, always, never")
}

func runPatterns(cmd *cobra.Command, args []string) error {
	loader := pattern.NewLoader()
	patterns, err := loader.LoadBuiltin()
	if err != nil {
		return fmt.Errorf("loading builtin patterns: %w", err)
	}

	patterns, err = pattern.Filter(patterns, pattern.FilterConfig{
		Include: pattern.ParseList(patternsInclude),
		Exclude: pattern.ParseList(patternsExclude),
	})
	if err != nil {
		return err
	}

	st := newStyles(colorEnabled(patternsColor))
	out := cmd.OutOrStdout()

	for _, p := range patterns {
		fmt.Fprintf(out, "%s  %s\n", st.id.Sprint(p.ID), st.name.Sprint(p.Name))
		if p.Description != "" {
			fmt.Fprintf(out, "    %s\n", p.Description)
		}
		fmt.Fprintf(out, "    pattern: %s\n", p.Pattern)
	}

	if !quiet {
		fmt.Fprintf(out, "\n%d patterns\n", len(patterns))
	}
	return nil
}
