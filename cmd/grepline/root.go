package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "grepline",
	Short: "Grepline - count and extract lines matching a pattern",
	Long: `Grepline is a line-oriented pattern-matching utility. It reads a text
source line by line, counts the lines a regular expression matches, and can
extract the capture groups of each matching line.

Matching is delegated to the regexp2 engine: anchors bind to line start and
end, quantifiers are greedy by default with lazy variants via a ? suffix,
and character classes negate with a leading ^.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
