package main

import (
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "cssloc",
	Short: "Annotate stylesheets with absolute source offsets",
	Long: `cssloc parses SCSS-flavoured stylesheets and attaches absolute byte
offsets to every node, derived from the parser's line/column positions.
Quote characters inside // comments are neutralized before parsing so they
cannot desynchronize position tracking; the original text is kept to
recover comments verbatim.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(offsetsCmd)
	rootCmd.AddCommand(sanitizeCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
