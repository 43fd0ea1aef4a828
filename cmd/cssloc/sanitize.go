package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stylekit/go-cssloc/scss"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [file]",
	Short: "Replace quote characters inside inline comments with spaces",
	Long: `sanitize applies the pre-parse quote workaround to a stylesheet and
writes the result to stdout. The output has exactly the same length as the
input. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), scss.SanitizeInlineComments(string(data)))
		return err
	},
}
