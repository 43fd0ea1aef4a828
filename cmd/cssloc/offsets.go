package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cssloc "github.com/stylekit/go-cssloc"
	"github.com/stylekit/go-cssloc/scss"
)

var showValues bool

var offsetsCmd = &cobra.Command{
	Use:   "offsets <file>",
	Short: "Print every node of a stylesheet with its byte offsets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		st, err := cssloc.Parse(string(data))
		if err != nil {
			return err
		}
		if noColor {
			color.NoColor = true
		}
		printOffsets(cmd, st)
		return nil
	},
}

func init() {
	offsetsCmd.Flags().BoolVar(&showValues, "values", false, "Include value sub-tree nodes")
}

func printOffsets(cmd *cobra.Command, st *cssloc.Stylesheet) {
	out := cmd.OutOrStdout()
	scss.Walk(st.Root, func(n *scss.Node) bool {
		fmt.Fprintf(out, "%s %s", color.CyanString("%-8s", n.Type), color.YellowString("%s", formatRange(n.Source)))
		if s, ok := st.Slice(n.Source); ok {
			fmt.Fprintf(out, "  %q", clip(s, 48))
		}
		fmt.Fprintln(out)
		if showValues {
			scss.WalkValue(n.ValueRoot, func(v *scss.ValueNode) bool {
				fmt.Fprintf(out, "  %s %s", color.GreenString("%-13s", v.Kind), color.YellowString("%s", formatRange(v.Source)))
				if s, ok := st.Slice(v.Source); ok {
					fmt.Fprintf(out, "  %q", clip(s, 48))
				}
				fmt.Fprintln(out)
				return true
			})
		}
		return true
	})
}

func formatRange(src *scss.Source) string {
	if src == nil {
		return "[?..?)"
	}
	start, end := "?", "?"
	if src.StartOffset != scss.NoOffset {
		start = strconv.Itoa(src.StartOffset)
	}
	if src.EndOffset != scss.NoOffset {
		end = strconv.Itoa(src.EndOffset)
	}
	return "[" + start + ".." + end + ")"
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
