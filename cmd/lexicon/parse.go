package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

var parseCmd = &cobra.Command{
	Use:   "parse <triple>...",
	Short: "Print the canonical form of each triple",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showInput, err := cmd.Flags().GetBool("show-input")
		if err != nil {
			return fmt.Errorf("failed to get show-input flag: %w", err)
		}
		return canonicalize(cmd.OutOrStdout(), args, showInput)
	},
}

func init() {
	parseCmd.Flags().Bool("show-input", false, "print each input next to its canonical form")
}

// canonicalize prints the canonical form of every input and stops at the
// first one that fails to parse.
func canonicalize(out io.Writer, inputs []string, showInput bool) error {
	for _, in := range inputs {
		t, err := triple.Parse(in)
		if err != nil {
			return err
		}
		canonical := t.String()
		if !showInput {
			fmt.Fprintln(out, canonical)
			continue
		}
		marker := color.GreenString("=")
		if canonical != in {
			marker = color.YellowString("→")
		}
		fmt.Fprintf(out, "%s %s %s\n", in, marker, canonical)
	}
	return nil
}
