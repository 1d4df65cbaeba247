package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

var vocabularies = map[string]func() []string{
	"architecture":     func() []string { return names(triple.Architectures()) },
	"vendor":           func() []string { return names(triple.Vendors()) },
	"operating-system": func() []string { return names(triple.OperatingSystems()) },
	"environment":      func() []string { return names(triple.Environments()) },
	"binary-format":    func() []string { return names(triple.BinaryFormats()) },
}

var vocabularyOrder = []string{"architecture", "vendor", "operating-system", "environment", "binary-format"}

var listCmd = &cobra.Command{
	Use:       "list [architecture|vendor|operating-system|environment|binary-format]",
	Short:     "List the names lexicon recognizes for each triple field",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: vocabularyOrder,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listVocabularies(cmd.OutOrStdout(), args)
	},
}

func listVocabularies(out io.Writer, args []string) error {
	if len(args) == 1 {
		list, ok := vocabularies[args[0]]
		if !ok {
			return fmt.Errorf("unknown field %q (expected one of %s)", args[0], strings.Join(vocabularyOrder, ", "))
		}
		for _, name := range list() {
			fmt.Fprintln(out, name)
		}
		return nil
	}
	for i, field := range vocabularyOrder {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s:\n", field)
		for _, name := range vocabularies[field]() {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}
	return nil
}

func names[T fmt.Stringer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
