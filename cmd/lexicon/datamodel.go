package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/bytecodealliance/target-lexicon/internal/datamodel"
)

var datamodelCmd = &cobra.Command{
	Use:   "datamodel [model]",
	Short: "Show C type sizes for the standard data models",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		models := datamodel.All()
		if len(args) == 1 {
			m, ok := datamodel.ParseCDataModel(args[0])
			if !ok {
				return fmt.Errorf("unknown C data model %q", args[0])
			}
			models = []datamodel.CDataModel{m}
		}
		renderDataModels(cmd.OutOrStdout(), models)
		return nil
	},
}

var dataModelColumns = []struct {
	title string
	size  func(datamodel.CDataModel) datamodel.Size
}{
	{"pointer", datamodel.CDataModel.PointerWidth},
	{"short", datamodel.CDataModel.ShortSize},
	{"int", datamodel.CDataModel.IntSize},
	{"long", datamodel.CDataModel.LongSize},
	{"long long", datamodel.CDataModel.LongLongSize},
	{"float", datamodel.CDataModel.FloatSize},
	{"double", datamodel.CDataModel.DoubleSize},
}

// renderDataModels prints one row per model with sizes in bits.
func renderDataModels(out io.Writer, models []datamodel.CDataModel) {
	const firstWidth = 7
	cell := func(s string, w int) string { return runewidth.FillRight(s, w) }

	var header strings.Builder
	header.WriteString(cell("model", firstWidth))
	for _, col := range dataModelColumns {
		header.WriteString("  ")
		header.WriteString(cell(col.title, runewidth.StringWidth(col.title)))
	}
	fmt.Fprintln(out, strings.TrimRight(header.String(), " "))

	for _, m := range models {
		var row strings.Builder
		row.WriteString(cell(strings.ToUpper(m.String()), firstWidth))
		for _, col := range dataModelColumns {
			row.WriteString("  ")
			row.WriteString(runewidth.FillLeft(fmt.Sprint(col.size(m).Bits()), runewidth.StringWidth(col.title)))
		}
		fmt.Fprintln(out, row.String())
	}
}
