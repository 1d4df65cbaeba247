package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bytecodealliance/target-lexicon/internal/datamodel"
	"github.com/bytecodealliance/target-lexicon/internal/layout"
	"github.com/bytecodealliance/target-lexicon/internal/logging"
	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

type cTypeRow struct {
	Name  string `json:"name" msgpack:"name"`
	Size  int    `json:"size" msgpack:"size"`
	Align int    `json:"align" msgpack:"align"`
}

type description struct {
	Triple              triple.Triple `json:"triple" msgpack:"triple"`
	Architecture        string        `json:"architecture" msgpack:"architecture"`
	Vendor              string        `json:"vendor" msgpack:"vendor"`
	OperatingSystem     string        `json:"operating_system" msgpack:"operating_system"`
	Environment         string        `json:"environment" msgpack:"environment"`
	BinaryFormat        string        `json:"binary_format" msgpack:"binary_format"`
	DefaultBinaryFormat string        `json:"default_binary_format" msgpack:"default_binary_format"`
	Endianness          string        `json:"endianness,omitempty" msgpack:"endianness,omitempty"`
	PointerWidth        int           `json:"pointer_width,omitempty" msgpack:"pointer_width,omitempty"`
	Thumb               bool          `json:"thumb" msgpack:"thumb"`
	DataModel           string        `json:"data_model,omitempty" msgpack:"data_model,omitempty"`
	CTypes              []cTypeRow    `json:"c_types,omitempty" msgpack:"c_types,omitempty"`
	Note                string        `json:"note,omitempty" msgpack:"note,omitempty"`
}

var describeCmd = &cobra.Command{
	Use:   "describe [triple]",
	Short: "Show everything lexicon knows about a triple",
	Long: `Show the fields of a triple, its endianness, pointer width, default
binary format and C type layout. Without an argument the configured default
target is described, falling back to the host; lexicon.toml is only read in
that case.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		modelFlag, err := cmd.Flags().GetString("data-model")
		if err != nil {
			return fmt.Errorf("failed to get data-model flag: %w", err)
		}
		target, override, err := describeTarget(args, modelFlag, func() (lexiconConfig, error) {
			return resolveConfig(cmd)
		})
		if err != nil {
			return err
		}

		logging.Logger().Debug("describing target",
			zap.Stringer("triple", target),
			zap.Bool("host", target.IsHost()))
		desc := describe(target.Triple(), override)
		return renderDescription(cmd.OutOrStdout(), desc, strings.ToLower(format))
	},
}

func init() {
	describeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	describeCmd.Flags().String("data-model", "", "C data model to lay out types with (lp32|ilp32|llp64|lp64|ilp64)")
}

// describeTarget picks the triple and data model override for describe. An
// explicit triple never consults the config: [target].data_model belongs to
// [target].default, so load runs only when args is empty.
func describeTarget(args []string, modelFlag string, load func() (lexiconConfig, error)) (triple.DefaultToHost, *datamodel.CDataModel, error) {
	var override *datamodel.CDataModel
	if modelFlag != "" {
		m, ok := datamodel.ParseCDataModel(modelFlag)
		if !ok {
			return triple.DefaultToHost{}, nil, fmt.Errorf("unknown C data model %q", modelFlag)
		}
		override = &m
	}

	if len(args) == 1 {
		t, err := triple.Parse(args[0])
		if err != nil {
			return triple.DefaultToHost{}, nil, err
		}
		return triple.Explicit(t), override, nil
	}

	cfg, err := load()
	if err != nil {
		return triple.DefaultToHost{}, nil, err
	}
	if override == nil {
		if m, ok := cfg.Target.dataModel(); ok {
			override = &m
		}
	}
	return cfg.Target.Default, override, nil
}

func describe(t triple.Triple, override *datamodel.CDataModel) description {
	desc := description{
		Triple:              t,
		Architecture:        t.Architecture.String(),
		Vendor:              t.Vendor.String(),
		OperatingSystem:     t.OperatingSystem.String(),
		Environment:         t.Environment.String(),
		BinaryFormat:        t.BinaryFormat.String(),
		DefaultBinaryFormat: t.DefaultBinaryFormat().String(),
	}
	if endian, err := t.Endianness(); err == nil {
		desc.Endianness = endian.String()
	}
	if width, err := t.PointerWidth(); err == nil {
		desc.PointerWidth = width.Bits()
	}
	if thumb, err := t.IsThumb(); err == nil {
		desc.Thumb = thumb
	}

	tgt, err := layout.NewTarget(t)
	if err != nil {
		var lerr *layout.LayoutError
		if errors.As(err, &lerr) && lerr.Kind == layout.LayoutErrNoDataModel && override != nil {
			tgt = layout.Target{Triple: t, Endian: endianOrLittle(t)}.WithDataModel(*override)
		} else {
			desc.Note = err.Error()
			return desc
		}
	} else if override != nil {
		tgt = tgt.WithDataModel(*override)
	}
	desc.DataModel = tgt.Model.String()
	for _, c := range layout.CTypes {
		l := tgt.LayoutOf(c)
		desc.CTypes = append(desc.CTypes, cTypeRow{Name: c.String(), Size: l.Size, Align: l.Align})
	}
	return desc
}

func endianOrLittle(t triple.Triple) triple.Endianness {
	if e, err := t.Endianness(); err == nil {
		return e
	}
	return triple.Little
}

func renderDescription(out io.Writer, desc description, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(desc)
	case "msgpack":
		enc := msgpack.NewEncoder(out)
		return enc.Encode(desc)
	case "pretty":
		renderDescriptionPretty(out, desc)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or msgpack)", format)
	}
}

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	noteStyle    = lipgloss.NewStyle().Faint(true)
)

func renderDescriptionPretty(out io.Writer, desc description) {
	title := cases.Title(language.English)
	row := func(label, value string) {
		l := labelStyle.Width(24).Render(title.String(label))
		fmt.Fprintf(out, "%s %s\n", l, valueStyle.Render(value))
	}

	fmt.Fprintln(out, headingStyle.Render(desc.Triple.String()))
	row("architecture", desc.Architecture)
	row("vendor", desc.Vendor)
	row("operating system", desc.OperatingSystem)
	row("environment", desc.Environment)
	row("binary format", desc.BinaryFormat)
	row("default binary format", desc.DefaultBinaryFormat)
	row("endianness", valueOrUnknown(desc.Endianness))
	if desc.PointerWidth > 0 {
		row("pointer width", fmt.Sprintf("%d bits", desc.PointerWidth))
	} else {
		row("pointer width", "unknown")
	}
	row("thumb", fmt.Sprintf("%t", desc.Thumb))
	if desc.DataModel != "" {
		row("c data model", strings.ToUpper(desc.DataModel))
	}
	if len(desc.CTypes) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, headingStyle.Render(title.String("c types")))
		for _, c := range desc.CTypes {
			row(c.Name, fmt.Sprintf("size %d, align %d", c.Size, c.Align))
		}
	}
	if desc.Note != "" {
		fmt.Fprintln(out, noteStyle.Render("note: "+desc.Note))
	}
}
