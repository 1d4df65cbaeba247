package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bytecodealliance/target-lexicon/internal/triple"
)

type hostPayload struct {
	Triple       triple.Triple `json:"triple"`
	PointerBytes int           `json:"pointer_bytes,omitempty"`
	Endianness   string        `json:"endianness,omitempty"`
}

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Print the triple of the machine lexicon was built for",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		pointerBytes, err := cmd.Flags().GetBool("pointer-bytes")
		if err != nil {
			return fmt.Errorf("failed to get pointer-bytes flag: %w", err)
		}
		return renderHost(cmd.OutOrStdout(), triple.Host(), strings.ToLower(format), pointerBytes)
	},
}

func init() {
	hostCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	hostCmd.Flags().Bool("pointer-bytes", false, "print the host pointer width in bytes instead of the triple")
}

func renderHost(out io.Writer, host triple.Triple, format string, pointerBytes bool) error {
	payload := hostPayload{Triple: host}
	if width, err := host.PointerWidth(); err == nil {
		payload.PointerBytes = width.Bytes()
	}
	if endian, err := host.Endianness(); err == nil {
		payload.Endianness = endian.String()
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		if !pointerBytes {
			_, err := fmt.Fprintln(out, host)
			return err
		}
		if payload.PointerBytes == 0 {
			return fmt.Errorf("host architecture %s: %w", host.Architecture, triple.ErrNotRepresentable)
		}
		_, err := fmt.Fprintln(out, payload.PointerBytes)
		return err
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
