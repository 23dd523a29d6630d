package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nupi-ai/localecodes/internal/config"
)

// textRenderer is implemented by values with a human-readable layout.
type textRenderer interface {
	renderText(w io.Writer)
}

// OutputFormatter writes command results as text, JSON or YAML.
type OutputFormatter struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// newOutputFormatter picks the format from --json / --yaml, falling back to
// LOCALECODES_FORMAT and then to text.
func newOutputFormatter(cmd *cobra.Command) *OutputFormatter {
	format := config.FormatText
	if settings, err := config.FromEnv(); err == nil {
		format = settings.Format
	}
	if yamlMode, _ := cmd.Flags().GetBool("yaml"); yamlMode {
		format = config.FormatYAML
	}
	if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
		format = config.FormatJSON
	}
	return &OutputFormatter{format: format, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
}

// Print outputs data in the selected format.
func (f *OutputFormatter) Print(data any) error {
	switch f.format {
	case config.FormatJSON:
		jsonBytes, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(f.out, string(jsonBytes))
	case config.FormatYAML:
		enc := yaml.NewEncoder(f.out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	default:
		switch v := data.(type) {
		case string:
			fmt.Fprintln(f.out, v)
		case textRenderer:
			v.renderText(f.out)
		default:
			jsonBytes, _ := json.MarshalIndent(data, "", "  ")
			fmt.Fprintln(f.out, string(jsonBytes))
		}
	}
	return nil
}

// Error reports err on the error stream in the selected format.
func (f *OutputFormatter) Error(err error) {
	if f.format == config.FormatJSON {
		jsonBytes, _ := json.MarshalIndent(map[string]any{"success": false, "error": err.Error()}, "", "  ")
		fmt.Fprintln(f.errOut, string(jsonBytes))
		return
	}
	fmt.Fprintf(f.errOut, "Error: %v\n", err)
}

// fields renders label/value pairs as an aligned two-column block.
type fields [][2]string

func (fs fields) renderText(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, kv := range fs {
		fmt.Fprintf(tw, "%s:\t%s\n", kv[0], kv[1])
	}
	tw.Flush()
}
