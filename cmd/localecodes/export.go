package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/nupi-ai/localecodes/internal/config"
	"github.com/nupi-ai/localecodes/internal/export"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every registry into a SQLite database",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	cmd.Flags().String("sqlite", "", "Snapshot path (default $LOCALECODES_SNAPSHOT or ~/.localecodes/localecodes.db)")
	return cmd
}

type exportResult struct {
	Path          string `json:"path" yaml:"path"`
	export.Counts `json:"rows" yaml:"rows"`
}

func (r exportResult) renderText(w io.Writer) {
	fmt.Fprintf(w, "Wrote %s\n", r.Path)
	fields{
		{"codesets", fmt.Sprint(r.Codesets)},
		{"languages", fmt.Sprint(r.Languages)},
		{"countries", fmt.Sprint(r.Countries)},
		{"regions", fmt.Sprint(r.Regions)},
		{"currencies", fmt.Sprint(r.Currencies)},
		{"scripts", fmt.Sprint(r.Scripts)},
	}.renderText(w)
}

func runExport(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("sqlite")
	if path == "" {
		settings, err := config.FromEnv()
		if err != nil {
			return err
		}
		path = settings.Snapshot
	}

	w, err := export.Open(path)
	if err != nil {
		return err
	}
	result, err := writeSnapshot(cmd.Context(), w)
	if err != nil {
		return err
	}
	return newOutputFormatter(cmd).Print(result)
}

// snapshotWriter is the part of *export.Writer the export command drives.
type snapshotWriter interface {
	Path() string
	WriteAll(ctx context.Context) (export.Counts, error)
	Close() error
}

// writeSnapshot fills w and closes it. The snapshot only counts as written
// once Close has succeeded.
func writeSnapshot(ctx context.Context, w snapshotWriter) (exportResult, error) {
	log.Printf("[CLI] Exporting registries to %s", w.Path())
	counts, err := w.WriteAll(ctx)
	if err != nil {
		w.Close()
		return exportResult{}, err
	}
	if err := w.Close(); err != nil {
		return exportResult{}, err
	}
	return exportResult{Path: w.Path(), Counts: counts}, nil
}
