package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nupi-ai/localecodes/codes"
	"github.com/nupi-ai/localecodes/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the build version and the embedded dataset versions",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
}

type versionView struct {
	Version  string          `json:"version" yaml:"version"`
	Datasets []codes.Dataset `json:"datasets" yaml:"datasets"`
}

func (v versionView) renderText(w io.Writer) {
	fmt.Fprintf(w, "localecodes %s\n", version.FormatVersion(v.Version))
	fs := make(fields, 0, len(v.Datasets))
	for _, d := range v.Datasets {
		fs = append(fs, [2]string{d.Name, fmt.Sprintf("%s %s", d.Standard, d.Version)})
	}
	fs.renderText(w)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := newOutputFormatter(cmd)
	ds, err := codes.Datasets()
	if err != nil {
		return err
	}
	return out.Print(versionView{Version: version.String(), Datasets: ds})
}
