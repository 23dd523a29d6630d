package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/nupi-ai/localecodes/codes"
	"github.com/nupi-ai/localecodes/internal/config"
	"github.com/nupi-ai/localecodes/internal/version"
)

// errNoData marks a well-formed code that no registry entry matches.
var errNoData = errors.New("no data")

func noData(code string) error {
	return fmt.Errorf("%w for %s", errNoData, code)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "localecodes",
		Short: "Look up IANA, ISO and UN codes for charsets, languages, countries, regions, currencies and scripts",
		Long: `localecodes answers questions about standard identifiers from the embedded
registries: IANA character sets, ISO 639 languages, ISO 3166 countries,
UN M49 regions, ISO 4217 currencies and ISO 15924 scripts.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}
	root.Version = version.String()
	root.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	root.PersistentFlags().Bool("json", false, "Output in JSON format")
	root.PersistentFlags().Bool("yaml", false, "Output in YAML format")
	root.PersistentFlags().Bool("verbose", false, "Log registry loading to stderr")

	root.AddCommand(
		newCountryCommand(),
		newLanguageCommand(),
		newScriptCommand(),
		newCurrencyCommand(),
		newRegionCommand(),
		newCodesetCommand(),
		newListCommand(),
		newExportCommand(),
		newVersionCommand(),
	)
	return root
}

// setup applies LOCALECODES_* defaults, then the flags, before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.FromEnv()
	if err != nil {
		return err
	}

	jsonMode, _ := cmd.Flags().GetBool("json")
	yamlMode, _ := cmd.Flags().GetBool("yaml")
	if jsonMode && yamlMode {
		return errors.New("--json and --yaml are mutually exclusive")
	}

	verbose := settings.Verbose
	if cmd.Flags().Changed("verbose") {
		verbose, _ = cmd.Flags().GetBool("verbose")
	}
	if verbose {
		logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
		codes.SetLogger(logger)
		log.SetOutput(cmd.ErrOrStderr())
		log.Printf("[CLI] Output format %s", newOutputFormatter(cmd).format)
	} else {
		codes.SetLogger(nil)
		log.SetOutput(io.Discard)
	}
	return nil
}

func main() {
	cmd, err := newRootCommand().ExecuteC()
	if err != nil {
		newOutputFormatter(cmd).Error(err)
		os.Exit(1)
	}
}
