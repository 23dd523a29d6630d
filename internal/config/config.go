// Package config resolves command-line settings for the localecodes binary.
// The library packages need no configuration; their data is compiled in.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Output formats accepted by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	EnvFormat   = "LOCALECODES_FORMAT"
	EnvVerbose  = "LOCALECODES_VERBOSE"
	EnvSnapshot = "LOCALECODES_SNAPSHOT"
)

// Settings holds the environment defaults that command-line flags override.
type Settings struct {
	Format   string
	Verbose  bool
	Snapshot string
}

// FromEnv reads settings from LOCALECODES_* variables, falling back to text
// output, quiet logging and the default snapshot path.
func FromEnv() (Settings, error) {
	s := Settings{
		Format:   FormatText,
		Snapshot: DefaultSnapshotPath(),
	}

	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		format, err := ParseFormat(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvFormat, err)
		}
		s.Format = format
	}
	if v := strings.TrimSpace(os.Getenv(EnvVerbose)); v == "1" || strings.EqualFold(v, "true") {
		s.Verbose = true
	}
	if v := strings.TrimSpace(os.Getenv(EnvSnapshot)); v != "" {
		s.Snapshot = ExpandPath(v)
	}
	return s, nil
}

// ParseFormat validates an output format name.
func ParseFormat(v string) (string, error) {
	switch f := strings.ToLower(v); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", v)
}
