// Package dataset embeds the registry data files produced by the data
// generation scripts and decodes them. The files are compiled into the binary
// and never read from disk at runtime.
package dataset

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed data/*.json data/manifest.yaml
var files embed.FS

// Name identifies one embedded dataset.
type Name string

const (
	Codesets   Name = "codesets"
	Languages  Name = "languages"
	Countries  Name = "countries"
	Regions    Name = "regions"
	Currencies Name = "currencies"
	Scripts    Name = "scripts"
)

// All lists every dataset shipped with the module.
func All() []Name {
	return []Name{Codesets, Languages, Countries, Regions, Currencies, Scripts}
}

// ErrEmpty is returned when a dataset decodes to zero entries.
var ErrEmpty = errors.New("dataset is empty")

func path(name Name) string {
	return "data/" + string(name) + ".json"
}

// Raw returns the embedded bytes of the named dataset.
func Raw(name Name) ([]byte, error) {
	data, err := files.ReadFile(path(name))
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", name, err)
	}
	return data, nil
}

// Decode unmarshals the named dataset, a JSON object keyed by code, into a
// map of V. Unknown record fields are an error.
func Decode[V any](name Name) (map[string]V, error) {
	data, err := Raw(name)
	if err != nil {
		return nil, err
	}
	return decode[V](name, data)
}

func decode[V any](name Name, data []byte) (map[string]V, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var out map[string]V
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("dataset %s: decode: %w", name, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("dataset %s: %w", name, ErrEmpty)
	}
	return out, nil
}

// Count returns the number of top-level entries in the named dataset without
// decoding the records themselves.
func Count(name Name) (int, error) {
	raw, err := Decode[json.RawMessage](name)
	if err != nil {
		return 0, err
	}
	return len(raw), nil
}
