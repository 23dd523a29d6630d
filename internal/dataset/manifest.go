package dataset

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

const manifestPath = "data/manifest.yaml"

// Entry describes the provenance of one embedded dataset.
type Entry struct {
	Name     Name   `yaml:"name"`
	File     string `yaml:"file"`
	Standard string `yaml:"standard"`
	Source   string `yaml:"source"`
	Version  string `yaml:"version"`
}

// Manifest lists the provenance of every embedded dataset.
type Manifest struct {
	Datasets []Entry `yaml:"datasets"`
}

// Lookup returns the manifest entry for the named dataset.
func (m Manifest) Lookup(name Name) (Entry, bool) {
	for _, e := range m.Datasets {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

var loadManifest = sync.OnceValues(func() (Manifest, error) {
	data, err := files.ReadFile(manifestPath)
	if err != nil {
		return Manifest{}, fmt.Errorf("dataset manifest: %w", err)
	}
	return parseManifest(data)
})

// LoadManifest returns the decoded manifest. The embedded file is parsed once.
func LoadManifest() (Manifest, error) {
	m, err := loadManifest()
	if err != nil {
		return Manifest{}, err
	}
	out := Manifest{Datasets: make([]Entry, len(m.Datasets))}
	copy(out.Datasets, m.Datasets)
	return out, nil
}

func parseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("dataset manifest: decode: %w", err)
	}

	seen := make(map[Name]struct{}, len(m.Datasets))
	for _, e := range m.Datasets {
		if e.Name == "" || e.Version == "" {
			return Manifest{}, fmt.Errorf("dataset manifest: entry %q is missing name or version", e.File)
		}
		if _, dup := seen[e.Name]; dup {
			return Manifest{}, fmt.Errorf("dataset manifest: duplicate entry %q", e.Name)
		}
		seen[e.Name] = struct{}{}
		if e.File != string(e.Name)+".json" {
			return Manifest{}, fmt.Errorf("dataset manifest: entry %q points at %q", e.Name, e.File)
		}
	}
	for _, name := range All() {
		if _, ok := seen[name]; !ok {
			return Manifest{}, fmt.Errorf("dataset manifest: no entry for %q", name)
		}
	}
	return m, nil
}
