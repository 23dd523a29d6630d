// Package codeset looks up IANA registered character sets.
//
// Character sets are keyed by their preferred IANA name. LookupAlias also
// accepts any of the registered aliases, and Encoding hands back a decoder
// and encoder for the character set when golang.org/x/text implements one.
package codeset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/nupi-ai/localecodes/codes"
	"github.com/nupi-ai/localecodes/internal/dataset"
	"github.com/nupi-ai/localecodes/internal/registry"
	"github.com/nupi-ai/localecodes/internal/util/clone"
)

const registryName = "codeset"

// Info describes one IANA character set.
type Info struct {
	Name        string   `json:"name" yaml:"name"`
	AlsoKnownAs []string `json:"also_known_as" yaml:"also_known_as"`
	MIBCode     uint32   `json:"mib_code" yaml:"mib_code"`
	Source      *string  `json:"source" yaml:"source"`
	References  *string  `json:"references" yaml:"references"`
}

func (i Info) clone() Info {
	i.AlsoKnownAs = clone.Slice(i.AlsoKnownAs)
	i.Source = clone.Ptr(i.Source)
	i.References = clone.Ptr(i.References)
	return i
}

var (
	byName = registry.NewTable("codesets", func() (map[string]Info, error) {
		m, err := dataset.Decode[Info](dataset.Codesets)
		if err != nil {
			return nil, err
		}
		return m, registry.CheckKeys("codesets", m, func(i Info) string { return i.Name })
	})

	// Preferred names index to themselves so an alias can never shadow
	// another character set's name.
	byAlias = registry.NewIndex("codesets by alias", byName, func(name string, i Info) []string {
		return append([]string{name}, i.AlsoKnownAs...)
	})

	byMIB = registry.NewIndex("codesets by MIB", byName, func(_ string, i Info) []uint32 {
		return []uint32{i.MIBCode}
	})
)

// CheckName returns a *codes.CodeError if name is empty.
func CheckName(name string) error {
	if name == "" {
		return &codes.CodeError{Registry: registryName, Code: name, Want: "a non-empty name"}
	}
	return nil
}

func mustName(name string) {
	if err := CheckName(name); err != nil {
		panic(err)
	}
}

// Lookup returns the character set registered under the preferred name.
// Names are matched exactly. It panics with a *codes.CodeError on an empty
// name.
func Lookup(name string) (Info, bool) {
	mustName(name)
	return found(byName.Lookup(name))
}

// LookupAlias returns the character set known by name, which may be the
// preferred name or any registered alias.
func LookupAlias(name string) (Info, bool) {
	mustName(name)
	return found(registry.Resolve(byAlias, byName, name))
}

// LookupMIB returns the character set with the given MIB enum value.
func LookupMIB(mib uint32) (Info, bool) {
	return found(registry.Resolve(byMIB, byName, mib))
}

func found(info Info, ok bool) (Info, bool) {
	if !ok {
		return Info{}, false
	}
	return info.clone(), true
}

// AllNames returns every preferred name, sorted.
func AllNames() []string {
	return byName.Keys()
}

// Encoding returns the x/text implementation of the character set known by
// name or alias. It reports false when the character set is not registered
// here or x/text does not implement it.
func Encoding(name string) (encoding.Encoding, bool) {
	info, ok := LookupAlias(name)
	if !ok {
		return nil, false
	}
	for _, n := range append([]string{info.Name}, info.AlsoKnownAs...) {
		enc, err := ianaindex.IANA.Encoding(n)
		if err == nil && enc != nil {
			return enc, true
		}
	}
	return nil, false
}
