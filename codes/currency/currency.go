// Package currency looks up ISO 4217 currency codes.
package currency

import (
	"slices"
	"strings"

	"github.com/nupi-ai/localecodes/codes"
	"github.com/nupi-ai/localecodes/internal/dataset"
	"github.com/nupi-ai/localecodes/internal/registry"
	"github.com/nupi-ai/localecodes/internal/util/clone"
)

const registryName = "currency"

// Subdivision is a minor unit of a currency, e.g. the cent with exponent 2.
type Subdivision struct {
	Exponent int8    `json:"exponent" yaml:"exponent"`
	Name     *string `json:"name" yaml:"name"`
}

// Info describes one ISO 4217 currency.
type Info struct {
	AlphabeticCode    string        `json:"alphabetic_code" yaml:"alphabetic_code"`
	Name              string        `json:"name" yaml:"name"`
	NumericCode       *uint16       `json:"numeric_code" yaml:"numeric_code"`
	Symbol            *string       `json:"symbol" yaml:"symbol"`
	StandardsEntities []string      `json:"standards_entities" yaml:"standards_entities"`
	Subdivisions      []Subdivision `json:"subdivisions" yaml:"subdivisions"`
}

func (i Info) clone() Info {
	i.NumericCode = clone.Ptr(i.NumericCode)
	i.Symbol = clone.Ptr(i.Symbol)
	i.StandardsEntities = clone.Slice(i.StandardsEntities)
	if len(i.Subdivisions) == 0 {
		i.Subdivisions = nil
		return i
	}
	subs := make([]Subdivision, len(i.Subdivisions))
	for n, s := range i.Subdivisions {
		subs[n] = Subdivision{Exponent: s.Exponent, Name: clone.Ptr(s.Name)}
	}
	i.Subdivisions = subs
	return i
}

// MinorUnits returns the largest subdivision exponent, which is the number
// of decimal places amounts in this currency are usually written with.
// It reports false when the dataset lists no subdivisions.
func (i Info) MinorUnits() (int8, bool) {
	if len(i.Subdivisions) == 0 {
		return 0, false
	}
	units := i.Subdivisions[0].Exponent
	for _, s := range i.Subdivisions[1:] {
		units = max(units, s.Exponent)
	}
	return units, true
}

var (
	byAlpha = registry.NewTable("currencies", func() (map[string]Info, error) {
		m, err := dataset.Decode[Info](dataset.Currencies)
		if err != nil {
			return nil, err
		}
		return m, registry.CheckKeys("currencies", m, func(i Info) string { return i.AlphabeticCode })
	})

	byNumeric = registry.NewIndex("currencies by numeric code", byAlpha, func(_ string, i Info) []uint16 {
		return registry.One(i.NumericCode)
	})
)

// CheckAlpha returns a *codes.CodeError unless code has three characters.
func CheckAlpha(code string) error {
	return codes.CheckLength(registryName, code, 3)
}

// LookupByAlpha returns the currency with the given alphabetic code, such as
// "EUR". It panics with a *codes.CodeError if code is not three characters
// long; use CheckAlpha first when the input is untrusted.
func LookupByAlpha(code string) (Info, bool) {
	codes.MustLength(registryName, code, 3)
	return found(byAlpha.Lookup(code))
}

// LookupByNumeric returns the currency with the given numeric code.
func LookupByNumeric(code uint16) (Info, bool) {
	return found(registry.Resolve(byNumeric, byAlpha, code))
}

func found(info Info, ok bool) (Info, bool) {
	if !ok {
		return Info{}, false
	}
	return info.clone(), true
}

// ForEntityName returns the currencies used by the named entity, sorted by
// alphabetic code. The name must match one of the ISO 4217 entity names
// exactly, case included. It returns nil when nothing matches.
func ForEntityName(name string) []Info {
	var out []Info
	for _, info := range byAlpha.Get() {
		if slices.Contains(info.StandardsEntities, name) {
			out = append(out, info.clone())
		}
	}
	slices.SortFunc(out, func(a, b Info) int {
		return strings.Compare(a.AlphabeticCode, b.AlphabeticCode)
	})
	return out
}

// AllAlphaCodes returns every alphabetic code, sorted.
func AllAlphaCodes() []string {
	return byAlpha.Keys()
}

// AllNumericCodes returns every numeric code, sorted.
func AllNumericCodes() []uint16 {
	return byNumeric.Keys()
}
