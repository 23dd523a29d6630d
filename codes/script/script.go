// Package script looks up ISO 15924 writing system codes.
package script

import (
	"github.com/nupi-ai/localecodes/codes"
	"github.com/nupi-ai/localecodes/internal/dataset"
	"github.com/nupi-ai/localecodes/internal/registry"
	"github.com/nupi-ai/localecodes/internal/util/clone"
)

const registryName = "script"

// Info describes one ISO 15924 script. Alias is the Unicode property value
// alias, when the script has one.
type Info struct {
	AlphabeticCode string  `json:"alphabetic_code" yaml:"alphabetic_code"`
	NumericCode    uint16  `json:"numeric_code" yaml:"numeric_code"`
	Name           string  `json:"name" yaml:"name"`
	Alias          *string `json:"alias" yaml:"alias"`
}

var (
	byAlpha = registry.NewTable("scripts", func() (map[string]Info, error) {
		m, err := dataset.Decode[Info](dataset.Scripts)
		if err != nil {
			return nil, err
		}
		return m, registry.CheckKeys("scripts", m, func(i Info) string { return i.AlphabeticCode })
	})

	byNumeric = registry.NewIndex("scripts by numeric code", byAlpha, func(_ string, i Info) []uint16 {
		return []uint16{i.NumericCode}
	})
)

// CheckAlpha returns a *codes.CodeError unless code has four characters.
func CheckAlpha(code string) error {
	return codes.CheckLength(registryName, code, 4)
}

// LookupByAlpha returns the script with the given code, such as "Latn".
// Codes are case-sensitive. It panics with a *codes.CodeError if code is not
// four characters long.
func LookupByAlpha(code string) (Info, bool) {
	codes.MustLength(registryName, code, 4)
	return found(byAlpha.Lookup(code))
}

// LookupByNumeric returns the script with the given numeric code.
func LookupByNumeric(code uint16) (Info, bool) {
	return found(registry.Resolve(byNumeric, byAlpha, code))
}

func found(info Info, ok bool) (Info, bool) {
	if !ok {
		return Info{}, false
	}
	info.Alias = clone.Ptr(info.Alias)
	return info, true
}

// AllAlphaCodes returns every alphabetic code, sorted.
func AllAlphaCodes() []string {
	return byAlpha.Keys()
}

// AllNumericCodes returns every numeric code, sorted.
func AllNumericCodes() []uint16 {
	return byNumeric.Keys()
}
