// Package country looks up ISO 3166-1 country codes.
//
// Countries are keyed by their three-letter (alpha-3) code and can also be
// found by their two-letter (alpha-2) code or their numeric code. Region
// fields hold UN M49 numeric codes that package region resolves to names.
package country

import (
	"fmt"

	"github.com/nupi-ai/localecodes/codes"
	"github.com/nupi-ai/localecodes/internal/dataset"
	"github.com/nupi-ai/localecodes/internal/registry"
	"github.com/nupi-ai/localecodes/internal/util/clone"
)

const registryName = "country"

// Info describes one ISO 3166-1 country.
type Info struct {
	Code                   string  `json:"code" yaml:"code"`
	ShortCode              string  `json:"short_code" yaml:"short_code"`
	CountryCode            uint16  `json:"country_code" yaml:"country_code"`
	RegionCode             *uint16 `json:"region_code" yaml:"region_code"`
	SubRegionCode          *uint16 `json:"sub_region_code" yaml:"sub_region_code"`
	IntermediateRegionCode *uint16 `json:"intermediate_region_code" yaml:"intermediate_region_code"`
}

func (i Info) clone() Info {
	i.RegionCode = clone.Ptr(i.RegionCode)
	i.SubRegionCode = clone.Ptr(i.SubRegionCode)
	i.IntermediateRegionCode = clone.Ptr(i.IntermediateRegionCode)
	return i
}

var (
	byCode = registry.NewTable("countries", func() (map[string]Info, error) {
		m, err := dataset.Decode[Info](dataset.Countries)
		if err != nil {
			return nil, err
		}
		return m, registry.CheckKeys("countries", m, func(i Info) string { return i.Code })
	})

	byShortCode = registry.NewIndex("countries by short code", byCode, func(_ string, i Info) []string {
		return []string{i.ShortCode}
	})

	byNumeric = registry.NewIndex("countries by numeric code", byCode, func(_ string, i Info) []uint16 {
		return []uint16{i.CountryCode}
	})
)

// CheckCode returns a *codes.CodeError unless code has two or three
// characters. Run it on untrusted input before calling Lookup.
func CheckCode(code string) error {
	return codes.CheckLength(registryName, code, 2, 3)
}

// LookupByLongCode returns the country with the given alpha-3 code.
// It panics with a *codes.CodeError if code is not three characters long.
func LookupByLongCode(code string) (Info, bool) {
	codes.MustLength(registryName, code, 3)
	info, ok := byCode.Lookup(code)
	if !ok {
		return Info{}, false
	}
	return info.clone(), true
}

// LookupByShortCode returns the country with the given alpha-2 code.
// It panics with a *codes.CodeError if code is not two characters long.
func LookupByShortCode(code string) (Info, bool) {
	codes.MustLength(registryName, code, 2)
	info, ok := registry.Resolve(byShortCode, byCode, code)
	if !ok {
		return Info{}, false
	}
	return info.clone(), true
}

// Lookup returns the country for an alpha-2 or alpha-3 code. Codes are
// case-sensitive and must be upper case. It panics with a *codes.CodeError
// for any other length; use CheckCode first when the input is untrusted.
func Lookup(code string) (Info, bool) {
	switch len(code) {
	case 2:
		return LookupByShortCode(code)
	case 3:
		return LookupByLongCode(code)
	}
	panic(CheckCode(code))
}

// LookupByNumeric returns the country with the given ISO 3166-1 numeric code.
func LookupByNumeric(code uint16) (Info, bool) {
	info, ok := registry.Resolve(byNumeric, byCode, code)
	if !ok {
		return Info{}, false
	}
	return info.clone(), true
}

// AllCodes returns every alpha-3 code, sorted.
func AllCodes() []string {
	return byCode.Keys()
}

// AllShortCodes returns every alpha-2 code, sorted.
func AllShortCodes() []string {
	return byShortCode.Keys()
}

// NumericString formats the numeric code zero-padded to three digits, the
// way ISO 3166-1 prints it.
func (i Info) NumericString() string {
	return fmt.Sprintf("%03d", i.CountryCode)
}
