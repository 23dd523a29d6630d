// Package language looks up ISO 639 language codes.
//
// Languages are keyed by their three-letter ISO 639-3 code and can also be
// found by their two-letter ISO 639-1 code or their ISO 639-2/B
// bibliographic code. Macrolanguages list the individual languages they
// cover, and FamilyOf answers the reverse question.
package language

import (
	textlang "golang.org/x/text/language"

	"github.com/nupi-ai/localecodes/codes"
	"github.com/nupi-ai/localecodes/internal/dataset"
	"github.com/nupi-ai/localecodes/internal/registry"
	"github.com/nupi-ai/localecodes/internal/util/clone"
)

const registryName = "language"

// Info describes one ISO 639 language.
type Info struct {
	Code              string   `json:"code" yaml:"code"`
	ReferenceName     string   `json:"reference_name" yaml:"reference_name"`
	IndigenousName    *string  `json:"indigenous_name" yaml:"indigenous_name"`
	OtherNames        []string `json:"other_names" yaml:"other_names"`
	BibliographicCode *string  `json:"bibliographic_code" yaml:"bibliographic_code"`
	TerminologyCode   *string  `json:"terminology_code" yaml:"terminology_code"`
	ShortCode         *string  `json:"short_code" yaml:"short_code"`
	Class             Class    `json:"scope" yaml:"scope"`
	Type              Type     `json:"l_type" yaml:"l_type"`
	FamilyMembers     []string `json:"family_members" yaml:"family_members"`
}

func (i Info) clone() Info {
	i.IndigenousName = clone.Ptr(i.IndigenousName)
	i.OtherNames = clone.Slice(i.OtherNames)
	i.BibliographicCode = clone.Ptr(i.BibliographicCode)
	i.TerminologyCode = clone.Ptr(i.TerminologyCode)
	i.ShortCode = clone.Ptr(i.ShortCode)
	i.FamilyMembers = clone.Slice(i.FamilyMembers)
	return i
}

// IsMacroLanguage reports whether the code stands for a macrolanguage.
func (i Info) IsMacroLanguage() bool {
	return i.Class == ClassMacroLanguage
}

// Tag returns the BCP 47 tag for the language, preferring the two-letter
// code when there is one.
func (i Info) Tag() (textlang.Tag, error) {
	code := i.Code
	if i.ShortCode != nil {
		code = *i.ShortCode
	}
	return textlang.Parse(code)
}

var (
	byCode = registry.NewTable("languages", func() (map[string]Info, error) {
		m, err := dataset.Decode[Info](dataset.Languages)
		if err != nil {
			return nil, err
		}
		return m, registry.CheckKeys("languages", m, func(i Info) string { return i.Code })
	})

	byShortCode = registry.NewIndex("languages by short code", byCode, func(_ string, i Info) []string {
		return registry.One(i.ShortCode)
	})

	byBibliographicCode = registry.NewIndex("languages by bibliographic code", byCode, func(_ string, i Info) []string {
		return registry.One(i.BibliographicCode)
	})

	byFamilyMember = registry.NewIndex("languages by family member", byCode, func(_ string, i Info) []string {
		return i.FamilyMembers
	})
)

// CheckCode returns a *codes.CodeError unless code has two or three
// characters. Run it on untrusted input before calling Lookup.
func CheckCode(code string) error {
	return codes.CheckLength(registryName, code, 2, 3)
}

// LookupByLongCode returns the language with the given ISO 639-3 code.
// It panics with a *codes.CodeError if code is not three characters long.
func LookupByLongCode(code string) (Info, bool) {
	codes.MustLength(registryName, code, 3)
	return found(byCode.Lookup(code))
}

// LookupByShortCode returns the language with the given ISO 639-1 code.
// It panics with a *codes.CodeError if code is not two characters long.
func LookupByShortCode(code string) (Info, bool) {
	codes.MustLength(registryName, code, 2)
	return found(registry.Resolve(byShortCode, byCode, code))
}

// Lookup returns the language for a two- or three-letter code. Codes are
// case-sensitive and lower case. It panics with a *codes.CodeError for any
// other length; use CheckCode first when the input is untrusted.
func Lookup(code string) (Info, bool) {
	switch len(code) {
	case 2:
		return LookupByShortCode(code)
	case 3:
		return LookupByLongCode(code)
	}
	panic(CheckCode(code))
}

// LookupByBibliographicCode returns the language with the given ISO 639-2/B
// code, such as "ger" for German.
func LookupByBibliographicCode(code string) (Info, bool) {
	codes.MustLength(registryName, code, 3)
	return found(registry.Resolve(byBibliographicCode, byCode, code))
}

// FamilyOf returns the macrolanguage that lists code among its members.
func FamilyOf(code string) (Info, bool) {
	codes.MustLength(registryName, code, 3)
	return found(registry.Resolve(byFamilyMember, byCode, code))
}

func found(info Info, ok bool) (Info, bool) {
	if !ok {
		return Info{}, false
	}
	return info.clone(), true
}

// AllCodes returns every three-letter code, sorted.
func AllCodes() []string {
	return byCode.Keys()
}

// AllShortCodes returns every two-letter code, sorted.
func AllShortCodes() []string {
	return byShortCode.Keys()
}
