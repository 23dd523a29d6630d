// Package codes holds what the individual code registries share: the error
// returned for malformed codes, the logging hook and the provenance of the
// embedded datasets.
//
// The registries themselves live in the sub-packages codeset, language,
// country, region, currency and script. Each one loads its dataset on first
// use and answers lookups from memory afterwards.
package codes

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/nupi-ai/localecodes/internal/dataset"
	"github.com/nupi-ai/localecodes/internal/registry"
)

// ErrInvalidCode is matched by every *CodeError.
var ErrInvalidCode = errors.New("invalid code")

// CodeError reports a code whose shape a registry cannot accept, for example
// a country code that is neither two nor three characters long. It is a
// caller bug, distinct from a well-formed code that is simply not registered.
type CodeError struct {
	Registry string
	Code     string
	Want     string
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("%s: invalid code %q: want %s", e.Registry, e.Code, e.Want)
}

func (e *CodeError) Unwrap() error { return ErrInvalidCode }

// CheckLength returns a *CodeError unless len(code) is one of lengths.
func CheckLength(registryName, code string, lengths ...int) error {
	for _, n := range lengths {
		if len(code) == n {
			return nil
		}
	}
	return &CodeError{Registry: registryName, Code: code, Want: describe(lengths)}
}

// MustLength panics with the error CheckLength would return.
func MustLength(registryName, code string, lengths ...int) {
	if err := CheckLength(registryName, code, lengths...); err != nil {
		panic(err)
	}
}

func describe(lengths []int) string {
	parts := make([]string, len(lengths))
	for i, n := range lengths {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " or ") + " characters"
}

// SetLogger routes registry load messages to l. Logging is off by default;
// a nil logger turns it off again.
func SetLogger(l *log.Logger) {
	registry.SetLogger(l)
}

// Dataset describes where one embedded dataset comes from.
type Dataset struct {
	Name     string `json:"name" yaml:"name"`
	Standard string `json:"standard" yaml:"standard"`
	Source   string `json:"source" yaml:"source"`
	Version  string `json:"version" yaml:"version"`
}

// Datasets returns the provenance of every embedded dataset.
func Datasets() ([]Dataset, error) {
	m, err := dataset.LoadManifest()
	if err != nil {
		return nil, err
	}
	out := make([]Dataset, 0, len(m.Datasets))
	for _, e := range m.Datasets {
		out = append(out, Dataset{
			Name:     string(e.Name),
			Standard: e.Standard,
			Source:   e.Source,
			Version:  e.Version,
		})
	}
	return out, nil
}
