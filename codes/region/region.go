// Package region looks up UN M49 numeric area codes. The table covers
// the world, continents, sub-regions and intermediate regions as well as
// the individual countries and areas, all keyed by their numeric code.
package region

import (
	"fmt"
	"strconv"

	"github.com/nupi-ai/localecodes/internal/dataset"
	"github.com/nupi-ai/localecodes/internal/registry"
)

// Info describes one M49 area.
type Info struct {
	Code uint16 `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

var byCode = registry.NewTable("regions", load)

func load() (map[uint16]Info, error) {
	raw, err := dataset.Decode[string](dataset.Regions)
	if err != nil {
		return nil, err
	}
	return parse(raw)
}

func parse(raw map[string]string) (map[uint16]Info, error) {
	out := make(map[uint16]Info, len(raw))
	for key, name := range raw {
		code, err := strconv.ParseUint(key, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("region key %q: %w", key, err)
		}
		if name == "" {
			return nil, fmt.Errorf("region %d has no name", code)
		}
		if _, dup := out[uint16(code)]; dup {
			return nil, &registry.DuplicateKeyError{Table: "regions", Key: key, First: out[uint16(code)].Name, Second: name}
		}
		out[uint16(code)] = Info{Code: uint16(code), Name: name}
	}
	return out, nil
}

// Lookup returns the area with the given numeric code.
func Lookup(code uint16) (Info, bool) {
	return byCode.Lookup(code)
}

// AllCodes returns every numeric code, sorted.
func AllCodes() []uint16 {
	return byCode.Keys()
}
