package registry

import (
	"cmp"
	"fmt"
)

// BuildIndex maps every secondary key produced by keys back to the primary key
// of the record that produced it. A secondary key produced by two different
// records is reported as a *DuplicateKeyError.
func BuildIndex[P, S cmp.Ordered, V any](name string, primary map[P]V, keys func(P, V) []S) (map[S]P, error) {
	index := make(map[S]P, len(primary))
	for p, v := range primary {
		for _, s := range keys(p, v) {
			if prev, ok := index[s]; ok && prev != p {
				first, second := prev, p
				if second < first {
					first, second = second, first
				}
				return nil, &DuplicateKeyError{
					Table:  name,
					Key:    fmt.Sprint(s),
					First:  fmt.Sprint(first),
					Second: fmt.Sprint(second),
				}
			}
			index[s] = p
		}
	}
	return index, nil
}

// NewIndex returns a table derived from primary. It is built on first access,
// after primary itself has loaded.
func NewIndex[P, S cmp.Ordered, V any](name string, primary *Table[P, V], keys func(P, V) []S) *Table[S, P] {
	return NewTable(name, func() (map[S]P, error) {
		index, err := BuildIndex(name, primary.Get(), keys)
		if err != nil {
			return nil, err
		}
		logf("Indexed %s (%d keys)", name, len(index))
		return index, nil
	})
}

// Resolve looks key up in index and then the resulting primary key in primary.
func Resolve[P, S cmp.Ordered, V any](index *Table[S, P], primary *Table[P, V], key S) (V, bool) {
	p, ok := index.Lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return primary.Lookup(p)
}

// One adapts an optional secondary key to the keys function of BuildIndex.
func One[S any](s *S) []S {
	if s == nil {
		return nil
	}
	return []S{*s}
}
