// Package clone copies the optional and list-valued fields of registry
// records so that values handed to callers never share memory with the
// loaded tables.
package clone

import "slices"

// Slice returns a copy of s. It returns nil for nil or empty input, keeping
// "absent" and "empty" indistinguishable the way the datasets encode them.
func Slice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// Ptr returns a pointer to a copy of *p, or nil.
func Ptr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
