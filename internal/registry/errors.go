package registry

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is matched by every *DuplicateKeyError.
var ErrDuplicateKey = errors.New("duplicate key")

// LoadError reports that a table could not be built from its dataset.
// Tables panic with a *LoadError.
type LoadError struct {
	Table string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("registry %s: load failed: %v", e.Table, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DuplicateKeyError reports a key claimed by two different records.
type DuplicateKeyError struct {
	Table  string
	Key    string
	First  string
	Second string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("registry %s: key %q maps to both %s and %s", e.Table, e.Key, e.First, e.Second)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// KeyMismatchError reports a record whose own key field disagrees with the
// key it is stored under in the dataset.
type KeyMismatchError struct {
	Table  string
	Key    string
	Record string
}

func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("registry %s: entry %q carries key %q", e.Table, e.Key, e.Record)
}

// CheckKeys verifies that every record in m is stored under its own key.
func CheckKeys[K comparable, V any](table string, m map[K]V, key func(V) K) error {
	for k, v := range m {
		if got := key(v); got != k {
			return &KeyMismatchError{Table: table, Key: fmt.Sprint(k), Record: fmt.Sprint(got)}
		}
	}
	return nil
}
