// Package registry holds the lazily loaded, read-only lookup tables shared by
// the code registries. A table is built at most once per process, on first
// access, and is never modified afterwards.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// Table is a read-only map built on first access.
type Table[K cmp.Ordered, V any] struct {
	name  string
	load  func() (map[K]V, error)
	once  sync.Once
	data  map[K]V
	err   *LoadError
	loads atomic.Int64
}

// NewTable returns a table that fills itself by calling load the first time
// it is read.
func NewTable[K cmp.Ordered, V any](name string, load func() (map[K]V, error)) *Table[K, V] {
	return &Table[K, V]{name: name, load: load}
}

// Name returns the table name used in log lines and errors.
func (t *Table[K, V]) Name() string { return t.name }

// Get returns the loaded map. Callers must not modify it. If the load failed,
// Get panics with a *LoadError, on this and every later call.
func (t *Table[K, V]) Get() map[K]V {
	t.once.Do(t.fill)
	if t.err != nil {
		panic(t.err)
	}
	return t.data
}

func (t *Table[K, V]) fill() {
	t.loads.Add(1)
	data, err := t.safeLoad()
	if err != nil {
		t.err = &LoadError{Table: t.name, Err: err}
		logf("Failed to load %s: %v", t.name, err)
		return
	}
	t.data = data
	logf("Loaded %s (%d entries)", t.name, len(data))
}

// safeLoad reports a panicking loader as a load error.
func (t *Table[K, V]) safeLoad() (data map[K]V, err error) {
	defer func() {
		if r := recover(); r != nil {
			if le, ok := r.(*LoadError); ok {
				err = le
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return t.load()
}

// Lookup returns the value stored under k.
func (t *Table[K, V]) Lookup(k K) (V, bool) {
	v, ok := t.Get()[k]
	return v, ok
}

// Keys returns every key in ascending order.
func (t *Table[K, V]) Keys() []K {
	m := t.Get()
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	return len(t.Get())
}

// Loads reports how many times the loader has run. It is at most one.
func (t *Table[K, V]) Loads() int64 {
	return t.loads.Load()
}
