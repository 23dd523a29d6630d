// Package testutil holds helpers shared by the package tests.
package testutil

import "testing"

// Recover runs fn and returns the value it panicked with. The test fails if
// fn returns normally.
func Recover(t *testing.T, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatal("expected panic, function returned normally")
		}
	}()
	fn()
	return nil
}

// RecoverError is Recover for panics carrying an error value.
func RecoverError(t *testing.T, fn func()) error {
	t.Helper()
	r := Recover(t, fn)
	err, ok := r.(error)
	if !ok {
		t.Fatalf("panic value %T (%v) is not an error", r, r)
	}
	return err
}
