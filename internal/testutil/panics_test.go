package testutil

import (
	"errors"
	"testing"
)

func TestRecoverReturnsPanicValue(t *testing.T) {
	if got := Recover(t, func() { panic("boom") }); got != "boom" {
		t.Fatalf("Recover = %v, want boom", got)
	}
}

func TestRecoverError(t *testing.T) {
	want := errors.New("boom")
	if got := RecoverError(t, func() { panic(want) }); got != want {
		t.Fatalf("RecoverError = %v, want %v", got, want)
	}
}
