package country

import (
	"errors"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/nupi-ai/localecodes/codes"
	"github.com/nupi-ai/localecodes/internal/dataset"
	"github.com/nupi-ai/localecodes/internal/testutil"
)

func TestConcurrentFirstAccess(t *testing.T) {
	// Must run before any other test in the package touches the registry.
	if byCode.Loads() != 0 || byShortCode.Loads() != 0 {
		t.Skip("registry already loaded")
	}

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			if _, ok := Lookup("DE"); !ok {
				return errors.New("DE not found")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if byCode.Loads() != 1 || byShortCode.Loads() != 1 {
		t.Fatalf("loads: codes %d, short codes %d", byCode.Loads(), byShortCode.Loads())
	}
}

func TestLookupGermany(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"DEU", "DE"} {
		t.Run(code, func(t *testing.T) {
			t.Parallel()
			info, ok := Lookup(code)
			if !ok {
				t.Fatalf("Lookup(%q) returned not found", code)
			}
			if info.Code != "DEU" {
				t.Errorf("Code: got %q, want DEU", info.Code)
			}
			if info.ShortCode != "DE" {
				t.Errorf("ShortCode: got %q, want DE", info.ShortCode)
			}
			if info.CountryCode != 276 {
				t.Errorf("CountryCode: got %d, want 276", info.CountryCode)
			}
			if info.RegionCode == nil || *info.RegionCode != 150 {
				t.Errorf("RegionCode: got %v, want 150", info.RegionCode)
			}
			if info.IntermediateRegionCode != nil {
				t.Errorf("IntermediateRegionCode: got %d, want nil", *info.IntermediateRegionCode)
			}
		})
	}
}

func TestLookupShortAndLongAgree(t *testing.T) {
	t.Parallel()

	for _, code := range AllCodes() {
		long, ok := LookupByLongCode(code)
		if !ok {
			t.Fatalf("LookupByLongCode(%q) returned not found", code)
		}
		short, ok := LookupByShortCode(long.ShortCode)
		if !ok {
			t.Fatalf("LookupByShortCode(%q) returned not found", long.ShortCode)
		}
		if short.Code != code {
			t.Errorf("short code %q resolves to %q, want %q", long.ShortCode, short.Code, code)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"XXX", "XX", "deu", "de"} {
		t.Run(code, func(t *testing.T) {
			t.Parallel()
			if info, ok := Lookup(code); ok {
				t.Errorf("Lookup(%q) = %+v, want not found", code, info)
			}
		})
	}
}

func TestLookupInvalidLengthPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"empty", func() { Lookup("") }},
		{"one char", func() { Lookup("D") }},
		{"four chars", func() { Lookup("DEUT") }},
		{"long code given short", func() { LookupByLongCode("DE") }},
		{"short code given long", func() { LookupByShortCode("DEU") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var ce *codes.CodeError
			if err := testutil.RecoverError(t, tt.fn); !errors.As(err, &ce) {
				t.Fatalf("expected *codes.CodeError panic, got %v", err)
			}
		})
	}
}

func TestCheckCode(t *testing.T) {
	t.Parallel()

	if err := CheckCode("DE"); err != nil {
		t.Errorf("CheckCode(DE): %v", err)
	}
	if err := CheckCode("DEU"); err != nil {
		t.Errorf("CheckCode(DEU): %v", err)
	}
	if err := CheckCode("D"); !errors.Is(err, codes.ErrInvalidCode) {
		t.Errorf("CheckCode(D) = %v, want ErrInvalidCode", err)
	}
}

func TestLookupByNumeric(t *testing.T) {
	t.Parallel()

	info, ok := LookupByNumeric(276)
	if !ok || info.Code != "DEU" {
		t.Fatalf("LookupByNumeric(276) = %+v, %v", info, ok)
	}
	if info.NumericString() != "276" {
		t.Errorf("NumericString: got %q", info.NumericString())
	}
	afg, ok := LookupByNumeric(4)
	if !ok || afg.NumericString() != "004" {
		t.Errorf("LookupByNumeric(4) = %+v, %v", afg, ok)
	}
	if _, ok := LookupByNumeric(999); ok {
		t.Error("LookupByNumeric(999) should miss")
	}
}

func TestAllCodesMatchDataset(t *testing.T) {
	t.Parallel()

	want, err := dataset.Count(dataset.Countries)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(AllCodes()); got != want {
		t.Errorf("AllCodes: got %d codes, dataset has %d", got, want)
	}
	if got := len(AllShortCodes()); got != want {
		t.Errorf("AllShortCodes: got %d codes, dataset has %d", got, want)
	}
	for _, code := range AllCodes() {
		if _, ok := Lookup(code); !ok {
			t.Errorf("listed code %q does not resolve", code)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	t.Parallel()

	a, _ := Lookup("DEU")
	*a.RegionCode = 1

	b, _ := Lookup("DEU")
	if *b.RegionCode != 150 {
		t.Fatalf("mutation leaked into registry: RegionCode = %d", *b.RegionCode)
	}
}

