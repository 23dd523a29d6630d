package script

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
	if byAlpha.Loads() != 0 || byNumeric.Loads() != 0 {
		t.Skip("registry already loaded")
	}

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			if _, ok := LookupByNumeric(80); !ok {
				return errors.New("script 80 not found")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if byAlpha.Loads() != 1 || byNumeric.Loads() != 1 {
		t.Fatalf("loads: alpha %d, numeric %d", byAlpha.Loads(), byNumeric.Loads())
	}
}

func TestLookupRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		alpha   string
		numeric uint16
		name    string
	}{
		{"Hluw", 80, "Anatolian Hieroglyphs (Luwian Hieroglyphs, Hittite Hieroglyphs)"},
		{"Latn", 215, "Latin"},
	}

	for _, tt := range tests {
		t.Run(tt.alpha, func(t *testing.T) {
			t.Parallel()
			byNum, ok := LookupByNumeric(tt.numeric)
			if !ok {
				t.Fatalf("LookupByNumeric(%d) returned not found", tt.numeric)
			}
			if byNum.AlphabeticCode != tt.alpha || byNum.Name != tt.name {
				t.Errorf("LookupByNumeric(%d) = %+v", tt.numeric, byNum)
			}
			alpha, ok := LookupByAlpha(tt.alpha)
			if !ok || alpha.NumericCode != tt.numeric {
				t.Errorf("LookupByAlpha(%q) = %+v, %v", tt.alpha, alpha, ok)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	if _, ok := LookupByAlpha("Qqqq"); ok {
		t.Error("Qqqq should not be registered")
	}
	if _, ok := LookupByAlpha("latn"); ok {
		t.Error("lookups are case-sensitive")
	}
	if _, ok := LookupByNumeric(1); ok {
		t.Error("numeric code 1 should not be registered")
	}
}

func TestLookupInvalidLength(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"", "Lat", "Latin"} {
		t.Run(code, func(t *testing.T) {
			t.Parallel()
			var ce *codes.CodeError
			if err := testutil.RecoverError(t, func() { LookupByAlpha(code) }); !errors.As(err, &ce) {
				t.Fatalf("expected *codes.CodeError panic, got %v", err)
			}
		})
		if err := CheckAlpha(code); !errors.Is(err, codes.ErrInvalidCode) {
			t.Errorf("CheckAlpha(%q) = %v", code, err)
		}
	}
}

func TestAllCodesMatchDataset(t *testing.T) {
	t.Parallel()

	want, err := dataset.Count(dataset.Scripts)
	if err != nil {
		t.Fatal(err)
	}
	alpha, numeric := AllAlphaCodes(), AllNumericCodes()
	if len(alpha) != want || len(numeric) != want {
		t.Fatalf("got %d alpha and %d numeric codes, dataset has %d", len(alpha), len(numeric), want)
	}
	for _, code := range alpha {
		info, ok := LookupByAlpha(code)
		if !ok {
			t.Fatalf("listed code %q does not resolve", code)
		}
		back, ok := LookupByNumeric(info.NumericCode)
		if !ok || back.AlphabeticCode != code {
			t.Errorf("%s: numeric %d resolves to %q", code, info.NumericCode, back.AlphabeticCode)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	t.Parallel()

	a, _ := LookupByAlpha("Latn")
	*a.Alias = "Roman"

	b, _ := LookupByAlpha("Latn")
	if *b.Alias != "Latin" {
		t.Fatal("mutation leaked into registry")
	}
}

