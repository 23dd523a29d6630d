package language

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/nupi-ai/localecodes/codes"
	"github.com/nupi-ai/localecodes/internal/dataset"
	"github.com/nupi-ai/localecodes/internal/testutil"
)

func TestConcurrentFirstAccess(t *testing.T) {
	// Must run before any other test in the package touches the registry.
	if byCode.Loads() != 0 || byFamilyMember.Loads() != 0 {
		t.Skip("registry already loaded")
	}

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			if _, ok := FamilyOf("yue"); !ok {
				return errors.New("yue has no family")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if byCode.Loads() != 1 || byFamilyMember.Loads() != 1 {
		t.Fatalf("loads: codes %d, family %d", byCode.Loads(), byFamilyMember.Loads())
	}
}

func TestLookupKnownLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code      string
		long      string
		reference string
		short     string
		class     Class
	}{
		{"de", "deu", "German", "de", ClassIndividual},
		{"deu", "deu", "German", "de", ClassIndividual},
		{"zh", "zho", "Chinese", "zh", ClassMacroLanguage},
		{"ar", "ara", "Arabic", "ar", ClassMacroLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			info, ok := Lookup(tt.code)
			if !ok {
				t.Fatalf("Lookup(%q) returned not found", tt.code)
			}
			if info.Code != tt.long {
				t.Errorf("Code: got %q, want %q", info.Code, tt.long)
			}
			if info.ReferenceName != tt.reference {
				t.Errorf("ReferenceName: got %q, want %q", info.ReferenceName, tt.reference)
			}
			if info.ShortCode == nil || *info.ShortCode != tt.short {
				t.Errorf("ShortCode: got %v, want %q", info.ShortCode, tt.short)
			}
			if info.Class != tt.class {
				t.Errorf("Class: got %s, want %s", info.Class, tt.class)
			}
		})
	}
}

func TestLookupWithoutShortCode(t *testing.T) {
	t.Parallel()

	info, ok := LookupByLongCode("und")
	if !ok {
		t.Fatal("und not found")
	}
	if info.ShortCode != nil {
		t.Errorf("und should have no short code, got %q", *info.ShortCode)
	}
	if info.Class != ClassSpecial || info.Type != TypeSpecial {
		t.Errorf("und: class %s, type %s", info.Class, info.Type)
	}
}

func TestCoversIndividualLanguages(t *testing.T) {
	t.Parallel()

	if n := len(AllCodes()); n < 7000 {
		t.Fatalf("only %d languages registered", n)
	}

	tests := []struct {
		code      string
		reference string
		class     Class
		typ       Type
	}{
		{"aaa", "Ghotuo", ClassIndividual, TypeLiving},
		{"yue", "Yue Chinese", ClassIndividual, TypeLiving},
		{"hbs", "Serbo-Croatian", ClassMacroLanguage, TypeLiving},
		{"zza", "Zaza", ClassMacroLanguage, TypeLiving},
		{"zzj", "Zuojiang Zhuang", ClassIndividual, TypeLiving},
	}
	for _, tt := range tests {
		info, ok := LookupByLongCode(tt.code)
		if !ok {
			t.Errorf("%s not found", tt.code)
			continue
		}
		if info.ReferenceName != tt.reference || info.Class != tt.class || info.Type != tt.typ {
			t.Errorf("%s = %q %s %s", tt.code, info.ReferenceName, info.Class, info.Type)
		}
	}

	sh, ok := LookupByShortCode("sh")
	if !ok || sh.Code != "hbs" {
		t.Errorf("LookupByShortCode(sh) = %q, %v", sh.Code, ok)
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"xx", "qqq", "DE", "DEU"} {
		if _, ok := Lookup(code); ok {
			t.Errorf("Lookup(%q) should return not found", code)
		}
	}
}

func TestLookupInvalidLengthPanics(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"", "d", "deut", "german"} {
		t.Run(code, func(t *testing.T) {
			t.Parallel()
			if err := testutil.RecoverError(t, func() { Lookup(code) }); !errors.Is(err, codes.ErrInvalidCode) {
				t.Fatalf("expected *codes.CodeError panic, got %v", err)
			}
		})
	}
	if err := CheckCode("german"); !errors.Is(err, codes.ErrInvalidCode) {
		t.Errorf("CheckCode(german) = %v", err)
	}
}

func TestLookupByBibliographicCode(t *testing.T) {
	t.Parallel()

	tests := map[string]string{"ger": "deu", "chi": "zho", "fre": "fra", "eng": "eng"}
	for bib, want := range tests {
		info, ok := LookupByBibliographicCode(bib)
		if !ok || info.Code != want {
			t.Errorf("LookupByBibliographicCode(%q) = %q, %v; want %q", bib, info.Code, ok, want)
		}
	}
}

func TestFamilyOf(t *testing.T) {
	t.Parallel()

	zho, ok := FamilyOf("cmn")
	if !ok || zho.Code != "zho" {
		t.Fatalf("FamilyOf(cmn) = %q, %v", zho.Code, ok)
	}
	if !zho.IsMacroLanguage() || !slices.Contains(zho.FamilyMembers, "yue") {
		t.Errorf("zho should be a macrolanguage containing yue")
	}
	if _, ok := FamilyOf("deu"); ok {
		t.Error("deu belongs to no macrolanguage")
	}
}

func TestEveryFamilyMemberResolves(t *testing.T) {
	t.Parallel()

	for _, code := range AllCodes() {
		info, _ := LookupByLongCode(code)
		if len(info.FamilyMembers) > 0 && !info.IsMacroLanguage() {
			t.Errorf("%s has members but is %s", code, info.Class)
		}
		for _, m := range info.FamilyMembers {
			member, ok := LookupByLongCode(m)
			if !ok {
				t.Errorf("%s lists member %q, which is not a language", code, m)
				continue
			}
			if member.IsMacroLanguage() {
				t.Errorf("%s lists macrolanguage %q as a member", code, m)
			}
			family, ok := FamilyOf(m)
			if !ok || family.Code != code {
				t.Errorf("FamilyOf(%q) = %q, want %q", m, family.Code, code)
			}
		}
	}
}

func TestTag(t *testing.T) {
	t.Parallel()

	tests := map[string]string{"deu": "de", "zho": "zh", "eng": "en"}
	for code, want := range tests {
		info, ok := LookupByLongCode(code)
		if !ok {
			t.Fatalf("%s not found", code)
		}
		tag, err := info.Tag()
		if err != nil {
			t.Fatalf("%s.Tag(): %v", code, err)
		}
		if tag.String() != want {
			t.Errorf("%s.Tag() = %s, want %s", code, tag, want)
		}
	}
}

func TestAllCodesMatchDataset(t *testing.T) {
	t.Parallel()

	want, err := dataset.Count(dataset.Languages)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(AllCodes()); got != want {
		t.Fatalf("AllCodes: got %d, dataset has %d", got, want)
	}
	for _, code := range AllCodes() {
		if _, ok := Lookup(code); !ok {
			t.Errorf("listed code %q does not resolve", code)
		}
	}
	for _, code := range AllShortCodes() {
		info, ok := Lookup(code)
		if !ok || info.ShortCode == nil || *info.ShortCode != code {
			t.Errorf("short code %q does not resolve to itself", code)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	t.Parallel()

	a, _ := Lookup("zho")
	a.FamilyMembers[0] = "xxx"
	*a.ShortCode = "xx"

	b, _ := Lookup("zho")
	if b.FamilyMembers[0] == "xxx" || *b.ShortCode != "zh" {
		t.Fatal("mutation leaked into registry")
	}
}

func TestClassAndTypeText(t *testing.T) {
	t.Parallel()

	var c Class
	if err := json.Unmarshal([]byte(`"MacroLanguage"`), &c); err != nil || c != ClassMacroLanguage {
		t.Fatalf("unmarshal class: %v, %v", c, err)
	}
	if err := json.Unmarshal([]byte(`"Dialect"`), &c); err == nil {
		t.Error("unknown class should fail to decode")
	}

	var ty Type
	if err := json.Unmarshal([]byte(`"Extinct"`), &ty); err != nil || ty != TypeExtinct {
		t.Fatalf("unmarshal type: %v, %v", ty, err)
	}
	if err := json.Unmarshal([]byte(`"Modern"`), &ty); err == nil {
		t.Error("unknown type should fail to decode")
	}

	out, err := json.Marshal(TypeLiving)
	if err != nil || string(out) != `"Living"` {
		t.Errorf("marshal type: %s, %v", out, err)
	}
	if _, err := Type(42).MarshalText(); err == nil {
		t.Error("out of range type should fail to encode")
	}
	if Class(7).String() != "Class(7)" {
		t.Errorf("String for out of range class: %s", Class(7))
	}
}

