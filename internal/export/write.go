package export

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/nupi-ai/localecodes/codes"
	"github.com/nupi-ai/localecodes/codes/codeset"
	"github.com/nupi-ai/localecodes/codes/country"
	"github.com/nupi-ai/localecodes/codes/currency"
	"github.com/nupi-ai/localecodes/codes/language"
	"github.com/nupi-ai/localecodes/codes/region"
	"github.com/nupi-ai/localecodes/codes/script"
	"github.com/nupi-ai/localecodes/internal/version"
)

// WriteAll replaces the snapshot contents with every registry, in a single
// transaction. A failure leaves the previous contents untouched.
func (w *Writer) WriteAll(ctx context.Context) (Counts, error) {
	var c Counts
	err := withTx(ctx, w.db, func(tx *sql.Tx) error {
		for _, table := range dataTables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("export: clear %s: %w", table, err)
			}
		}

		steps := []struct {
			name string
			fn   func(context.Context, *sql.Tx) (int, error)
			dst  *int
		}{
			{"datasets", writeDatasets, nil},
			{"codesets", writeCodesets, &c.Codesets},
			{"languages", writeLanguages, &c.Languages},
			{"regions", writeRegions, &c.Regions},
			{"countries", writeCountries, &c.Countries},
			{"currencies", writeCurrencies, &c.Currencies},
			{"scripts", writeScripts, &c.Scripts},
		}
		for _, step := range steps {
			n, err := step.fn(ctx, tx)
			if err != nil {
				return fmt.Errorf("export: write %s: %w", step.name, err)
			}
			if step.dst != nil {
				*step.dst = n
			}
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO meta (key, value) VALUES ('version', ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, version.String()); err != nil {
			return fmt.Errorf("export: record version: %w", err)
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}

	log.Printf("[Export] Wrote %s: %d codesets, %d languages, %d countries, %d regions, %d currencies, %d scripts",
		w.path, c.Codesets, c.Languages, c.Countries, c.Regions, c.Currencies, c.Scripts)
	return c, nil
}

func writeDatasets(ctx context.Context, tx *sql.Tx) (int, error) {
	ds, err := codes.Datasets()
	if err != nil {
		return 0, err
	}
	for _, d := range ds {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO datasets (name, standard, source, version) VALUES (?, ?, ?, ?)`,
			d.Name, d.Standard, d.Source, d.Version,
		); err != nil {
			return 0, err
		}
	}
	return len(ds), nil
}

func writeCodesets(ctx context.Context, tx *sql.Tx) (int, error) {
	names := codeset.AllNames()
	for _, name := range names {
		info, _ := codeset.Lookup(name)
		aka, err := encodeJSON(info.AlsoKnownAs)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO codesets (name, also_known_as, mib_code, source, refs) VALUES (?, ?, ?, ?, ?)`,
			info.Name, aka, info.MIBCode, nullable(info.Source), nullable(info.References),
		); err != nil {
			return 0, err
		}
	}
	return len(names), nil
}

func writeLanguages(ctx context.Context, tx *sql.Tx) (int, error) {
	all := language.AllCodes()
	for _, code := range all {
		info, _ := language.LookupByLongCode(code)
		other, err := encodeJSON(info.OtherNames)
		if err != nil {
			return 0, err
		}
		members, err := encodeJSON(info.FamilyMembers)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO languages (code, reference_name, indigenous_name, other_names, bibliographic_code,
				terminology_code, short_code, scope, l_type, family_members)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			info.Code, info.ReferenceName, nullable(info.IndigenousName), other,
			nullable(info.BibliographicCode), nullable(info.TerminologyCode), nullable(info.ShortCode),
			info.Class.String(), info.Type.String(), members,
		); err != nil {
			return 0, err
		}
	}
	return len(all), nil
}

func writeRegions(ctx context.Context, tx *sql.Tx) (int, error) {
	all := region.AllCodes()
	for _, code := range all {
		info, _ := region.Lookup(code)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO regions (code, name) VALUES (?, ?)`, info.Code, info.Name,
		); err != nil {
			return 0, err
		}
	}
	return len(all), nil
}

func writeCountries(ctx context.Context, tx *sql.Tx) (int, error) {
	all := country.AllCodes()
	for _, code := range all {
		info, _ := country.LookupByLongCode(code)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO countries (code, short_code, country_code, region_code, sub_region_code, intermediate_region_code)
			VALUES (?, ?, ?, ?, ?, ?)`,
			info.Code, info.ShortCode, info.CountryCode,
			nullable(info.RegionCode), nullable(info.SubRegionCode), nullable(info.IntermediateRegionCode),
		); err != nil {
			return 0, err
		}
	}
	return len(all), nil
}

func writeCurrencies(ctx context.Context, tx *sql.Tx) (int, error) {
	all := currency.AllAlphaCodes()
	for _, code := range all {
		info, _ := currency.LookupByAlpha(code)
		entities, err := encodeJSON(info.StandardsEntities)
		if err != nil {
			return 0, err
		}
		subs, err := encodeJSON(info.Subdivisions)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO currencies (alphabetic_code, name, numeric_code, symbol, standards_entities, subdivisions)
			VALUES (?, ?, ?, ?, ?, ?)`,
			info.AlphabeticCode, info.Name, nullable(info.NumericCode), nullable(info.Symbol), entities, subs,
		); err != nil {
			return 0, err
		}
	}
	return len(all), nil
}

func writeScripts(ctx context.Context, tx *sql.Tx) (int, error) {
	all := script.AllAlphaCodes()
	for _, code := range all {
		info, _ := script.LookupByAlpha(code)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO scripts (alphabetic_code, numeric_code, name, alias) VALUES (?, ?, ?, ?)`,
			info.AlphabeticCode, info.NumericCode, info.Name, nullable(info.Alias),
		); err != nil {
			return 0, err
		}
	}
	return len(all), nil
}
