package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS datasets (
		name TEXT PRIMARY KEY,
		standard TEXT NOT NULL,
		source TEXT NOT NULL,
		version TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS codesets (
		name TEXT PRIMARY KEY,
		also_known_as TEXT,
		mib_code INTEGER NOT NULL UNIQUE,
		source TEXT,
		refs TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS languages (
		code TEXT PRIMARY KEY,
		reference_name TEXT NOT NULL,
		indigenous_name TEXT,
		other_names TEXT,
		bibliographic_code TEXT,
		terminology_code TEXT,
		short_code TEXT UNIQUE,
		scope TEXT NOT NULL,
		l_type TEXT NOT NULL,
		family_members TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS regions (
		code INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS countries (
		code TEXT PRIMARY KEY,
		short_code TEXT NOT NULL UNIQUE,
		country_code INTEGER NOT NULL UNIQUE,
		region_code INTEGER,
		sub_region_code INTEGER,
		intermediate_region_code INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS currencies (
		alphabetic_code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		numeric_code INTEGER UNIQUE,
		symbol TEXT,
		standards_entities TEXT,
		subdivisions TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS scripts (
		alphabetic_code TEXT PRIMARY KEY,
		numeric_code INTEGER NOT NULL UNIQUE,
		name TEXT NOT NULL,
		alias TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_countries_region ON countries(region_code)`,
}

// dataTables lists the tables WriteAll replaces, in deletion order.
var dataTables = []string{"datasets", "codesets", "languages", "countries", "regions", "currencies", "scripts"}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", int(defaultBusyTimeout.Milliseconds())),
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("export: apply pragma %q: %w", pragma, err)
		}
	}

	return nil
}

// createSchema runs every schema statement inside tx.
func createSchema(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("export: apply schema statement %q: %w", abbreviate(stmt), err)
		}
	}
	return nil
}

func abbreviate(stmt string) string {
	stmt = strings.Join(strings.Fields(stmt), " ")
	if len(stmt) > 60 {
		return stmt[:57] + "..."
	}
	return stmt
}
