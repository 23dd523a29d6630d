// Package export writes every code registry into a SQLite snapshot so the
// data can be queried with SQL tools outside Go.
package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nupi-ai/localecodes/internal/config"
	"github.com/nupi-ai/localecodes/internal/version"
)

const (
	defaultBusyTimeout = 5 * time.Second
	openTimeout        = 5 * time.Second
)

// Writer owns an open snapshot database.
type Writer struct {
	db   *sql.DB
	path string
}

// Counts holds the number of rows written per registry table.
type Counts struct {
	Codesets   int `json:"codesets" yaml:"codesets"`
	Languages  int `json:"languages" yaml:"languages"`
	Countries  int `json:"countries" yaml:"countries"`
	Regions    int `json:"regions" yaml:"regions"`
	Currencies int `json:"currencies" yaml:"currencies"`
	Scripts    int `json:"scripts" yaml:"scripts"`
}

// Open creates or opens the snapshot database at path and makes sure its
// schema exists. The parent directory is created when missing.
func Open(path string) (*Writer, error) {
	if path == "" {
		return nil, errors.New("export: empty snapshot path")
	}
	path = config.ExpandPath(path)
	if err := config.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("export: ensure snapshot directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("export: open sqlite snapshot: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	if err := applyPragmas(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	if err := withTx(ctx, db, func(tx *sql.Tx) error { return createSchema(ctx, tx) }); err != nil {
		db.Close()
		return nil, err
	}

	w := &Writer{db: db, path: path}
	if prev, err := w.SnapshotVersion(ctx); err != nil {
		db.Close()
		return nil, err
	} else if warning := version.CheckSnapshotVersion(prev); warning != "" {
		log.Printf("[Export] %s", warning)
	}
	return w, nil
}

// Path returns the location of the snapshot file.
func (w *Writer) Path() string {
	return w.path
}

// Close folds the write-ahead log back into the snapshot file and closes the
// database. An error means the file on disk may not hold the last write.
func (w *Writer) Close() error {
	if w == nil || w.db == nil {
		return nil
	}
	var errs []error
	if _, err := w.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		errs = append(errs, fmt.Errorf("export: checkpoint snapshot: %w", err))
	}
	if err := w.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("export: close snapshot: %w", err))
	}
	return errors.Join(errs...)
}

// SnapshotVersion returns the localecodes version that last wrote the
// snapshot, or "" for a fresh database.
func (w *Writer) SnapshotVersion(ctx context.Context) (string, error) {
	var v string
	err := w.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'version'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("export: read snapshot version: %w", err)
	}
	return v, nil
}

// Stored counts the rows currently held in each registry table.
func (w *Writer) Stored(ctx context.Context) (Counts, error) {
	var c Counts
	targets := []struct {
		table string
		dst   *int
	}{
		{"codesets", &c.Codesets},
		{"languages", &c.Languages},
		{"countries", &c.Countries},
		{"regions", &c.Regions},
		{"currencies", &c.Currencies},
		{"scripts", &c.Scripts},
	}
	for _, t := range targets {
		if err := w.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.table).Scan(t.dst); err != nil {
			return Counts{}, fmt.Errorf("export: count %s: %w", t.table, err)
		}
	}
	return c, nil
}

// withTx runs fn in a transaction on db, committing when fn succeeds and
// rolling back otherwise.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("export: begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("export: rollback failed after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export: commit transaction: %w", err)
	}
	return nil
}
