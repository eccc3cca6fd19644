package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS settings (
    identity_id  TEXT PRIMARY KEY,
    display_name TEXT NOT NULL,
    color        TEXT NOT NULL,
    enabled      INTEGER NOT NULL DEFAULT 1,
    updated_at   TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS meta (
    key   TEXT PRIMARY KEY,
    value TEXT
);
`

// schemaVersion is bumped whenever the settings table changes shape.
const schemaVersion = "1"

// Setting is the display configuration of one identity.
type Setting struct {
	DisplayName string `json:"display_name" yaml:"display_name"`
	Color       string `json:"color" yaml:"color"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

// Store persists settings between runs.
type Store interface {
	Load(ctx context.Context) (map[string]Setting, error)
	Save(ctx context.Context, settings map[string]Setting) error
}

type DB struct {
	db *sql.DB
}

var _ Store = (*DB)(nil)

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	d := &DB{db: db}
	if err := d.migrateSchemaVersion(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) migrateSchemaVersion() error {
	var ver string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&ver)
	if err == nil && ver == schemaVersion {
		return nil
	}
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("read schema version: %w", err)
	}
	if _, err := d.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)", schemaVersion); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}

// SchemaVersion returns the version recorded in the meta table.
func (d *DB) SchemaVersion() (string, error) {
	var ver string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&ver)
	return ver, err
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Load(ctx context.Context) (map[string]Setting, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT identity_id, display_name, color, enabled FROM settings")
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	defer rows.Close()

	out := make(map[string]Setting)
	for rows.Next() {
		var (
			id string
			s  Setting
		)
		if err := rows.Scan(&id, &s.DisplayName, &s.Color, &s.Enabled); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out[id] = s
	}
	return out, rows.Err()
}

// Save upserts every setting in one transaction. Rows not in settings are kept.
func (d *DB) Save(ctx context.Context, settings map[string]Setting) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO settings (identity_id, display_name, color, enabled, updated_at)
		VALUES (?, ?, ?, ?, datetime('now'))`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for id, s := range settings {
		if _, err := stmt.ExecContext(ctx, id, s.DisplayName, s.Color, s.Enabled); err != nil {
			return fmt.Errorf("save setting %s: %w", id, err)
		}
	}
	return tx.Commit()
}

func (d *DB) Delete(ctx context.Context, identityID string) error {
	_, err := d.db.ExecContext(ctx, "DELETE FROM settings WHERE identity_id = ?", identityID)
	return err
}

func (d *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM settings").Scan(&n)
	return n, err
}
