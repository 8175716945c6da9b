// Package workbook reads and writes the planning workbook: a SQLite file
// with one table per sheet (team, workstreams, tasks, public_holidays,
// leave). Reading is deliberately dumb — cells come back as raw strings
// and nullable numbers, and the validate package decides what they mean.
package workbook

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// Open opens an existing workbook for reading. ":memory:" is accepted
// for tests.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("workbook %s: %w", path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return db, nil
}

// Create opens a fresh workbook at path, replacing any existing file,
// and installs the sheet tables.
func Create(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("replacing workbook %s: %w", path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("creating workbook: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if err := Init(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Init installs the sheet tables if they are not present.
func Init(db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating sheet table %d: %w", i, err)
		}
	}
	return nil
}

// missingTable reports whether err is SQLite complaining about a sheet
// that simply is not there. An absent sheet is not a read failure; the
// validator reports it as empty.
func missingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
