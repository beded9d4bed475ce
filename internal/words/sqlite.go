// internal/words/sqlite.go
//
// SQLite-backed answer list.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying schema migrations (idempotent, recorded in _migrations).
//   - Seeding the answers table from the embedded list on first use.
//   - Reading every stored answer into a List.

package words

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// migrations are applied in order; names are recorded once applied.
var migrations = []struct {
	name string
	sql  string
}{
	{"0001_answers", `CREATE TABLE IF NOT EXISTS answers (
		word     TEXT PRIMARY KEY,
		added_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	);`},
}

// FromSQLite loads the answers table from the database at dsn.
// An empty table is seeded from the embedded list before reading.
func FromSQLite(ctx context.Context, dsn string) (*List, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := migrate(ctx, db); err != nil {
		return nil, err
	}
	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT word FROM answers ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("words: query answers: %w", err)
	}
	defer rows.Close()

	var raw []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("words: scan answer: %w", err)
		}
		raw = append(raw, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return NewList(raw)
}

// openDB opens (and creates if missing) a SQLite database file.
func openDB(dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/words.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies pending migrations, each inside its own transaction.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	for _, m := range migrations {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", m.name).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		log.Info().Str("migration", m.name).Msg("applied")
	}
	return nil
}

// seed fills an empty answers table from the embedded list.
func seed(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM answers`).Scan(&n); err != nil {
		return fmt.Errorf("count answers: %w", err)
	}
	if n > 0 {
		return nil
	}

	list, err := FromEmbedded()
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO answers(word) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()
	for _, w := range list.words {
		if _, err := stmt.ExecContext(ctx, string(w)); err != nil {
			return fmt.Errorf("seed %s: %w", w, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	log.Info().Int("answers", list.Len()).Msg("seeded answers table")
	return nil
}
