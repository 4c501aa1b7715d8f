// Package database manages the practice-history store: every quiz
// attempt, the per-word rolling counters and the daily aggregates.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the shared database connection.
var DB *sqlx.DB

// Options selects and locates the history backend.
type Options struct {
	// Type is "sqlite" (default) or "postgres".
	Type string
	// Path is the SQLite database file.
	Path string
	// URL is the Postgres connection string.
	URL string
}

// Connect opens the history store and initializes its schema.
func Connect(opts Options) error {
	var (
		db  *sqlx.DB
		err error
	)

	switch opts.Type {
	case "", "sqlite":
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		db, err = sqlx.Connect("sqlite3", opts.Path)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}
		// SQLite doesn't support multiple writers.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	case "postgres":
		db, err = sqlx.Connect("postgres", opts.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
	default:
		return fmt.Errorf("unknown database type: %s", opts.Type)
	}

	DB = db
	return initializeSchema()
}

// Close closes the database connection.
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates the tables if they don't exist.
func initializeSchema() error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if DB.DriverName() == "postgres" {
		serial = "BIGSERIAL PRIMARY KEY"
	}

	statements := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS practice_attempts (
			id %s,
			word TEXT NOT NULL,
			mode TEXT NOT NULL,
			correct BOOLEAN NOT NULL,
			user_answer TEXT,
			response_time_ms INTEGER,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, serial),
		`
		CREATE TABLE IF NOT EXISTS word_progress (
			word TEXT PRIMARY KEY,
			times_shown INTEGER NOT NULL DEFAULT 0,
			times_correct INTEGER NOT NULL DEFAULT 0,
			times_incorrect INTEGER NOT NULL DEFAULT 0,
			last_practiced TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`
		CREATE TABLE IF NOT EXISTS daily_stats (
			date TEXT PRIMARY KEY,
			words_practiced INTEGER NOT NULL DEFAULT 0,
			total_attempts INTEGER NOT NULL DEFAULT 0,
			correct_attempts INTEGER NOT NULL DEFAULT 0,
			total_time_ms INTEGER NOT NULL DEFAULT 0
		)`,
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS categories (
			id %s,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, serial),
		`
		CREATE TABLE IF NOT EXISTS word_categories (
			word TEXT NOT NULL,
			category_id INTEGER NOT NULL REFERENCES categories(id),
			PRIMARY KEY (word, category_id)
		)`,
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS backups (
			id %s,
			path TEXT NOT NULL,
			kind TEXT NOT NULL DEFAULT 'automatic',
			size_bytes INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, serial),
		`
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT 'string'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_word ON practice_attempts(word)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_created ON practice_attempts(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}
