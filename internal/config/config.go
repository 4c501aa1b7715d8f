package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

// Default values used when the corresponding environment variable is not
// set.
const (
	DefaultAppDirName     = "engmemory"
	DefaultVocabularyFile = "palabras.json"
	DefaultDatabaseFile   = "statistics.db"
	DefaultMaxBackups     = 10
	DefaultBackupInterval = 5 * time.Minute
	DefaultSearchDebounce = 300 * time.Millisecond
)

// Config holds all application settings. It is built once at startup and
// passed explicitly to every component that needs it.
type Config struct {
	// DataDir is the directory holding the vocabulary document and the
	// statistics database.
	DataDir string
	// VocabularyPath is the JSON vocabulary document.
	VocabularyPath string
	// DBType selects the history backend: "sqlite" or "postgres".
	DBType string
	// DBPath is the SQLite database file (sqlite backend only).
	DBPath string
	// DatabaseURL is the connection string for the postgres backend.
	DatabaseURL string
	// BackupDir overrides where backups are written. Empty means next to
	// the source file.
	BackupDir string
	// MaxBackups is the number of snapshots kept per file.
	MaxBackups int
	// BackupInterval is how often the background backup job runs.
	BackupInterval time.Duration
	// SearchDebounce is the quiet period for search-as-you-type inputs.
	SearchDebounce time.Duration
}

// Load builds a Config from environment variables, falling back to the
// platform data directory for file locations.
func Load() Config {
	dataDir := os.Getenv("ENGMEMORY_DATA_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(xdg.DataHome, DefaultAppDirName)
	}

	cfg := Config{
		DataDir:        dataDir,
		VocabularyPath: filepath.Join(dataDir, DefaultVocabularyFile),
		DBType:         "sqlite",
		DBPath:         filepath.Join(dataDir, DefaultDatabaseFile),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		BackupDir:      os.Getenv("ENGMEMORY_BACKUP_DIR"),
		MaxBackups:     DefaultMaxBackups,
		BackupInterval: DefaultBackupInterval,
		SearchDebounce: DefaultSearchDebounce,
	}

	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		cfg.DBType = dbType
	}

	if v := os.Getenv("ENGMEMORY_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxBackups = n
		}
	}

	if v := os.Getenv("ENGMEMORY_BACKUP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.BackupInterval = d
		}
	}

	if v := os.Getenv("ENGMEMORY_SEARCH_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SearchDebounce = d
		}
	}

	return cfg
}

// EnsureDataDir creates the data directory if it does not exist.
func (c Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}
