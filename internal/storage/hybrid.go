// Package storage combines the JSON vocabulary store and the relational
// practice-history store behind one facade. The two stores are
// independently persisted and are not transactionally consistent with
// each other.
package storage

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/example/engmemory/internal/backup"
	"github.com/example/engmemory/internal/config"
	"github.com/example/engmemory/internal/database"
	"github.com/example/engmemory/internal/vocabulary"
	"github.com/example/engmemory/pkg/models"
)

// Hybrid is the storage facade the rest of the application depends on.
// It carries no state of its own beyond construction ordering.
type Hybrid struct {
	Backups    *backup.Manager
	Vocabulary *vocabulary.Store

	practice   *database.PracticeRepository
	progress   *database.ProgressRepository
	stats      *database.StatsRepository
	backupLog  *database.BackupLogRepository
	categories *database.CategoryRepository
	settings   *database.SettingsRepository
}

// Open wires the whole storage layer: backup manager first, then an
// eager safety snapshot of the vocabulary document, then the vocabulary
// itself, then the history schema.
func Open(cfg config.Config) (*Hybrid, error) {
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}

	manager := backup.New(cfg.BackupDir, cfg.MaxBackups)

	h := &Hybrid{
		Backups:    manager,
		practice:   database.NewPracticeRepository(),
		progress:   database.NewProgressRepository(),
		stats:      database.NewStatsRepository(),
		backupLog:  database.NewBackupLogRepository(),
		categories: database.NewCategoryRepository(),
		settings:   database.NewSettingsRepository(),
	}

	// Startup snapshot, before anything touches the document.
	startupBackup := ""
	if path, err := manager.Create(cfg.VocabularyPath); err == nil {
		startupBackup = path
	} else if !errors.Is(err, backup.ErrNotFound) {
		log.Printf("storage: startup backup failed: %v", err)
	}

	store, err := vocabulary.Open(cfg.VocabularyPath, manager)
	if err != nil {
		return nil, err
	}
	h.Vocabulary = store

	err = database.Connect(database.Options{
		Type: cfg.DBType,
		Path: cfg.DBPath,
		URL:  cfg.DatabaseURL,
	})
	if err != nil {
		return nil, err
	}

	// Every snapshot taken by a save lands in the backup log.
	store.OnBackup = func(path string) {
		h.logBackup(path, models.BackupAutomatic)
	}
	if startupBackup != "" {
		h.logBackup(startupBackup, models.BackupAutomatic)
	}

	return h, nil
}

// Close releases the history store connection.
func (h *Hybrid) Close() error {
	return database.Close()
}

// BackupNow snapshots the vocabulary document on demand and logs it as a
// manual backup.
func (h *Hybrid) BackupNow() (string, error) {
	path, err := h.Backups.Create(h.Vocabulary.Path())
	if err != nil {
		return "", err
	}
	h.logBackup(path, models.BackupManual)
	return path, nil
}

// RecordAttempt forwards a graded answer to the history store.
func (h *Hybrid) RecordAttempt(word string, mode models.Mode, correct bool, userAnswer string, responseTimeMs int64) error {
	return h.practice.RecordAttempt(word, mode, correct, userAnswer, responseTimeMs)
}

// GetWordProgress returns rolling counters for one word, nil if never
// practiced.
func (h *Hybrid) GetWordProgress(word string) (*models.WordProgress, error) {
	return h.progress.GetByWord(word)
}

// GetDifficultWords returns the difficulty ranking.
func (h *Hybrid) GetDifficultWords(limit int) ([]models.DifficultWord, error) {
	return h.progress.GetDifficultWords(limit)
}

// GetPeriodStats returns daily aggregates for the last N days.
func (h *Hybrid) GetPeriodStats(days int) ([]models.DailyStat, error) {
	return h.stats.GetPeriod(days)
}

// GetStudyStreak returns the number of active days in the last 30.
func (h *Hybrid) GetStudyStreak() (int, error) {
	return h.stats.GetStudyStreak()
}

// GetAttemptHistory returns recent attempts for a word, newest first.
func (h *Hybrid) GetAttemptHistory(word string, limit int) ([]models.Attempt, error) {
	return h.practice.GetHistory(word, limit)
}

// GetRecentBackups returns the latest rows of the backup log.
func (h *Hybrid) GetRecentBackups(limit int) ([]models.BackupRecord, error) {
	return h.backupLog.GetRecent(limit)
}

// CreateCategory inserts a category and fills in its ID.
func (h *Hybrid) CreateCategory(category *models.Category) error {
	return h.categories.Create(category)
}

// GetCategories returns all categories ordered by name.
func (h *Hybrid) GetCategories() ([]models.Category, error) {
	return h.categories.GetAll()
}

// AssignCategory links a word to a category.
func (h *Hybrid) AssignCategory(word string, categoryID int64) error {
	return h.categories.Assign(word, categoryID)
}

// GetWordCategories returns the categories assigned to a word.
func (h *Hybrid) GetWordCategories(word string) ([]models.Category, error) {
	return h.categories.GetWordCategories(word)
}

// GetSetting returns a stored setting, or fallback when unset.
func (h *Hybrid) GetSetting(key, fallback string) (string, error) {
	return h.settings.Get(key, fallback)
}

// SetSetting stores a setting value.
func (h *Hybrid) SetSetting(key, value string) error {
	return h.settings.Set(key, value, "string")
}

// logBackup appends a snapshot to the backup log. Failures are logged
// and swallowed: the log is advisory, the snapshot already exists.
func (h *Hybrid) logBackup(path, kind string) {
	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	if err := h.backupLog.Record(path, kind, size); err != nil {
		log.Printf("storage: failed to log backup %s: %v", path, err)
	}
}
