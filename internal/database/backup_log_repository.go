package database

import (
	"fmt"

	"github.com/example/engmemory/pkg/models"
)

// BackupLogRepository keeps the append-only log of created backups.
// Physical retention is the backup manager's job; log rows outlive the
// files they describe.
type BackupLogRepository struct{}

// NewBackupLogRepository creates a new repository instance.
func NewBackupLogRepository() *BackupLogRepository {
	return &BackupLogRepository{}
}

// Record appends one backup to the log.
func (r *BackupLogRepository) Record(path, kind string, sizeBytes int64) error {
	_, err := DB.Exec(DB.Rebind(`
		INSERT INTO backups (path, kind, size_bytes)
		VALUES (?, ?, ?)`),
		path, kind, sizeBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to record backup: %v", err)
	}
	return nil
}

// GetRecent returns the most recent log rows, newest first.
func (r *BackupLogRepository) GetRecent(limit int) ([]models.BackupRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []models.BackupRecord
	err := DB.Select(&records, DB.Rebind(`
		SELECT id, path, kind, size_bytes, created_at
		FROM backups
		ORDER BY created_at DESC, id DESC
		LIMIT ?`),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get backup log: %v", err)
	}
	return records, nil
}
