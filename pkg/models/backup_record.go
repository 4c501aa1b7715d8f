package models

import "time"

// Backup kinds as stored in the backup log.
const (
	BackupAutomatic = "automatic"
	BackupManual    = "manual"
)

// BackupRecord is one row of the append-only backup log. Retention of the
// physical files is enforced by the backup manager independently of this
// log.
type BackupRecord struct {
	ID        int64     `json:"id" db:"id"`
	Path      string    `json:"path" db:"path"`
	Kind      string    `json:"kind" db:"kind"`
	SizeBytes int64     `json:"size_bytes" db:"size_bytes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
