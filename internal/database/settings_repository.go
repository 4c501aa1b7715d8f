package database

import (
	"database/sql"
	"fmt"
)

// SettingsRepository stores key/value application settings.
type SettingsRepository struct{}

// NewSettingsRepository creates a new repository instance.
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Get returns the value for key, or fallback when the key is absent.
func (r *SettingsRepository) Get(key, fallback string) (string, error) {
	var value string
	err := DB.Get(&value, DB.Rebind(`SELECT value FROM settings WHERE key = ?`), key)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting: %v", err)
	}
	return value, nil
}

// Set stores a value for key, replacing any previous one.
func (r *SettingsRepository) Set(key, value, valueType string) error {
	if valueType == "" {
		valueType = "string"
	}
	_, err := DB.Exec(DB.Rebind(`
		INSERT INTO settings (key, value, type)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = ?, type = ?`),
		key, value, valueType, value, valueType,
	)
	if err != nil {
		return fmt.Errorf("failed to save setting: %v", err)
	}
	return nil
}
