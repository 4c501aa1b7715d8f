// Package backup keeps rotating timestamped snapshots of data files.
package backup

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned when the file to back up or restore does not
// exist.
var ErrNotFound = errors.New("backup: file not found")

// suffix separates the base file name from the snapshot timestamp.
const suffix = ".backup_"

// Manager creates and rotates backups of data files, keeping only the
// MaxBackups most recent snapshots per file.
type Manager struct {
	// Dir is the directory backups are written to. Empty means the same
	// directory as the source file.
	Dir string
	// MaxBackups is the retention count. Values below 1 keep one backup.
	MaxBackups int

	now func() time.Time
}

// New creates a manager writing to dir (empty = alongside the source)
// keeping maxBackups snapshots.
func New(dir string, maxBackups int) *Manager {
	if maxBackups < 1 {
		maxBackups = 1
	}
	return &Manager{Dir: dir, MaxBackups: maxBackups, now: time.Now}
}

// Create copies sourcePath to a timestamped snapshot and prunes snapshots
// beyond the retention count. The timestamp carries nanosecond precision
// so rapid successive saves never collide. Returns the snapshot path.
func (m *Manager) Create(sourcePath string) (string, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, sourcePath)
		}
		return "", fmt.Errorf("failed to stat source file: %v", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("source is a directory: %s", sourcePath)
	}

	dir := m.Dir
	if dir == "" {
		dir = filepath.Dir(sourcePath)
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %v", err)
	}

	timestamp := m.now().Format("20060102_150405.000000000")
	backupPath := filepath.Join(dir, filepath.Base(sourcePath)+suffix+timestamp)

	if err := copyFile(sourcePath, backupPath); err != nil {
		return "", fmt.Errorf("failed to create backup: %v", err)
	}

	m.prune(filepath.Base(sourcePath), dir)

	return backupPath, nil
}

// Restore copies a snapshot over targetPath. Retention is not touched.
func (m *Manager) Restore(backupPath, targetPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, backupPath)
		}
		return fmt.Errorf("failed to stat backup file: %v", err)
	}
	if err := copyFile(backupPath, targetPath); err != nil {
		return fmt.Errorf("failed to restore backup: %v", err)
	}
	return nil
}

// List returns the snapshot paths for baseName in dir, newest first. An
// empty dir means the manager's directory, falling back to the current
// directory.
func (m *Manager) List(baseName, dir string) ([]string, error) {
	if dir == "" {
		dir = m.Dir
	}
	if dir == "" {
		dir = "."
	}
	return listBackups(baseName, dir)
}

// prune deletes snapshots of baseName beyond the retention count.
// Deletion failures are logged and swallowed: losing a stale backup is
// less harmful than failing the save that triggered the rotation.
func (m *Manager) prune(baseName, dir string) {
	backups, err := listBackups(baseName, dir)
	if err != nil {
		log.Printf("backup: failed to list backups for pruning: %v", err)
		return
	}
	for _, path := range backups[min(m.MaxBackups, len(backups)):] {
		if err := os.Remove(path); err != nil {
			log.Printf("backup: failed to remove old backup %s: %v", path, err)
		}
	}
}

func listBackups(baseName, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %v", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var found []candidate
	prefix := baseName + suffix
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		found = append(found, candidate{filepath.Join(dir, entry.Name()), info.ModTime()})
	}

	// Newest first; the timestamped name breaks mtime ties.
	sort.Slice(found, func(i, j int) bool {
		if found[i].modTime.Equal(found[j].modTime) {
			return found[i].path > found[j].path
		}
		return found[i].modTime.After(found[j].modTime)
	})

	paths := make([]string, len(found))
	for i, c := range found {
		paths[i] = c.path
	}
	return paths, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
