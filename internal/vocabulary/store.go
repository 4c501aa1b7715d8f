// Package vocabulary owns the word map and its JSON persistence.
package vocabulary

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/example/engmemory/internal/backup"
	"github.com/example/engmemory/pkg/models"
)

var (
	// ErrWordExists is returned by Add when the normalized key is already
	// present.
	ErrWordExists = errors.New("vocabulary: word already exists")
	// ErrNotFound is returned when a word is not in the vocabulary.
	ErrNotFound = errors.New("vocabulary: word not found")
)

// Store keeps the whole vocabulary in memory and rewrites the JSON
// document on every mutation. A snapshot of the previous document is
// taken before each overwrite so a failed write never loses the prior
// good state.
type Store struct {
	path    string
	backups *backup.Manager

	// OnBackup, when set, is called with the path of every snapshot
	// created by a save.
	OnBackup func(path string)

	mu    sync.RWMutex
	vocab models.Vocabulary
}

// Normalize applies the word-key policy: trimmed and lower-cased. The
// same policy is applied on add, edit, lookup and import.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Open loads the vocabulary document at path. A missing or empty file
// yields an empty vocabulary; a document that exists but cannot be parsed
// is an error, so a corrupt file is never silently replaced.
func Open(path string, backups *backup.Manager) (*Store, error) {
	s := &Store{
		path:    path,
		backups: backups,
		vocab:   models.Vocabulary{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read vocabulary file: %v", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return s, nil
	}

	var raw models.Vocabulary
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file: %v", err)
	}
	// Documents written before the key policy existed may hold
	// mixed-case keys; normalize them on load so every entry stays
	// reachable.
	for word, entry := range raw {
		s.vocab[Normalize(word)] = entry
	}
	return s, nil
}

// Path returns the location of the persisted document.
func (s *Store) Path() string {
	return s.path
}

// Add stores a new entry and persists the document. Fails with
// ErrWordExists when the normalized key is already present.
func (s *Store) Add(word string, entry models.Entry) error {
	key := Normalize(word)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vocab[key]; ok {
		return fmt.Errorf("%w: %s", ErrWordExists, key)
	}
	s.vocab[key] = entry
	return s.save()
}

// Edit replaces oldWord with newWord in a single in-memory operation
// before any persistence attempt, so a failure can never lose the
// original entry. When newWord differs from oldWord and already exists it
// is overwritten, matching delete-then-create semantics.
func (s *Store) Edit(oldWord, newWord string, entry models.Entry) error {
	oldKey := Normalize(oldWord)
	newKey := Normalize(newWord)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vocab[oldKey]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, oldKey)
	}
	if oldKey != newKey {
		delete(s.vocab, oldKey)
	}
	s.vocab[newKey] = entry
	return s.save()
}

// Remove deletes a word. Returns true when the word existed; the
// document is only rewritten in that case.
func (s *Store) Remove(word string) (bool, error) {
	key := Normalize(word)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vocab[key]; !ok {
		return false, nil
	}
	delete(s.vocab, key)
	return true, s.save()
}

// PutAll upserts a batch of entries, overwriting existing words, and
// saves the document once. Keys are normalized; entries with an empty
// word or translation, or with over-long fields, are skipped. Returns
// the number of entries stored.
func (s *Store) PutAll(entries models.Vocabulary) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for word, entry := range entries {
		key := Normalize(word)
		if key == "" || entry.Translation == "" {
			continue
		}
		if utf8.RuneCountInString(key) > MaxWordLen ||
			utf8.RuneCountInString(entry.Translation) > MaxTranslationLen ||
			utf8.RuneCountInString(entry.Pronunciation) > MaxPronunciationLen ||
			utf8.RuneCountInString(entry.Notes) > MaxNotesLen {
			continue
		}
		s.vocab[key] = entry
		count++
	}

	if count == 0 {
		return 0, nil
	}
	return count, s.save()
}

// Get returns the entry for a word.
func (s *Store) Get(word string) (models.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.vocab[Normalize(word)]
	return entry, ok
}

// Exists reports whether a word is present.
func (s *Store) Exists(word string) bool {
	_, ok := s.Get(word)
	return ok
}

// Count returns the number of entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vocab)
}

// All returns a copy of the whole vocabulary.
func (s *Store) All() models.Vocabulary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(models.Vocabulary, len(s.vocab))
	for word, entry := range s.vocab {
		out[word] = entry
	}
	return out
}

// Search returns entries whose word or translation contains query,
// case-insensitively. An empty query returns everything.
func (s *Store) Search(query string) models.Vocabulary {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.All()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := models.Vocabulary{}
	for word, entry := range s.vocab {
		if strings.Contains(word, query) || strings.Contains(strings.ToLower(entry.Translation), query) {
			out[word] = entry
		}
	}
	return out
}

// save rewrites the whole document. A backup of the previous document is
// created first; the write itself goes through a temp file and rename so
// a crash cannot truncate the document. Callers must hold the write lock.
func (s *Store) save() error {
	if _, err := os.Stat(s.path); err == nil {
		backupPath, err := s.backups.Create(s.path)
		if err != nil {
			log.Printf("vocabulary: backup before save failed: %v", err)
		} else if s.OnBackup != nil {
			s.OnBackup(backupPath)
		}
	}

	data, err := json.MarshalIndent(s.vocab, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode vocabulary: %v", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %v", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write vocabulary: %v", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync vocabulary: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %v", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace vocabulary file: %v", err)
	}
	return nil
}
