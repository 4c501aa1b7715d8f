package vocabulary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/example/engmemory/pkg/models"
)

// Field length limits, in characters, enforced before any write reaches
// the store.
const (
	MaxWordLen          = 100
	MaxTranslationLen   = 500
	MaxPronunciationLen = 200
	MaxNotesLen         = 1000
)

// ValidationError reports which field violated which constraint. It is
// always recoverable and meant to be shown to the user as-is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Statistics is an aggregate over the whole vocabulary.
type Statistics struct {
	Total                int `json:"total"`
	WithPronunciation    int `json:"with_pronunciation"`
	WithoutPronunciation int `json:"without_pronunciation"`
	WithNotes            int `json:"with_notes"`
}

// Controller validates input before forwarding to the store.
type Controller struct {
	store *Store
}

// NewController wraps a store.
func NewController(store *Store) *Controller {
	return &Controller{store: store}
}

// Add validates and stores a new word. Fails with ErrWordExists when the
// normalized key is already present.
func (c *Controller) Add(word, translation, pronunciation, notes string) error {
	entry, err := validate(word, translation, pronunciation, notes)
	if err != nil {
		return err
	}
	return c.store.Add(word, entry)
}

// Edit validates the replacement entry before touching the store, so the
// original entry survives any validation failure.
func (c *Controller) Edit(oldWord, newWord, translation, pronunciation, notes string) error {
	entry, err := validate(newWord, translation, pronunciation, notes)
	if err != nil {
		return err
	}
	return c.store.Edit(oldWord, newWord, entry)
}

// Remove deletes a word, reporting whether it existed.
func (c *Controller) Remove(word string) (bool, error) {
	return c.store.Remove(word)
}

// Get returns the entry for a word.
func (c *Controller) Get(word string) (models.Entry, bool) {
	return c.store.Get(word)
}

// Search forwards to the store's substring search.
func (c *Controller) Search(query string) models.Vocabulary {
	return c.store.Search(query)
}

// All returns the whole vocabulary.
func (c *Controller) All() models.Vocabulary {
	return c.store.All()
}

// GetStatistics computes vocabulary aggregates in a single pass. The
// result is recomputed on every call.
func (c *Controller) GetStatistics() Statistics {
	vocab := c.store.All()
	stats := Statistics{Total: len(vocab)}
	for _, entry := range vocab {
		if entry.Pronunciation != "" {
			stats.WithPronunciation++
		}
		if entry.Notes != "" {
			stats.WithNotes++
		}
	}
	stats.WithoutPronunciation = stats.Total - stats.WithPronunciation
	return stats
}

// validate trims and length-checks every field, returning the entry to
// store.
func validate(word, translation, pronunciation, notes string) (models.Entry, error) {
	word = strings.TrimSpace(word)
	translation = strings.TrimSpace(translation)
	pronunciation = strings.TrimSpace(pronunciation)
	notes = strings.TrimSpace(notes)

	switch {
	case word == "":
		return models.Entry{}, &ValidationError{Field: "word", Reason: "must not be empty"}
	case utf8.RuneCountInString(word) > MaxWordLen:
		return models.Entry{}, &ValidationError{Field: "word", Reason: fmt.Sprintf("must not exceed %d characters", MaxWordLen)}
	case translation == "":
		return models.Entry{}, &ValidationError{Field: "translation", Reason: "must not be empty"}
	case utf8.RuneCountInString(translation) > MaxTranslationLen:
		return models.Entry{}, &ValidationError{Field: "translation", Reason: fmt.Sprintf("must not exceed %d characters", MaxTranslationLen)}
	case utf8.RuneCountInString(pronunciation) > MaxPronunciationLen:
		return models.Entry{}, &ValidationError{Field: "pronunciation", Reason: fmt.Sprintf("must not exceed %d characters", MaxPronunciationLen)}
	case utf8.RuneCountInString(notes) > MaxNotesLen:
		return models.Entry{}, &ValidationError{Field: "notes", Reason: fmt.Sprintf("must not exceed %d characters", MaxNotesLen)}
	}

	return models.Entry{
		Translation:   translation,
		Pronunciation: pronunciation,
		Notes:         notes,
	}, nil
}
