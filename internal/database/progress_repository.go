package database

import (
	"database/sql"
	"fmt"

	"github.com/example/engmemory/pkg/models"
)

// ProgressRepository serves the per-word rolling counters. Progress rows
// are kept when a vocabulary entry is deleted, so past work stays
// reportable.
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance.
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// GetByWord returns progress for one word, nil when the word was never
// practiced.
func (r *ProgressRepository) GetByWord(word string) (*models.WordProgress, error) {
	var progress models.WordProgress
	err := DB.Get(&progress, DB.Rebind(`
		SELECT word, times_shown, times_correct, times_incorrect, last_practiced
		FROM word_progress
		WHERE word = ?`),
		word,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word progress: %v", err)
	}
	return &progress, nil
}

// GetDifficultWords ranks practiced words by ascending success rate,
// breaking ties by times shown descending: a word seen more often is
// more reliably difficult. Words shown fewer than three times are left
// out to avoid ranking noise from single lucky or unlucky guesses.
func (r *ProgressRepository) GetDifficultWords(limit int) ([]models.DifficultWord, error) {
	if limit <= 0 {
		limit = 10
	}
	var words []models.DifficultWord
	err := DB.Select(&words, DB.Rebind(`
		SELECT word, times_shown, times_correct, times_incorrect,
		       CAST(times_correct AS REAL) / times_shown AS success_rate
		FROM word_progress
		WHERE times_shown >= 3
		ORDER BY success_rate ASC, times_shown DESC
		LIMIT ?`),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get difficult words: %v", err)
	}
	return words, nil
}
