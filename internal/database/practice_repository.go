package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/example/engmemory/pkg/models"
)

// PracticeRepository records graded quiz answers and serves the attempt
// history.
type PracticeRepository struct{}

// NewPracticeRepository creates a new repository instance.
func NewPracticeRepository() *PracticeRepository {
	return &PracticeRepository{}
}

// RecordAttempt logs one graded answer. The attempt row, the per-word
// progress counters and today's daily aggregate are updated in a single
// transaction so the three can never diverge. userAnswer and
// responseTimeMs are optional: empty string and values below 1 are
// stored as NULL.
func (r *PracticeRepository) RecordAttempt(word string, mode models.Mode, correct bool, userAnswer string, responseTimeMs int64) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid practice mode: %s", mode)
	}

	now := time.Now()
	answer := sql.NullString{String: userAnswer, Valid: userAnswer != ""}
	elapsed := sql.NullInt64{Int64: responseTimeMs, Valid: responseTimeMs > 0}

	correctInc := 0
	incorrectInc := 0
	if correct {
		correctInc = 1
	} else {
		incorrectInc = 1
	}

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(DB.Rebind(`
		INSERT INTO practice_attempts (word, mode, correct, user_answer, response_time_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		word, mode, correct, answer, elapsed, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert attempt: %v", err)
	}

	_, err = tx.Exec(DB.Rebind(`
		INSERT INTO word_progress (word, times_shown, times_correct, times_incorrect, last_practiced)
		VALUES (?, 1, ?, ?, ?)
		ON CONFLICT (word) DO UPDATE SET
			times_shown = word_progress.times_shown + 1,
			times_correct = word_progress.times_correct + ?,
			times_incorrect = word_progress.times_incorrect + ?,
			last_practiced = ?`),
		word, correctInc, incorrectInc, now,
		correctInc, incorrectInc, now,
	)
	if err != nil {
		return fmt.Errorf("failed to update word progress: %v", err)
	}

	elapsedOrZero := int64(0)
	if elapsed.Valid {
		elapsedOrZero = elapsed.Int64
	}
	_, err = tx.Exec(DB.Rebind(`
		INSERT INTO daily_stats (date, words_practiced, total_attempts, correct_attempts, total_time_ms)
		VALUES (?, 1, 1, ?, ?)
		ON CONFLICT (date) DO UPDATE SET
			total_attempts = daily_stats.total_attempts + 1,
			correct_attempts = daily_stats.correct_attempts + ?,
			total_time_ms = daily_stats.total_time_ms + ?`),
		now.Format("2006-01-02"), correctInc, elapsedOrZero,
		correctInc, elapsedOrZero,
	)
	if err != nil {
		return fmt.Errorf("failed to update daily stats: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit attempt: %v", err)
	}
	return nil
}

// GetHistory returns the most recent attempts for a word, newest first.
func (r *PracticeRepository) GetHistory(word string, limit int) ([]models.Attempt, error) {
	if limit <= 0 {
		limit = 20
	}
	var attempts []models.Attempt
	err := DB.Select(&attempts, DB.Rebind(`
		SELECT id, word, mode, correct, user_answer, response_time_ms, created_at
		FROM practice_attempts
		WHERE word = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`),
		word, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt history: %v", err)
	}
	return attempts, nil
}
