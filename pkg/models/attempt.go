package models

import (
	"database/sql"
	"time"
)

// Mode is the direction of a practice question.
type Mode string

const (
	// EnglishToSpanish shows the English word and expects the translation.
	EnglishToSpanish Mode = "en_es"
	// SpanishToEnglish shows the translation and expects the English word.
	SpanishToEnglish Mode = "es_en"
)

// Valid reports whether the mode is one of the known directions.
func (m Mode) Valid() bool {
	return m == EnglishToSpanish || m == SpanishToEnglish
}

// Attempt is one graded quiz answer. Attempts are immutable once written.
// Word references a vocabulary entry by text key; the reference is
// advisory and survives deletion of the entry.
type Attempt struct {
	ID             int64          `json:"id" db:"id"`
	Word           string         `json:"word" db:"word"`
	Mode           Mode           `json:"mode" db:"mode"`
	Correct        bool           `json:"correct" db:"correct"`
	UserAnswer     sql.NullString `json:"user_answer" db:"user_answer"`
	ResponseTimeMs sql.NullInt64  `json:"response_time_ms" db:"response_time_ms"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}
