package models

import "time"

// WordProgress holds rolling per-word practice counters.
// Invariant: TimesShown == TimesCorrect + TimesIncorrect.
type WordProgress struct {
	Word           string    `json:"word" db:"word"`
	TimesShown     int       `json:"times_shown" db:"times_shown"`
	TimesCorrect   int       `json:"times_correct" db:"times_correct"`
	TimesIncorrect int       `json:"times_incorrect" db:"times_incorrect"`
	LastPracticed  time.Time `json:"last_practiced" db:"last_practiced"`
}

// SuccessRate returns the fraction of correct answers, 0 when the word
// has never been shown.
func (p WordProgress) SuccessRate() float64 {
	if p.TimesShown == 0 {
		return 0
	}
	return float64(p.TimesCorrect) / float64(p.TimesShown)
}

// DifficultWord is one row of the difficulty ranking.
type DifficultWord struct {
	Word           string  `json:"word" db:"word"`
	TimesShown     int     `json:"times_shown" db:"times_shown"`
	TimesCorrect   int     `json:"times_correct" db:"times_correct"`
	TimesIncorrect int     `json:"times_incorrect" db:"times_incorrect"`
	SuccessRate    float64 `json:"success_rate" db:"success_rate"`
}
