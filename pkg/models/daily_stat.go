package models

// DailyStat aggregates practice activity for one calendar date.
// Date is stored as YYYY-MM-DD.
type DailyStat struct {
	Date            string `json:"date" db:"date"`
	WordsPracticed  int    `json:"words_practiced" db:"words_practiced"`
	TotalAttempts   int    `json:"total_attempts" db:"total_attempts"`
	CorrectAttempts int    `json:"correct_attempts" db:"correct_attempts"`
	TotalTimeMs     int64  `json:"total_time_ms" db:"total_time_ms"`
}
