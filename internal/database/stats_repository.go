package database

import (
	"fmt"
	"time"

	"github.com/example/engmemory/pkg/models"
)

// StatsRepository serves the per-day practice aggregates.
type StatsRepository struct{}

// NewStatsRepository creates a new repository instance.
func NewStatsRepository() *StatsRepository {
	return &StatsRepository{}
}

// GetPeriod returns the daily rows for the last N days, newest first.
func (r *StatsRepository) GetPeriod(days int) ([]models.DailyStat, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	var stats []models.DailyStat
	err := DB.Select(&stats, DB.Rebind(`
		SELECT date, words_practiced, total_attempts, correct_attempts, total_time_ms
		FROM daily_stats
		WHERE date >= ?
		ORDER BY date DESC`),
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get period stats: %v", err)
	}
	return stats, nil
}

// GetStudyStreak counts the distinct days with practice activity within
// the last 30 days. Note this is a count of active days in a fixed
// window, not a consecutive-day streak.
func (r *StatsRepository) GetStudyStreak() (int, error) {
	cutoff := time.Now().AddDate(0, 0, -30).Format("2006-01-02")

	var days int
	err := DB.Get(&days, DB.Rebind(`
		SELECT COUNT(DISTINCT date)
		FROM daily_stats
		WHERE date >= ?`),
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to get study streak: %v", err)
	}
	return days, nil
}
