package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/engmemory/pkg/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Connect(Options{Type: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")}))
	t.Cleanup(func() { Close() })
}

func TestRecordAttemptProgressInvariant(t *testing.T) {
	setupDB(t)
	practice := NewPracticeRepository()
	progress := NewProgressRepository()

	require.NoError(t, practice.RecordAttempt("cat", models.EnglishToSpanish, true, "gato", 5000))
	require.NoError(t, practice.RecordAttempt("cat", models.EnglishToSpanish, true, "gato", 3000))
	require.NoError(t, practice.RecordAttempt("cat", models.SpanishToEnglish, false, "dog", 8000))

	p, err := progress.GetByWord("cat")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 3, p.TimesShown)
	assert.Equal(t, 2, p.TimesCorrect)
	assert.Equal(t, 1, p.TimesIncorrect)
	assert.Equal(t, p.TimesShown, p.TimesCorrect+p.TimesIncorrect)
	assert.InDelta(t, 2.0/3.0, p.SuccessRate(), 1e-9)
}

func TestRecordAttemptRejectsUnknownMode(t *testing.T) {
	setupDB(t)
	practice := NewPracticeRepository()
	assert.Error(t, practice.RecordAttempt("cat", models.Mode("upside_down"), true, "", 0))
}

func TestGetByWordNeverPracticed(t *testing.T) {
	setupDB(t)
	progress := NewProgressRepository()

	p, err := progress.GetByWord("ghost")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func practiceN(t *testing.T, practice *PracticeRepository, word string, correct, incorrect int) {
	t.Helper()
	for i := 0; i < correct; i++ {
		require.NoError(t, practice.RecordAttempt(word, models.EnglishToSpanish, true, "", 0))
	}
	for i := 0; i < incorrect; i++ {
		require.NoError(t, practice.RecordAttempt(word, models.EnglishToSpanish, false, "", 0))
	}
}

func TestGetDifficultWordsRanking(t *testing.T) {
	setupDB(t)
	practice := NewPracticeRepository()
	progress := NewProgressRepository()

	practiceN(t, practice, "easy", 4, 0)    // 100%
	practiceN(t, practice, "hard", 1, 3)    // 25%
	practiceN(t, practice, "harder", 1, 5)  // ~17%
	practiceN(t, practice, "new", 1, 1)     // only shown twice, excluded
	practiceN(t, practice, "tied", 2, 6)    // 25%, shown 8 times

	words, err := progress.GetDifficultWords(10)
	require.NoError(t, err)
	require.Len(t, words, 4)

	// Ascending success rate; "tied" beats "hard" on times shown.
	assert.Equal(t, "harder", words[0].Word)
	assert.Equal(t, "tied", words[1].Word)
	assert.Equal(t, "hard", words[2].Word)
	assert.Equal(t, "easy", words[3].Word)

	for _, w := range words {
		assert.GreaterOrEqual(t, w.TimesShown, 3)
	}
}

func TestGetDifficultWordsLimit(t *testing.T) {
	setupDB(t)
	practice := NewPracticeRepository()
	progress := NewProgressRepository()

	practiceN(t, practice, "one", 0, 3)
	practiceN(t, practice, "two", 0, 3)
	practiceN(t, practice, "three", 0, 3)

	words, err := progress.GetDifficultWords(2)
	require.NoError(t, err)
	assert.Len(t, words, 2)
}

func TestDailyStatsAggregation(t *testing.T) {
	setupDB(t)
	practice := NewPracticeRepository()
	stats := NewStatsRepository()

	require.NoError(t, practice.RecordAttempt("cat", models.EnglishToSpanish, true, "gato", 5000))
	require.NoError(t, practice.RecordAttempt("dog", models.EnglishToSpanish, false, "gato", 3000))
	require.NoError(t, practice.RecordAttempt("sun", models.SpanishToEnglish, true, "sun", 0))

	period, err := stats.GetPeriod(7)
	require.NoError(t, err)
	require.Len(t, period, 1)

	today := period[0]
	assert.Equal(t, time.Now().Format("2006-01-02"), today.Date)
	assert.Equal(t, 3, today.TotalAttempts)
	assert.Equal(t, 2, today.CorrectAttempts)
	assert.Equal(t, int64(8000), today.TotalTimeMs)
	assert.LessOrEqual(t, today.CorrectAttempts, today.TotalAttempts)
}

func TestStudyStreakCountsActiveDays(t *testing.T) {
	setupDB(t)
	practice := NewPracticeRepository()
	stats := NewStatsRepository()

	streak, err := stats.GetStudyStreak()
	require.NoError(t, err)
	assert.Equal(t, 0, streak)

	require.NoError(t, practice.RecordAttempt("cat", models.EnglishToSpanish, true, "", 0))
	require.NoError(t, practice.RecordAttempt("dog", models.EnglishToSpanish, false, "", 0))

	// Two attempts on the same day still count one active day.
	streak, err = stats.GetStudyStreak()
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestGetHistoryNewestFirst(t *testing.T) {
	setupDB(t)
	practice := NewPracticeRepository()

	require.NoError(t, practice.RecordAttempt("cat", models.EnglishToSpanish, false, "perro", 0))
	require.NoError(t, practice.RecordAttempt("cat", models.EnglishToSpanish, true, "gato", 0))
	require.NoError(t, practice.RecordAttempt("dog", models.EnglishToSpanish, true, "perro", 0))

	history, err := practice.GetHistory("cat", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.True(t, history[0].Correct)
	assert.False(t, history[1].Correct)
	assert.Equal(t, "gato", history[0].UserAnswer.String)
	assert.False(t, history[0].ResponseTimeMs.Valid)

	history, err = practice.GetHistory("cat", 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestCategories(t *testing.T) {
	setupDB(t)
	categories := NewCategoryRepository()

	animals := &models.Category{Name: "animals", Description: "living things", Color: "#34d399"}
	require.NoError(t, categories.Create(animals))
	assert.NotZero(t, animals.ID)

	require.NoError(t, categories.Assign("cat", animals.ID))
	// Re-assigning is a no-op, not an error.
	require.NoError(t, categories.Assign("cat", animals.ID))

	got, err := categories.GetWordCategories("cat")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "animals", got[0].Name)

	all, err := categories.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBackupLog(t *testing.T) {
	setupDB(t)
	backups := NewBackupLogRepository()

	require.NoError(t, backups.Record("/data/palabras.json.backup_1", models.BackupAutomatic, 1024))
	require.NoError(t, backups.Record("/data/palabras.json.backup_2", models.BackupManual, 2048))

	records, err := backups.GetRecent(10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "/data/palabras.json.backup_2", records[0].Path)
	assert.Equal(t, models.BackupManual, records[0].Kind)
	assert.Equal(t, int64(2048), records[0].SizeBytes)
}

func TestSettingsRoundTrip(t *testing.T) {
	setupDB(t)
	settings := NewSettingsRepository()

	value, err := settings.Get("theme", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	require.NoError(t, settings.Set("theme", "light", ""))
	require.NoError(t, settings.Set("theme", "dark", ""))

	value, err = settings.Get("theme", "light")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}
