package practice

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/engmemory/internal/config"
	"github.com/example/engmemory/internal/storage"
	"github.com/example/engmemory/pkg/models"
)

func openStorage(t *testing.T) *storage.Hybrid {
	t.Helper()
	dir := t.TempDir()
	h, err := storage.Open(config.Config{
		DataDir:        dir,
		VocabularyPath: filepath.Join(dir, "palabras.json"),
		DBType:         "sqlite",
		DBPath:         filepath.Join(dir, "statistics.db"),
		MaxBackups:     10,
	})
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h
}

func TestNextQuestionEmptyVocabulary(t *testing.T) {
	c := NewController(openStorage(t))

	_, err := c.NextQuestion()
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
	assert.Equal(t, Idle, c.State())
}

func TestSubmitWithoutQuestion(t *testing.T) {
	c := NewController(openStorage(t))

	_, err := c.SubmitAnswer("hola")
	assert.ErrorIs(t, err, ErrNoActiveQuestion)
}

func TestQuestionFollowsMode(t *testing.T) {
	h := openStorage(t)
	require.NoError(t, h.Vocabulary.Add("cat", models.Entry{Translation: "gato", Pronunciation: "/kæt/"}))

	c := NewController(h)

	q, err := c.NextQuestion()
	require.NoError(t, err)
	assert.Equal(t, "cat", q.Prompt)
	assert.Equal(t, "gato", q.Answer)
	assert.Equal(t, "/kæt/", q.Pronunciation)
	assert.Equal(t, QuestionPosed, c.State())

	c.SetMode(models.SpanishToEnglish)
	q, err = c.NextQuestion()
	require.NoError(t, err)
	assert.Equal(t, "gato", q.Prompt)
	assert.Equal(t, "cat", q.Answer)
}

func TestSetModeIgnoresUnknownDirection(t *testing.T) {
	c := NewController(openStorage(t))
	c.SetMode(models.Mode("sideways"))
	assert.Equal(t, models.EnglishToSpanish, c.Mode())
}

func TestGradingLeniency(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		expected  string
		correct   bool
	}{
		{"exact match", "gato", "gato", true},
		{"case insensitive", "GATO", "gato", true},
		{"submitted inside expected", "hola", "¡hola!", true},
		{"expected inside submitted", "¡hola!", "hola", true},
		{"surrounding whitespace", "  gato ", "gato", true},
		{"wrong answer", "xyz", "hello", false},
		{"empty answer", "", "hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.correct, grade(tt.submitted, tt.expected))
		})
	}
}

func TestSubmitAnswerRecordsAttempt(t *testing.T) {
	h := openStorage(t)
	require.NoError(t, h.Vocabulary.Add("cat", models.Entry{Translation: "gato"}))

	c := NewController(h)

	q, err := c.NextQuestion()
	require.NoError(t, err)

	result, err := c.SubmitAnswer(q.Answer)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, Graded, c.State())
	assert.Equal(t, result, c.LastResult())

	// Submitting again without a new question fails.
	_, err = c.SubmitAnswer("otra vez")
	assert.ErrorIs(t, err, ErrNoActiveQuestion)

	progress, err := h.GetWordProgress("cat")
	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Equal(t, 1, progress.TimesShown)
	assert.Equal(t, 1, progress.TimesCorrect)

	history, err := h.GetAttemptHistory("cat", 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.EnglishToSpanish, history[0].Mode)
}

func TestNextQuestionClearsResult(t *testing.T) {
	h := openStorage(t)
	require.NoError(t, h.Vocabulary.Add("cat", models.Entry{Translation: "gato"}))

	c := NewController(h)
	_, err := c.NextQuestion()
	require.NoError(t, err)
	_, err = c.SubmitAnswer("perro")
	require.NoError(t, err)
	require.NotNil(t, c.LastResult())

	_, err = c.NextQuestion()
	require.NoError(t, err)
	assert.Nil(t, c.LastResult())
	assert.Equal(t, QuestionPosed, c.State())
}

func TestDifficultWordsPassthrough(t *testing.T) {
	h := openStorage(t)
	require.NoError(t, h.Vocabulary.Add("cat", models.Entry{Translation: "gato"}))

	c := NewController(h)
	for i := 0; i < 3; i++ {
		_, err := c.NextQuestion()
		require.NoError(t, err)
		_, err = c.SubmitAnswer("wrong-answer-entirely")
		require.NoError(t, err)
	}

	words, err := c.GetDifficultWords(10)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "cat", words[0].Word)
	assert.Zero(t, words[0].SuccessRate)
}
