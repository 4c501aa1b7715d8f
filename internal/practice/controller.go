// Package practice runs quiz sessions over the vocabulary and forwards
// every graded answer to the history store.
package practice

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/example/engmemory/internal/storage"
	"github.com/example/engmemory/pkg/models"
)

var (
	// ErrEmptyVocabulary is returned when a question is requested but no
	// words exist yet.
	ErrEmptyVocabulary = errors.New("practice: vocabulary is empty")
	// ErrNoActiveQuestion is returned when an answer is submitted with no
	// question posed.
	ErrNoActiveQuestion = errors.New("practice: no active question")
)

// State is the quiz session state.
type State int

const (
	// Idle means no question has been posed yet.
	Idle State = iota
	// QuestionPosed means a question is waiting for an answer.
	QuestionPosed
	// Graded means the last answer has been graded.
	Graded
)

// Question is one posed quiz prompt.
type Question struct {
	Word          string
	Mode          models.Mode
	Prompt        string
	Answer        string
	Pronunciation string
	Notes         string
}

// Result is the grading outcome for one submitted answer.
type Result struct {
	Correct   bool
	Submitted string
	Expected  string
}

// Controller is the quiz session state machine:
// Idle -> QuestionPosed -> Graded -> QuestionPosed -> ...
type Controller struct {
	storage *storage.Hybrid
	rnd     *rand.Rand

	mode    models.Mode
	state   State
	current *Question
	last    *Result
	askedAt time.Time
}

// NewController starts an idle session in English-to-Spanish mode.
func NewController(s *storage.Hybrid) *Controller {
	return &Controller{
		storage: s,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		mode:    models.EnglishToSpanish,
		state:   Idle,
	}
}

// State returns the current session state.
func (c *Controller) State() State {
	return c.state
}

// Mode returns the current question direction.
func (c *Controller) Mode() models.Mode {
	return c.mode
}

// SetMode switches the direction for subsequent questions. The current
// question, if any, is unaffected.
func (c *Controller) SetMode(mode models.Mode) {
	if mode.Valid() {
		c.mode = mode
	}
}

// CurrentQuestion returns the posed question, nil when none is active.
func (c *Controller) CurrentQuestion() *Question {
	return c.current
}

// LastResult returns the grading outcome of the previous answer, nil
// until something has been graded.
func (c *Controller) LastResult() *Result {
	return c.last
}

// NextQuestion picks one word uniformly at random and poses it according
// to the current mode. Any prior grading result is cleared.
func (c *Controller) NextQuestion() (*Question, error) {
	vocab := c.storage.Vocabulary.All()
	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}

	words := make([]string, 0, len(vocab))
	for word := range vocab {
		words = append(words, word)
	}
	word := words[c.rnd.Intn(len(words))]
	entry := vocab[word]

	q := &Question{
		Word:          word,
		Mode:          c.mode,
		Pronunciation: entry.Pronunciation,
		Notes:         entry.Notes,
	}
	if c.mode == models.EnglishToSpanish {
		q.Prompt = word
		q.Answer = entry.Translation
	} else {
		q.Prompt = entry.Translation
		q.Answer = word
	}

	c.current = q
	c.last = nil
	c.state = QuestionPosed
	c.askedAt = time.Now()
	return q, nil
}

// SubmitAnswer grades the text against the active question, records the
// attempt and transitions to Graded. Only valid while a question is
// posed.
func (c *Controller) SubmitAnswer(text string) (*Result, error) {
	if c.state != QuestionPosed || c.current == nil {
		return nil, ErrNoActiveQuestion
	}

	submitted := strings.TrimSpace(text)
	result := &Result{
		Correct:   grade(submitted, c.current.Answer),
		Submitted: submitted,
		Expected:  c.current.Answer,
	}

	elapsed := time.Since(c.askedAt).Milliseconds()
	err := c.storage.RecordAttempt(c.current.Word, c.current.Mode, result.Correct, submitted, elapsed)
	if err != nil {
		return nil, err
	}

	c.last = result
	c.state = Graded
	return result, nil
}

// GetDifficultWords returns the history store's difficulty ranking, used
// to drive targeted review.
func (c *Controller) GetDifficultWords(limit int) ([]models.DifficultWord, error) {
	return c.storage.GetDifficultWords(limit)
}

// grade applies the deliberately lenient matching rule: an answer is
// correct when it case-insensitively equals the expected answer, or
// either one is a substring of the other. This tolerates partial and
// extra words; it also means very short answers match almost anything,
// which is accepted behavior.
func grade(submitted, expected string) bool {
	submitted = strings.ToLower(strings.TrimSpace(submitted))
	expected = strings.ToLower(strings.TrimSpace(expected))
	if submitted == "" {
		return false
	}
	return submitted == expected ||
		strings.Contains(expected, submitted) ||
		strings.Contains(submitted, expected)
}
