package vocabulary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/engmemory/internal/backup"
	"github.com/example/engmemory/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "palabras.json"), backup.New("", 10))
	require.NoError(t, err)
	return s
}

func TestAddAndGet(t *testing.T) {
	s := newTestStore(t)

	entry := models.Entry{Translation: "hola", Pronunciation: "/həˈloʊ/", Notes: "common greeting"}
	require.NoError(t, s.Add("Hello", entry))

	got, ok := s.Get("hello")
	require.True(t, ok)
	assert.Equal(t, entry, got)

	// Lookup is case-insensitive through normalization.
	_, ok = s.Get("  HELLO ")
	assert.True(t, ok)

	assert.Equal(t, 1, s.Count())
}

func TestAddDuplicate(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add("cat", models.Entry{Translation: "gato"}))
	err := s.Add("CAT", models.Entry{Translation: "gata"})
	assert.ErrorIs(t, err, ErrWordExists)

	// The original entry is unchanged.
	got, _ := s.Get("cat")
	assert.Equal(t, "gato", got.Translation)
	assert.Equal(t, 1, s.Count())
}

func TestEditRenames(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add("cat", models.Entry{Translation: "gato"}))
	require.NoError(t, s.Edit("cat", "cats", models.Entry{Translation: "gatos"}))

	_, ok := s.Get("cat")
	assert.False(t, ok)

	got, ok := s.Get("cats")
	require.True(t, ok)
	assert.Equal(t, "gatos", got.Translation)
}

func TestEditMissingWord(t *testing.T) {
	s := newTestStore(t)
	err := s.Edit("ghost", "spirit", models.Entry{Translation: "espíritu"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditSameKeyUpdatesInPlace(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add("cat", models.Entry{Translation: "gato"}))
	require.NoError(t, s.Edit("cat", "cat", models.Entry{Translation: "gato", Notes: "felino"}))

	got, ok := s.Get("cat")
	require.True(t, ok)
	assert.Equal(t, "felino", got.Notes)
	assert.Equal(t, 1, s.Count())
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add("cat", models.Entry{Translation: "gato"}))

	removed, err := s.Remove("cat")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Remove("cat")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add("cat", models.Entry{Translation: "gato"}))
	require.NoError(t, s.Add("dog", models.Entry{Translation: "perro"}))
	require.NoError(t, s.Add("catfish", models.Entry{Translation: "bagre"}))

	results := s.Search("cat")
	assert.Len(t, results, 2)
	assert.Contains(t, results, "cat")
	assert.Contains(t, results, "catfish")

	// Matches against translations too.
	results = s.Search("PERRO")
	assert.Len(t, results, 1)
	assert.Contains(t, results, "dog")

	// Empty query returns everything.
	assert.Len(t, s.Search("  "), 3)
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palabras.json")

	s, err := Open(path, backup.New("", 10))
	require.NoError(t, err)
	require.NoError(t, s.Add("hello", models.Entry{Translation: "hola", Pronunciation: "/həˈloʊ/"}))
	require.NoError(t, s.Add("world", models.Entry{Translation: "mundo"}))

	reopened, err := Open(path, backup.New("", 10))
	require.NoError(t, err)
	assert.Equal(t, s.All(), reopened.All())
}

func TestDocumentUsesCompatFieldNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palabras.json")

	s, err := Open(path, backup.New("", 10))
	require.NoError(t, err)
	require.NoError(t, s.Add("hello", models.Entry{Translation: "hola", Pronunciation: "/həˈloʊ/", Notes: "saludo"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "hola", raw["hello"]["significado"])
	assert.Equal(t, "/həˈloʊ/", raw["hello"]["pronunciacion"])
	assert.Equal(t, "saludo", raw["hello"]["notas"])
}

func TestOpenToleratesMissingOptionalFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palabras.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hello":{"significado":"hola"}}`), 0644))

	s, err := Open(path, backup.New("", 10))
	require.NoError(t, err)

	got, ok := s.Get("hello")
	require.True(t, ok)
	assert.Equal(t, "hola", got.Translation)
	assert.Empty(t, got.Pronunciation)
	assert.Empty(t, got.Notes)
}

func TestOpenNormalizesLegacyMixedCaseKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palabras.json")
	doc := `{"Cat":{"significado":"gato"},"  DOG ":{"significado":"perro"}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s, err := Open(path, backup.New("", 10))
	require.NoError(t, err)

	// Entries written before key normalization stay reachable through
	// every lookup path.
	got, ok := s.Get("Cat")
	require.True(t, ok)
	assert.Equal(t, "gato", got.Translation)

	assert.Len(t, s.Search("cat"), 1)
	assert.Len(t, s.Search("dog"), 1)

	removed, err := s.Remove("DOG")
	require.NoError(t, err)
	assert.True(t, removed)

	all := s.All()
	assert.Contains(t, all, "cat")
	assert.NotContains(t, all, "Cat")
}

func TestPutAllCountsCharactersNotBytes(t *testing.T) {
	s := newTestStore(t)

	// 100 accented characters are 200 bytes but still within the limit.
	word := strings.Repeat("é", MaxWordLen)
	count, err := s.PutAll(models.Vocabulary{word: {Translation: "acentuado"}})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	tooLong := strings.Repeat("é", MaxWordLen+1)
	count, err = s.PutAll(models.Vocabulary{tooLong: {Translation: "demasiado"}})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestOpenRejectsCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palabras.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hello":`), 0644))

	_, err := Open(path, backup.New("", 10))
	assert.Error(t, err)
}

func TestSaveCreatesBackupBeforeOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palabras.json")

	s, err := Open(path, backup.New("", 10))
	require.NoError(t, err)

	var backups []string
	s.OnBackup = func(p string) { backups = append(backups, p) }

	// First save creates the file, nothing to back up yet.
	require.NoError(t, s.Add("one", models.Entry{Translation: "uno"}))
	assert.Empty(t, backups)

	// Second save snapshots the previous document first.
	require.NoError(t, s.Add("two", models.Entry{Translation: "dos"}))
	require.Len(t, backups, 1)

	var snapshot models.Vocabulary
	data, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.Len(t, snapshot, 1)
	assert.Contains(t, snapshot, "one")
}
