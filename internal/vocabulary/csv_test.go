package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/engmemory/internal/export"
	"github.com/example/engmemory/pkg/models"
)

func TestCSVRoundTrip(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add("hello", models.Entry{Translation: "hola", Pronunciation: "/həˈloʊ/", Notes: "saludo"}))
	require.NoError(t, s.Add("world", models.Entry{Translation: "mundo"}))

	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, s.ExportCSV(path))

	dest := newTestStore(t)
	count, err := dest.ImportCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, s.All(), dest.All())
}

func TestExportCSVMatchesRegistryExporter(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add("hello", models.Entry{Translation: "hola", Pronunciation: "/həˈloʊ/", Notes: "saludo"}))
	require.NoError(t, s.Add("world", models.Entry{Translation: "mundo"}))

	dir := t.TempDir()
	storePath := filepath.Join(dir, "store.csv")
	exporterPath := filepath.Join(dir, "exporter.csv")

	require.NoError(t, s.ExportCSV(storePath))
	require.NoError(t, (&export.CSVExporter{}).Export(s.All(), exporterPath))

	fromStore, err := os.ReadFile(storePath)
	require.NoError(t, err)
	fromExporter, err := os.ReadFile(exporterPath)
	require.NoError(t, err)
	assert.Equal(t, fromExporter, fromStore)
}

func TestImportCSVUpserts(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add("cat", models.Entry{Translation: "felino"}))

	path := filepath.Join(t.TempDir(), "words.csv")
	csv := "Inglés,Español,Pronunciación,Notas\ncat,gato,,\ndog,perro,,\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	count, err := s.ImportCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Import overwrites existing words, unlike Add.
	got, _ := s.Get("cat")
	assert.Equal(t, "gato", got.Translation)
}

func TestImportCSVSkipsInvalidRows(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(t.TempDir(), "words.csv")
	long := make([]byte, MaxWordLen+1)
	for i := range long {
		long[i] = 'a'
	}
	csv := "Inglés,Español\n" +
		",sin palabra\n" +
		"noword,\n" +
		string(long) + ",demasiado largo\n" +
		"ok,bien\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	count, err := s.ImportCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, s.Count())
}

func TestImportCSVLowercasesKeys(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte("English,Spanish\nHELLO,hola\n"), 0644))

	count, err := s.ImportCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, ok := s.Get("hello")
	assert.True(t, ok)
}

func TestImportCSVToleratesMissingOptionalColumns(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte("Inglés,Español\ncat,gato\n"), 0644))

	count, err := s.ImportCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, _ := s.Get("cat")
	assert.Empty(t, got.Pronunciation)
	assert.Empty(t, got.Notes)
}
