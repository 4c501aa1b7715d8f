package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/example/engmemory/pkg/models"
)

func sampleVocabulary() models.Vocabulary {
	return models.Vocabulary{
		"cat": {Translation: "gato", Pronunciation: "kat"},
		"dog": {Translation: "perro", Notes: "common pet"},
		"sun": {Translation: "sol"},
	}
}

func TestRegistryFormats(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"csv", "xlsx"}, r.Formats())
}

func TestRegistryUnknownFormat(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("pdf")
	assert.Error(t, err)
}

func TestCSVExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	e := &CSVExporter{}
	require.NoError(t, e.Export(sampleVocabulary(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Inglés", "Español", "Pronunciación", "Notas"}, rows[0])
	assert.Equal(t, []string{"cat", "gato", "kat", ""}, rows[1])
	assert.Equal(t, []string{"dog", "perro", "", "common pet"}, rows[2])
	assert.Equal(t, []string{"sun", "sol", "", ""}, rows[3])
}

func TestExcelExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	e := &ExcelExporter{}
	require.NoError(t, e.Export(sampleVocabulary(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 4)
	assert.Equal(t, "Inglés", rows[0][0])
	assert.Equal(t, "cat", rows[1][0])
	assert.Equal(t, "gato", rows[1][1])
	assert.Equal(t, "perro", rows[2][1])
}

func TestExportThroughRegistry(t *testing.T) {
	r := NewRegistry()
	e, err := r.Get("csv")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "reg.csv")
	require.NoError(t, e.Export(sampleVocabulary(), path))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
