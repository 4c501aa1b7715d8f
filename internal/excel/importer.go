// Package excel imports vocabulary from XLSX workbooks.
package excel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/engmemory/internal/vocabulary"
	"github.com/example/engmemory/pkg/models"
)

// ImportResult summarizes an import run.
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
}

// Import reads words from an XLSX or CSV file and upserts them into the
// store. The format is picked by file extension; existing words are
// overwritten.
func Import(store *vocabulary.Store, path string) (*ImportResult, error) {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		count, err := store.ImportCSV(path)
		if err != nil {
			return nil, err
		}
		return &ImportResult{TotalProcessed: count, Imported: count}, nil
	}
	return importFromExcel(store, path)
}

func importFromExcel(store *vocabulary.Store, path string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}
	if len(rows) == 0 {
		return &ImportResult{}, nil
	}

	cols := resolveColumns(rows[0])

	result := &ImportResult{}
	entries := models.Vocabulary{}
	for _, row := range rows[1:] {
		result.TotalProcessed++

		word := vocabulary.Normalize(cell(row, cols.word))
		entry := models.Entry{
			Translation:   strings.TrimSpace(cell(row, cols.translation)),
			Pronunciation: strings.TrimSpace(cell(row, cols.pronunciation)),
			Notes:         strings.TrimSpace(cell(row, cols.notes)),
		}
		if word == "" || entry.Translation == "" {
			result.Skipped++
			continue
		}
		entries[word] = entry
	}

	imported, err := store.PutAll(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to store imported words: %v", err)
	}
	result.Imported = imported
	result.Skipped = result.TotalProcessed - imported
	return result, nil
}

// columnLayout maps logical fields to sheet column indexes, -1 when the
// header is absent.
type columnLayout struct {
	word          int
	translation   int
	pronunciation int
	notes         int
}

// resolveColumns reads the header row. Spanish headers and their English
// equivalents are both recognized; without a match the first two columns
// are taken as word and translation.
func resolveColumns(header []string) columnLayout {
	cols := columnLayout{word: 0, translation: 1, pronunciation: -1, notes: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "inglés", "ingles", "english":
			cols.word = i
		case "español", "espanol", "spanish":
			cols.translation = i
		case "pronunciación", "pronunciacion", "pronunciation":
			cols.pronunciation = i
		case "notas", "notes":
			cols.notes = i
		}
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
