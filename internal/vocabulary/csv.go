package vocabulary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/example/engmemory/internal/export"
	"github.com/example/engmemory/pkg/models"
)

// ExportCSV writes the whole vocabulary to path. The row layout is owned
// by the CSV exporter so export always produces the same file regardless
// of the entry point.
func (s *Store) ExportCSV(path string) error {
	e := &export.CSVExporter{}
	return e.Export(s.All(), path)
}

// ImportCSV reads words from a CSV file and upserts them into the
// vocabulary. Existing words are overwritten silently. Rows without a
// word or translation, or with over-long fields, are skipped. Returns
// the number of words imported; the document is saved once at the end.
func (s *Store) ImportCSV(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %v", err)
	}
	cols := headerColumns(header)

	count := 0
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read CSV row: %v", err)
		}

		word := Normalize(field(row, cols.word))
		entry := models.Entry{
			Translation:   strings.TrimSpace(field(row, cols.translation)),
			Pronunciation: strings.TrimSpace(field(row, cols.pronunciation)),
			Notes:         strings.TrimSpace(field(row, cols.notes)),
		}

		if word == "" || entry.Translation == "" {
			continue
		}
		if utf8.RuneCountInString(word) > MaxWordLen ||
			utf8.RuneCountInString(entry.Translation) > MaxTranslationLen ||
			utf8.RuneCountInString(entry.Pronunciation) > MaxPronunciationLen ||
			utf8.RuneCountInString(entry.Notes) > MaxNotesLen {
			continue
		}

		s.vocab[word] = entry
		count++
	}

	if count == 0 {
		return 0, nil
	}
	return count, s.save()
}

// columns maps logical fields to CSV column indexes, -1 when absent.
type columns struct {
	word          int
	translation   int
	pronunciation int
	notes         int
}

// headerColumns resolves the column layout from the header row. Both the
// Spanish headers and their English equivalents are recognized, and
// optional columns may be missing entirely.
func headerColumns(header []string) columns {
	cols := columns{word: 0, translation: 1, pronunciation: -1, notes: -1}
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

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
