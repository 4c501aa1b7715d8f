package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/example/engmemory/pkg/models"
)

// CSVExporter writes the v1.x-compatible CSV layout.
type CSVExporter struct{}

// Format returns "csv".
func (e *CSVExporter) Format() string {
	return "csv"
}

// Export writes one row per word with the compatibility header.
func (e *CSVExporter) Export(vocab models.Vocabulary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Inglés", "Español", "Pronunciación", "Notas"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	for _, word := range sortedWords(vocab) {
		entry := vocab[word]
		if err := w.Write([]string{word, entry.Translation, entry.Pronunciation, entry.Notes}); err != nil {
			return fmt.Errorf("failed to write CSV row: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %v", err)
	}
	return nil
}
