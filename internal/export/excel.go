package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/example/engmemory/pkg/models"
)

// sheetName is the worksheet holding the vocabulary.
const sheetName = "Vocabulario"

// ExcelExporter writes the vocabulary as an XLSX workbook.
type ExcelExporter struct{}

// Format returns "xlsx".
func (e *ExcelExporter) Format() string {
	return "xlsx"
}

// Export writes a single sheet with a header row and one row per word.
func (e *ExcelExporter) Export(vocab models.Vocabulary, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %v", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %v", err)
	}

	header := []interface{}{"Inglés", "Español", "Pronunciación", "Notas"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}

	for i, word := range sortedWords(vocab) {
		entry := vocab[word]
		row := []interface{}{word, entry.Translation, entry.Pronunciation, entry.Notes}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %v", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %v", err)
	}
	return nil
}
