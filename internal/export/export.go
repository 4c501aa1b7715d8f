// Package export writes the vocabulary to interchange formats through
// an explicit registry of exporters. Formats are registered at startup;
// there is no runtime discovery.
package export

import (
	"fmt"
	"sort"

	"github.com/example/engmemory/pkg/models"
)

// Exporter writes a whole vocabulary to a file.
type Exporter interface {
	// Format is the name the exporter is selected by, e.g. "csv".
	Format() string
	// Export writes the vocabulary to path.
	Export(vocab models.Vocabulary, path string) error
}

// Registry maps format names to exporters.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry returns a registry with the built-in csv and xlsx
// exporters registered.
func NewRegistry() *Registry {
	r := &Registry{exporters: map[string]Exporter{}}
	r.Register(&CSVExporter{})
	r.Register(&ExcelExporter{})
	return r
}

// Register adds an exporter, replacing any previous one for the same
// format.
func (r *Registry) Register(e Exporter) {
	r.exporters[e.Format()] = e
}

// Get returns the exporter for a format.
func (r *Registry) Get(format string) (Exporter, error) {
	e, ok := r.exporters[format]
	if !ok {
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
	return e, nil
}

// Formats lists the registered format names, sorted.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.exporters))
	for format := range r.exporters {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

// sortedWords returns the vocabulary keys in stable order so exports
// are reproducible.
func sortedWords(vocab models.Vocabulary) []string {
	words := make([]string, 0, len(vocab))
	for word := range vocab {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
