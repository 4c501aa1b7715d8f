package models

// Entry represents a single vocabulary entry. The JSON field names keep
// compatibility with the palabras.json document produced by earlier
// versions, so existing vocabulary files stay readable.
type Entry struct {
	Translation   string `json:"significado"`
	Pronunciation string `json:"pronunciacion,omitempty"`
	Notes         string `json:"notas,omitempty"`
}

// Vocabulary maps a normalized word to its entry. The whole map is the
// unit of persistence.
type Vocabulary map[string]Entry
