// Package dictionary wraps the Free Dictionary API
// (https://dictionaryapi.dev) for English definitions.
package dictionary

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the word has no dictionary entry.
var ErrNotFound = errors.New("dictionary: word not found")

// Definition is one sense of a word.
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// Meaning groups definitions by part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
	Antonyms     []string     `json:"antonyms"`
}

// Entry is the dictionary record for a word.
type Entry struct {
	Word     string    `json:"word"`
	Phonetic string    `json:"phonetic"`
	Meanings []Meaning `json:"meanings"`
}

// Client is an HTTP client for the dictionary API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a dictionary client with a 5 second request timeout.
func New() *Client {
	return &Client{
		baseURL: "https://api.dictionaryapi.dev/api/v2/entries/en/",
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Lookup fetches the entry for an English word. Returns ErrNotFound for
// a word the dictionary does not know; any other failure is a transport
// or service error.
func (c *Client) Lookup(word string) (*Entry, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil, fmt.Errorf("word cannot be empty")
	}

	resp, err := c.http.Get(c.baseURL + url.PathEscape(word))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, word)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictionary service returned status %d", resp.StatusCode)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, word)
	}
	return &entries[0], nil
}

// Synonyms returns the deduplicated synonyms across all meanings.
func (e *Entry) Synonyms() []string {
	seen := map[string]bool{}
	var out []string
	for _, meaning := range e.Meanings {
		for _, s := range meaning.Synonyms {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
