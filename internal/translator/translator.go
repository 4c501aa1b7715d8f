// Package translator wraps the MyMemory translation API.
package translator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is an HTTP client for the translation API. The zero value is
// not usable; create one with New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a translation client with a 5 second request timeout.
func New() *Client {
	return &Client{
		baseURL: "https://api.mymemory.translated.net/get",
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// response mirrors the API's JSON payload.
type response struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  int    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}

// Translate translates text between two-letter language codes, e.g.
// "en" to "es".
func (c *Client) Translate(text, src, dest string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("nothing to translate")
	}

	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", src+"|"+dest)

	resp, err := c.http.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	if r.ResponseStatus != 0 && r.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("translation failed: %s", r.ResponseDetails)
	}

	translated := strings.TrimSpace(r.ResponseData.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("translation service returned an empty result")
	}
	return translated, nil
}
