// Package trafilatura implements newsynth.Extractor using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/newsynth"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements newsynth.Extractor at compile time.
var _ newsynth.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main text of the page with whitespace runs
// collapsed to single spaces, cut to limit characters.
func (e *Extractor) Extract(rawHTML []byte, limit int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	if len(bytes.TrimSpace(rawHTML)) == 0 {
		return ""
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(bytes.NewReader(rawHTML), opts)
	if err != nil || result == nil {
		return ""
	}

	return newsynth.Truncate(strings.Join(strings.Fields(result.ContentText), " "), limit)
}
