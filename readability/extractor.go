// Package readability implements newsynth.Extractor using go-readability.
package readability

import (
	"bytes"
	"strings"

	"github.com/fwojciec/newsynth"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements newsynth.Extractor at compile time.
var _ newsynth.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the readable text of the page with whitespace runs
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

	article, err := readability.FromReader(bytes.NewReader(rawHTML), nil)
	if err != nil {
		return ""
	}

	return newsynth.Truncate(strings.Join(strings.Fields(article.TextContent), " "), limit)
}
