package newsynth

// Extractor converts raw HTML into bounded plain text.
type Extractor interface {
	// Extract returns the readable text of the page, cut to limit
	// characters. It never fails: malformed or empty input yields "".
	// An empty result means the page had no usable text.
	Extract(html []byte, limit int) string
}
