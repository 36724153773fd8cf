package mock

import "github.com/fwojciec/newsynth"

var _ newsynth.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsynth.Extractor.
type Extractor struct {
	ExtractFn func(html []byte, limit int) string
}

func (e *Extractor) Extract(html []byte, limit int) string {
	return e.ExtractFn(html, limit)
}
