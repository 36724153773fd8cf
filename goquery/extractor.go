// Package goquery implements newsynth.Extractor using CSS selectors.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsynth"
	"golang.org/x/net/html"
)

// DefaultContentSelectors lists content-region selectors in priority order.
// The first selector with a match wins.
var DefaultContentSelectors = []string{
	"article",
	".article-body",
	".entry-content",
	".post-content",
	"main",
	".content",
}

// strippedTags are removed before any text is read.
const strippedTags = "script, style"

// Ensure Extractor implements newsynth.Extractor at compile time.
var _ newsynth.Extractor = (*Extractor)(nil)

// Extractor picks the most article-like region of a page using an ordered
// selector list, falling back to the whole body when nothing matches.
type Extractor struct {
	selectors []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors replaces the content-region selectors. Order is priority.
func WithSelectors(selectors []string) Option {
	return func(e *Extractor) {
		e.selectors = selectors
	}
}

// NewExtractor creates a new Extractor using DefaultContentSelectors.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		selectors: DefaultContentSelectors,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the text of the first matching content region, or of
// the body when no selector matches, cut to limit characters.
func (e *Extractor) Extract(rawHTML []byte, limit int) (text string) {
	// Malformed markup must degrade to "" rather than fail the batch.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	if len(bytes.TrimSpace(rawHTML)) == 0 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	doc.Find(strippedTags).Remove()

	var content string
	for _, selector := range e.selectors {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			content = Text(sel.First())
			break
		}
	}

	if content == "" {
		content = Text(doc.Find("body"))
	}

	return newsynth.Truncate(content, limit)
}

// Text flattens the text under a selection. Each text node is trimmed,
// empty nodes are dropped, and the rest are joined by single spaces.
func Text(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
