package trafilatura_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/newsynth"
	"github.com/fwojciec/newsynth/trafilatura"
	"github.com/stretchr/testify/assert"
)

// Ensure Extractor implements newsynth.Extractor at compile time.
var _ newsynth.Extractor = (*trafilatura.Extractor)(nil)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav"><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>Market Update</h1>
<p>This is the important article paragraph text that must be kept.</p>
<p>Analysts expect the trend to continue through the next quarter.</p>
</article>
<script>var tracking = "leak";</script>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()

		assert.Empty(t, ext.Extract(nil, newsynth.ExtractContentCap))
		assert.Empty(t, ext.Extract([]byte("   "), newsynth.ExtractContentCap))
	})

	t.Run("keeps main article content", func(t *testing.T) {
		t.Parallel()

		got := trafilatura.NewExtractor().Extract([]byte(articleHTML), newsynth.ExtractContentCap)

		assert.Contains(t, got, "important article paragraph text")
	})

	t.Run("excludes script content", func(t *testing.T) {
		t.Parallel()

		got := trafilatura.NewExtractor().Extract([]byte(articleHTML), newsynth.ExtractContentCap)

		assert.NotContains(t, got, "tracking")
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()

		got := trafilatura.NewExtractor().Extract([]byte(articleHTML), newsynth.ExtractContentCap)

		assert.NotContains(t, got, "\n")
		assert.NotContains(t, got, "  ")
	})

	t.Run("truncates to the cap", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><article><p>" + strings.Repeat("Long sentence of article text. ", 300) + "</p></article></body></html>"

		got := trafilatura.NewExtractor().Extract([]byte(html), newsynth.ArticleContentCap)

		assert.LessOrEqual(t, utf8.RuneCountInString(got), newsynth.ArticleContentCap)
	})
}
