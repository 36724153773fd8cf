package newsynth

import (
	"strconv"
	"strings"
)

// Content caps, in characters.
const (
	// ExtractContentCap bounds text returned by an Extractor for a single page.
	ExtractContentCap = 2000

	// ArticleContentCap bounds Article.Content once stored in a result list.
	ArticleContentCap = 1000
)

// DefaultMaxResults is the number of search results processed per topic.
const DefaultMaxResults = 5

// Article is one retrieved and extracted web page relevant to a topic.
type Article struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Content string `json:"content"`
}

// NewArticle returns an Article with content cut to ArticleContentCap.
func NewArticle(title, link, content string) *Article {
	return &Article{
		Title:   title,
		Link:    link,
		Content: Truncate(content, ArticleContentCap),
	}
}

// Truncate cuts s to at most limit characters (Unicode code points).
// The cut is hard: no word-boundary handling. A limit <= 0 disables the cap.
func Truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

// FormatSources formats articles as a numbered list of titles and links.
// Entries are separated by blank lines.
func FormatSources(articles []*Article) string {
	if len(articles) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, a := range articles {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strconv.Itoa(i+1) + ". " + a.Title + "\n")
		sb.WriteString("   " + a.Link + "\n")
	}
	return sb.String()
}
