package duckduckgo

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsynth"
)

// resultSelector matches result title anchors on the HTML results page.
const resultSelector = "a.result__a"

// Result is a single (title, link) pair from the results page.
type Result struct {
	Title string
	Link  string
}

// QueryURL builds the results-page URL for topic against endpoint.
// The topic is suffixed with QuerySuffix and form-encoded.
func QueryURL(endpoint, topic string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", newsynth.Errorf(newsynth.EINVALID, "invalid search endpoint: %v", err)
	}
	q := u.Query()
	q.Set("q", topic+QuerySuffix)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseResults returns results from the first limit result anchors in
// document order. Anchors with an empty title or an unusable link are
// dropped after the limit is applied, so fewer than limit may be returned.
// Links are resolved against pageURL and redirect links are unwrapped.
func ParseResults(page []byte, pageURL string, limit int) ([]Result, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, newsynth.Errorf(newsynth.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, newsynth.Errorf(newsynth.EINVALID, "failed to parse results page: %v", err)
	}

	anchors := doc.Find(resultSelector)
	if limit > 0 && anchors.Length() > limit {
		anchors = anchors.Slice(0, limit)
	}

	var results []Result
	anchors.Each(func(_ int, sel *goquery.Selection) {
		title := strings.Join(strings.Fields(sel.Text()), " ")
		href, _ := sel.Attr("href")
		link := resolveLink(base, href)
		if title == "" || link == "" {
			return
		}
		results = append(results, Result{Title: title, Link: link})
	})

	return results, nil
}

// resolveLink turns an anchor href into an absolute article URL.
// Returns "" for empty, unparseable, non-HTTP or search-engine links.
func resolveLink(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	u := base.ResolveReference(ref)

	// Result links are usually wrapped as //duckduckgo.com/l/?uddg=<target>.
	if isEngineHost(u.Hostname()) && u.Path == "/l/" {
		target, err := url.Parse(u.Query().Get("uddg"))
		if err != nil {
			return ""
		}
		u = target
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if u.Host == "" || isEngineHost(u.Hostname()) {
		return ""
	}
	return u.String()
}

func isEngineHost(host string) bool {
	return host == "duckduckgo.com" || strings.HasSuffix(host, ".duckduckgo.com")
}
