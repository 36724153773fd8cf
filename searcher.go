package newsynth

import "context"

// Searcher translates a topic into Articles via an external search engine.
type Searcher interface {
	// Search returns at most maxResults articles in search-engine order.
	// Individual article failures are skipped. An error is returned only
	// when the results page itself cannot be retrieved, in which case the
	// returned list is empty.
	Search(ctx context.Context, topic string, maxResults int) ([]*Article, error)
}
