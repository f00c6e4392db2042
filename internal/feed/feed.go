// Package feed discovers enclosure URLs from RSS and Atom feeds.
package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// ErrParse marks feeds that could not be retrieved or parsed.
var ErrParse = errors.New("feed: malformed feed")

// DefaultEntryLimit bounds how many entries of a feed are considered.
// Podcast feeds routinely carry the whole episode history; only the
// newest few are of interest.
const DefaultEntryLimit = 5

// Entry is one feed item reduced to what the fetch pipeline needs.
type Entry struct {
	Title      string
	Enclosures []string
}

// Source parses feeds and returns their newest entries.
type Source struct {
	parser *gofeed.Parser
	limit  int
}

// NewSource creates a feed source. userAgent is sent with feed
// requests; limit caps entries per feed and defaults to
// DefaultEntryLimit when non-positive.
func NewSource(userAgent string, limit int) *Source {
	p := gofeed.NewParser()
	p.UserAgent = userAgent
	if limit <= 0 {
		limit = DefaultEntryLimit
	}
	return &Source{parser: p, limit: limit}
}

// Entries fetches and parses url, returning at most the source's entry
// limit of items, newest first as ordered by the feed itself. Entries
// without enclosures are returned with an empty Enclosures slice so
// callers can still log the title.
func (s *Source) Entries(ctx context.Context, url string) ([]Entry, error) {
	f, err := s.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, url, err)
	}

	items := f.Items
	if len(items) > s.limit {
		items = items[:s.limit]
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		e := Entry{Title: item.Title}
		for _, enc := range item.Enclosures {
			if enc != nil && enc.URL != "" {
				e.Enclosures = append(e.Enclosures, enc.URL)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
