package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rssFeed(items int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Test Cast</title>`)
	for i := 1; i <= items; i++ {
		fmt.Fprintf(&b, `<item>
<title>Episode %d</title>
<enclosure url="https://cdn.example.com/ep%d.mp3" length="1024" type="audio/mpeg"/>
</item>`, i, i)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func TestEntriesLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssFeed(8)))
	}))
	defer srv.Close()

	s := NewSource("taskq-test/1.0", 0) // 0 falls back to DefaultEntryLimit
	entries, err := s.Entries(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, entries, DefaultEntryLimit)

	assert.Equal(t, "Episode 1", entries[0].Title)
	require.Len(t, entries[0].Enclosures, 1)
	assert.Equal(t, "https://cdn.example.com/ep1.mp3", entries[0].Enclosures[0])
}

func TestEntriesShortFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rssFeed(2)))
	}))
	defer srv.Close()

	s := NewSource("taskq-test/1.0", 5)
	entries, err := s.Entries(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestEntriesSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(rssFeed(1)))
	}))
	defer srv.Close()

	s := NewSource("taskq-test/1.0", 5)
	_, err := s.Entries(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "taskq-test/1.0", gotUA)
}

func TestEntriesItemWithoutEnclosure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0"?>
<rss version="2.0"><channel><title>t</title>
<item><title>No audio</title></item>
</channel></rss>`))
	}))
	defer srv.Close()

	s := NewSource("taskq-test/1.0", 5)
	entries, err := s.Entries(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "No audio", entries[0].Title)
	assert.Empty(t, entries[0].Enclosures)
}

func TestEntriesMalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not xml"))
	}))
	defer srv.Close()

	s := NewSource("taskq-test/1.0", 5)
	_, err := s.Entries(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrParse)
}

func TestEntriesUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	s := NewSource("taskq-test/1.0", 5)
	_, err := s.Entries(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrParse)
}
