package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinflow/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFetchPage_ExtractsArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<!doctype html>
<html>
<head>
  <title>Fallback Title</title>
  <meta property="og:title" content="Ten Garden Ideas">
  <meta property="article:published_time" content="2025-05-20T10:00:00Z">
</head>
<body>
  <nav>site nav</nav>
  <article>
    <h1>Ten Garden Ideas</h1>
    <p>Grow things.</p>
    <script>track()</script>
  </article>
</body>
</html>`)
	}))
	defer srv.Close()

	s := New(srv.Client(), testLogger())
	page, err := s.FetchPage(context.Background(), srv.URL+"/post")
	require.NoError(t, err)

	assert.Equal(t, "Ten Garden Ideas", page.Title)
	require.NotNil(t, page.PublishedAt)
	assert.Equal(t, time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC), page.PublishedAt.UTC())

	// Content comes from <article>, sanitized, without the nav chrome.
	assert.Contains(t, page.Content, "<p>Grow things.</p>")
	assert.NotContains(t, page.Content, "site nav")
	assert.NotContains(t, page.Content, "<script")
}

func TestFetchPage_TitleFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Plain Title</title></head><body><p>x</p></body></html>`)
	}))
	defer srv.Close()

	s := New(srv.Client(), testLogger())
	page, err := s.FetchPage(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Plain Title", page.Title)
	assert.Nil(t, page.PublishedAt)
}

func TestFetchPage_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := New(srv.Client(), testLogger())
	_, err := s.FetchPage(context.Background(), srv.URL)

	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusServiceUnavailable, fe.Status)
}

func TestDiscoverViaFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>A Blog</title>
    <item>
      <title>First</title>
      <link>https://blog.example.com/first</link>
      <pubDate>Tue, 20 May 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>No link item</title>
    </item>
    <item>
      <title>Second</title>
      <link>https://blog.example.com/second</link>
    </item>
  </channel>
</rss>`)
	}))
	defer srv.Close()

	s := New(srv.Client(), testLogger())
	entries, err := s.DiscoverViaFeed(context.Background(), srv.URL+"/feed")
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "https://blog.example.com/first", entries[0].URL)
	require.NotNil(t, entries[0].LastMod)
	assert.Nil(t, entries[1].LastMod)
}
