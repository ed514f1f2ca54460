// Package scraper fetches blog pages and extracts article content, and
// provides RSS-based URL discovery as a fallback when a blog has no
// usable sitemap.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"pinflow/internal/domain"
	"pinflow/internal/sanitize"
	"pinflow/internal/sitemap"
)

const userAgent = "pinflow/1.0 (+article discovery bot; content fetcher)"

// Page is one fetched article with sanitized HTML content.
type Page struct {
	Title       string
	Content     string
	PublishedAt *time.Time
}

type Scraper struct {
	httpClient *http.Client
	feedParser *gofeed.Parser
	logger     *slog.Logger
}

func New(client *http.Client, logger *slog.Logger) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Scraper{
		httpClient: client,
		feedParser: gofeed.NewParser(),
		logger:     logger.With("component", "scraper"),
	}
}

// FetchPage downloads one article URL and extracts title, publish date
// and sanitized body HTML.
func (s *Scraper) FetchPage(ctx context.Context, pageURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{URL: pageURL, Status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	return extractPage(doc), nil
}

func extractPage(doc *goquery.Document) *Page {
	page := &Page{
		Title:       extractTitle(doc),
		PublishedAt: extractPublished(doc),
	}

	content := selectContent(doc)
	page.Content = sanitize.Clean(strings.TrimSpace(content))
	return page
}

func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

func extractPublished(doc *goquery.Document) *time.Time {
	raw, ok := doc.Find(`meta[property="article:published_time"]`).Attr("content")
	if !ok {
		return nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &t
}

// selectContent prefers the semantic article container and widens out
// to the whole body when the page has none.
func selectContent(doc *goquery.Document) string {
	for _, selector := range []string{"article", "main", "body"} {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if html, err := sel.Html(); err == nil && strings.TrimSpace(html) != "" {
			return html
		}
	}
	return ""
}

// DiscoverViaFeed parses an RSS/Atom feed into sitemap-style entries,
// used when sitemap discovery fails and the project has a feed URL.
func (s *Scraper) DiscoverViaFeed(ctx context.Context, feedURL string) ([]sitemap.Entry, error) {
	feed, err := s.feedParser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	entries := make([]sitemap.Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		e := sitemap.Entry{URL: item.Link}
		if item.PublishedParsed != nil {
			e.LastMod = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			e.LastMod = item.UpdatedParsed
		}
		entries = append(entries, e)
	}

	s.logger.Debug("feed discovery", "url", feedURL, "entries", len(entries))
	return entries, nil
}
