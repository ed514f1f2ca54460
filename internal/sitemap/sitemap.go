// Package sitemap discovers candidate article URLs for a blog by
// fetching and parsing its XML sitemap, following sitemap indexes one
// level of nesting at a time.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pinflow/internal/domain"
)

const userAgent = "pinflow/1.0 (+article discovery bot; sitemap fetcher)"

// Entry is one candidate article URL with an optional last-modified
// timestamp taken from <lastmod>.
type Entry struct {
	URL     string
	LastMod *time.Time
}

// Discoverer fetches and parses sitemaps. A single attempt is made per
// URL; there are no retries beyond the client's own timeout.
type Discoverer struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewDiscoverer(client *http.Client, logger *slog.Logger) *Discoverer {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Discoverer{
		httpClient: client,
		logger:     logger.With("component", "sitemap"),
	}
}

// Discover resolves the sitemap for blogURL (sitemapURL overrides the
// default {origin}/sitemap.xml) and returns the filtered entry list:
// same-origin only, homepage dropped.
//
// A flat urlset with zero entries fails with domain.ErrNoURLsFound. A
// sitemap index whose children all fail returns an empty list and no
// error; child failures are logged and skipped so one broken child
// never aborts its siblings.
func (d *Discoverer) Discover(ctx context.Context, blogURL, sitemapURL string) ([]Entry, error) {
	origin, err := originOf(blogURL)
	if err != nil {
		return nil, fmt.Errorf("parse blog url: %w", err)
	}

	target := sitemapURL
	if target == "" {
		target = origin + "/sitemap.xml"
	}

	doc, err := d.fetch(ctx, target)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if doc.isIndex {
		entries = d.collectFromIndex(ctx, doc.childSitemaps)
	} else {
		if len(doc.entries) == 0 {
			return nil, domain.ErrNoURLsFound
		}
		entries = doc.entries
	}

	return filterEntries(entries, blogURL, origin), nil
}

func (d *Discoverer) collectFromIndex(ctx context.Context, children []string) []Entry {
	var all []Entry
	for _, child := range children {
		doc, err := d.fetch(ctx, child)
		if err != nil {
			d.logger.Warn("child sitemap failed, skipping", "url", child, "error", err)
			continue
		}
		if doc.isIndex {
			all = append(all, d.collectFromIndex(ctx, doc.childSitemaps)...)
			continue
		}
		all = append(all, doc.entries...)
	}
	return all
}

type document struct {
	isIndex       bool
	childSitemaps []string
	entries       []Entry
}

func (d *Discoverer) fetch(ctx context.Context, target string) (*document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{URL: target, Status: resp.StatusCode}
	}

	return parse(resp.Body)
}

// parse walks the XML token stream. It is deliberately lenient: <url>
// blocks without a <loc> are skipped and an unparseable <lastmod>
// yields a nil timestamp rather than an error.
func parse(r io.Reader) (*document, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	doc := &document{}
	var field, loc, lastmod string

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse sitemap xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sitemapindex":
				doc.isIndex = true
			case "sitemap":
				loc = ""
			case "url":
				loc, lastmod = "", ""
			case "loc", "lastmod":
				field = t.Name.Local
			}
		case xml.CharData:
			switch field {
			case "loc":
				loc += string(t)
			case "lastmod":
				lastmod += string(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "loc", "lastmod":
				field = ""
			case "sitemap":
				if u := strings.TrimSpace(loc); u != "" {
					doc.childSitemaps = append(doc.childSitemaps, u)
				}
			case "url":
				if u := strings.TrimSpace(loc); u != "" {
					doc.entries = append(doc.entries, Entry{URL: u, LastMod: parseLastMod(lastmod)})
				}
			}
		}
	}

	return doc, nil
}

var lastModLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-07:00",
	"2006-01-02",
}

func parseLastMod(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range lastModLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// filterEntries drops the blog homepage (with or without trailing
// slash) and anything that does not share the blog's origin.
func filterEntries(entries []Entry, blogURL, origin string) []Entry {
	home := strings.TrimSuffix(blogURL, "/")

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		trimmed := strings.TrimSuffix(e.URL, "/")
		if trimmed == home || trimmed == origin {
			continue
		}
		entryOrigin, err := originOf(e.URL)
		if err != nil || entryOrigin != origin {
			continue
		}
		out = append(out, e)
	}
	return out
}

func originOf(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("url %q is not absolute", raw)
	}
	return u.Scheme + "://" + u.Host, nil
}
