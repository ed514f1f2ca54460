// Package sanitize strips dangerous markup from scraped article HTML
// before it is rendered with raw-injection semantics.
//
// This is a best-effort filter over first-party blog content discovered
// via sitemaps, not a security boundary for arbitrary user input: it
// operates via sequential regex passes and does not defend against
// obfuscated or malformed-markup evasion.
package sanitize

import "regexp"

var (
	blockedElements = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`),
		regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`),
		regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe>`),
		regexp.MustCompile(`(?is)<object\b[^>]*>.*?</object>`),
		regexp.MustCompile(`(?is)<embed\b[^>]*>.*?</embed>`),
		// Void-style variants with no closing tag.
		regexp.MustCompile(`(?i)<(?:script|style|iframe|object|embed)\b[^>]*/?>`),
	}

	eventHandlerAttrs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\son[a-z]+\s*=\s*"[^"]*"`),
		regexp.MustCompile(`(?i)\son[a-z]+\s*=\s*'[^']*'`),
		regexp.MustCompile(`(?i)\son[a-z]+\s*=\s*[^\s>]+`),
	}

	javascriptHrefs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\shref\s*=\s*"javascript:[^"]*"`),
		regexp.MustCompile(`(?i)\shref\s*=\s*'javascript:[^']*'`),
	}
)

// Clean returns HTML safe to inject directly into the DOM. It is a
// pure function and idempotent: Clean(Clean(x)) == Clean(x).
func Clean(html string) string {
	for _, re := range blockedElements {
		html = re.ReplaceAllString(html, "")
	}
	for _, re := range javascriptHrefs {
		html = re.ReplaceAllString(html, "")
	}
	for _, re := range eventHandlerAttrs {
		html = re.ReplaceAllString(html, "")
	}
	return html
}
