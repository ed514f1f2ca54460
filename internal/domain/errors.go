package domain

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned by every mutating operation that
// cannot resolve an authenticated user from the request context.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrNoURLsFound is returned when a flat urlset sitemap yields zero
// entries. A sitemap index whose children all fail returns an empty
// list instead, not this error.
var ErrNoURLsFound = errors.New("no urls found in sitemap")

// FetchError reports a non-2xx response from an outbound fetch.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}

// NotFoundError reports a lookup that targeted a non-existent row.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ValidationError reports malformed input caught at the request boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UpstreamError carries a third-party failure (AI generation, Pinterest
// API) with the upstream's own message where available.
type UpstreamError struct {
	Service string
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}
