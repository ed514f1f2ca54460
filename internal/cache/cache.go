// Package cache is an explicit read cache keyed by entity-collection
// identifiers, invalidated through a declared dependency table rather
// than implicit framework magic.
package cache

import (
	"sync"

	"pinflow/internal/events"
)

// Key identifies one cached collection.
type Key string

func ProjectsKey(tenantID string) Key       { return Key("projects:" + tenantID) }
func ArticlesKey(projectID string) Key      { return Key("articles:" + projectID) }
func PinsKey(projectID string) Key          { return Key("pins:" + projectID) }
func GenerationsKey(pinID string) Key       { return Key("generations:" + pinID) }
func ProjectCountsKey(projectID string) Key { return Key("project_counts:" + projectID) }

// Store is a thread-safe in-memory cache. All methods are safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]any
}

func New() *Store {
	return &Store{entries: make(map[Key]any)}
}

func (s *Store) Get(key Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *Store) Put(key Key, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.entries, k)
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// KeysFor is the dependency table: given a change event it names every
// cache key the mutation invalidates. Unknown tables invalidate
// nothing.
func KeysFor(ev events.ChangeEvent) []Key {
	switch ev.Table {
	case "blog_projects":
		return []Key{ProjectsKey(ev.TenantID), ProjectCountsKey(ev.RowID)}
	case "articles":
		// The tenant's project list carries per-project counts, so it
		// goes stale too.
		return []Key{ArticlesKey(ev.ProjectID), ProjectCountsKey(ev.ProjectID), ProjectsKey(ev.TenantID)}
	case "pins":
		return []Key{PinsKey(ev.ProjectID), ProjectCountsKey(ev.ProjectID), ProjectsKey(ev.TenantID)}
	case "metadata_generations":
		return []Key{GenerationsKey(ev.PinID), PinsKey(ev.ProjectID)}
	default:
		return nil
	}
}
