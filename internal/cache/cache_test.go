package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinflow/internal/events"
)

func TestStore_PutGetInvalidate(t *testing.T) {
	s := New()
	key := ProjectsKey("tenant-1")

	_, ok := s.Get(key)
	assert.False(t, ok)

	s.Put(key, []string{"p1", "p2"})
	v, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, []string{"p1", "p2"}, v)

	s.Invalidate(key)
	_, ok = s.Get(key)
	assert.False(t, ok)
}

func TestKeysFor_DependencyTable(t *testing.T) {
	tests := []struct {
		name string
		ev   events.ChangeEvent
		want []Key
	}{
		{
			name: "project change invalidates tenant project list",
			ev:   events.ChangeEvent{Table: "blog_projects", TenantID: "t1", RowID: "proj1"},
			want: []Key{ProjectsKey("t1"), ProjectCountsKey("proj1")},
		},
		{
			name: "article change invalidates project articles, counts and the tenant list",
			ev:   events.ChangeEvent{Table: "articles", TenantID: "t1", ProjectID: "proj1", RowID: "a1"},
			want: []Key{ArticlesKey("proj1"), ProjectCountsKey("proj1"), ProjectsKey("t1")},
		},
		{
			name: "pin change invalidates project pins, counts and the tenant list",
			ev:   events.ChangeEvent{Table: "pins", TenantID: "t1", ProjectID: "proj1", RowID: "pin1"},
			want: []Key{PinsKey("proj1"), ProjectCountsKey("proj1"), ProjectsKey("t1")},
		},
		{
			name: "generation change invalidates pin history",
			ev:   events.ChangeEvent{Table: "metadata_generations", ProjectID: "proj1", PinID: "pin1"},
			want: []Key{GenerationsKey("pin1"), PinsKey("proj1")},
		},
		{
			name: "unknown table invalidates nothing",
			ev:   events.ChangeEvent{Table: "something_else"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeysFor(tt.ev))
		})
	}
}

func TestOptimistic_CommitInvalidates(t *testing.T) {
	s := New()
	key := ProjectsKey("t1")
	s.Put(key, []string{"existing"})

	err := Optimistic(s, key,
		func(cur []string) []string { return append(cur, "new") },
		func() error { return nil },
	)
	require.NoError(t, err)

	// Committed: speculative value dropped so the next read re-fetches.
	_, ok := s.Get(key)
	assert.False(t, ok)
}

func TestOptimistic_RollbackRestoresSnapshot(t *testing.T) {
	s := New()
	key := ProjectsKey("t1")
	s.Put(key, []string{"existing"})

	boom := errors.New("write failed")
	err := Optimistic(s, key,
		func(cur []string) []string { return append(cur, "new") },
		func() error { return boom },
	)
	require.ErrorIs(t, err, boom)

	v, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, []string{"existing"}, v)
}

func TestOptimistic_AppliesSpeculativelyBeforeCommit(t *testing.T) {
	s := New()
	key := PinsKey("proj1")
	s.Put(key, []string{"a"})

	var seen any
	err := Optimistic(s, key,
		func(cur []string) []string { return append(cur, "b") },
		func() error {
			seen, _ = s.Get(key)
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestOptimistic_NoSnapshotStillCommits(t *testing.T) {
	s := New()
	key := PinsKey("empty")

	err := Optimistic(s, key,
		func(cur []string) []string { return cur },
		func() error { return nil },
	)
	assert.NoError(t, err)
}
