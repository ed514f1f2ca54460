package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortArticles_NullTitleAlwaysLast(t *testing.T) {
	articles := []Article{
		{ID: "b", Title: "B"},
		{ID: "null", Title: ""},
		{ID: "a", Title: "A"},
	}

	SortArticles(articles, SortByTitle, false)
	assert.Equal(t, []string{"a", "b", "null"}, ids(articles))

	// Direction flips A and B but the empty title still sorts last.
	SortArticles(articles, SortByTitle, true)
	assert.Equal(t, []string{"b", "a", "null"}, ids(articles))
}

func TestSortArticles_PublishedAtNullLast(t *testing.T) {
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	articles := []Article{
		{ID: "none"},
		{ID: "late", PublishedAt: &late},
		{ID: "early", PublishedAt: &early},
	}

	SortArticles(articles, SortByPublishedAt, true)
	assert.Equal(t, []string{"late", "early", "none"}, ids(articles))

	SortArticles(articles, SortByPublishedAt, false)
	assert.Equal(t, []string{"early", "late", "none"}, ids(articles))
}

func TestSortArticles_ByURL(t *testing.T) {
	articles := []Article{
		{ID: "2", URL: "https://blog.example.com/zebra"},
		{ID: "1", URL: "https://blog.example.com/apple"},
	}

	SortArticles(articles, SortByURL, false)
	assert.Equal(t, []string{"1", "2"}, ids(articles))
}

func TestSplitByArchived_ExactPartition(t *testing.T) {
	now := time.Now()
	articles := []Article{
		{ID: "a1"},
		{ID: "a2", ArchivedAt: &now},
		{ID: "a3"},
	}

	active, archived := SplitByArchived(articles)

	require.Len(t, active, 2)
	require.Len(t, archived, 1)
	assert.Equal(t, "a2", archived[0].ID)
	assert.Equal(t, len(articles), len(active)+len(archived))
}

func TestOptional_OmittedNullAndValue(t *testing.T) {
	var u ArticleUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New","content":null}`), &u))

	assert.True(t, u.Title.Set)
	assert.True(t, u.Title.Valid)
	assert.Equal(t, "New", u.Title.Value)

	// Explicit null: present but clears the field.
	assert.True(t, u.Content.Set)
	assert.False(t, u.Content.Valid)

	// Omitted entirely: left untouched.
	assert.False(t, u.PublishedAt.Set)
}

func ids(articles []Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.ID
	}
	return out
}
