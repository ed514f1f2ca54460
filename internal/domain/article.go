package domain

import (
	"sort"
	"strings"
	"time"
)

// Article is a scraped or manually-added blog post.
type Article struct {
	ID          string     `db:"id" json:"id"`
	ProjectID   string     `db:"project_id" json:"project_id"`
	TenantID    string     `db:"tenant_id" json:"tenant_id"`
	Title       string     `db:"title" json:"title"`
	URL         string     `db:"url" json:"url"`
	Content     *string    `db:"content" json:"content"`
	PublishedAt *time.Time `db:"published_at" json:"published_at"`
	ScrapedAt   time.Time  `db:"scraped_at" json:"scraped_at"`
	ArchivedAt  *time.Time `db:"archived_at" json:"archived_at"`
}

// Active reports whether the article belongs to the default listing.
// Every article is exactly one of active or archived.
func (a Article) Active() bool {
	return a.ArchivedAt == nil
}

// ArticleUpdate carries a partial edit of an article.
type ArticleUpdate struct {
	Title       Optional[string]    `json:"title"`
	Content     Optional[string]    `json:"content"`
	PublishedAt Optional[time.Time] `json:"published_at"`
}

// ArticleSortField names a sortable column of the articles table.
type ArticleSortField string

const (
	SortByTitle       ArticleSortField = "title"
	SortByPublishedAt ArticleSortField = "published_at"
	SortByURL         ArticleSortField = "url"
)

// SplitByArchived partitions articles into active and archived.
func SplitByArchived(articles []Article) (active, archived []Article) {
	for _, a := range articles {
		if a.Active() {
			active = append(active, a)
		} else {
			archived = append(archived, a)
		}
	}
	return active, archived
}

// SortArticles orders articles by the given field and direction.
// A null or empty sort value always orders last, regardless of
// direction; ordering is stable.
func SortArticles(articles []Article, field ArticleSortField, descending bool) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articleLess(articles[i], articles[j], field, descending)
	})
}

func articleLess(a, b Article, field ArticleSortField, descending bool) bool {
	switch field {
	case SortByPublishedAt:
		if a.PublishedAt == nil {
			return false
		}
		if b.PublishedAt == nil {
			return true
		}
		if descending {
			return a.PublishedAt.After(*b.PublishedAt)
		}
		return a.PublishedAt.Before(*b.PublishedAt)
	case SortByURL:
		return stringLess(a.URL, b.URL, descending)
	default:
		return stringLess(a.Title, b.Title, descending)
	}
}

func stringLess(a, b string, descending bool) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	if descending {
		return a > b
	}
	return a < b
}
