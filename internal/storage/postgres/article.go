package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"pinflow/internal/domain"
)

const articleColumns = `id, project_id, tenant_id, title, url, content, published_at, scraped_at, archived_at`

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Upsert inserts a scraped article or refreshes an existing one keyed
// by (project_id, url). Returns true when the row was newly created.
func (s *ArticleStore) Upsert(ctx context.Context, a *domain.Article) (bool, error) {
	query := `
		INSERT INTO articles (id, project_id, tenant_id, title, url, content, published_at, scraped_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (project_id, url) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			published_at = EXCLUDED.published_at,
			scraped_at = EXCLUDED.scraped_at
		RETURNING id, (xmax = 0) AS inserted`

	var (
		id       string
		inserted bool
	)
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		a.ID, a.ProjectID, a.TenantID, a.Title, a.URL, a.Content, a.PublishedAt, a.ScrapedAt,
	).Scan(&id, &inserted)
	if err != nil {
		return false, fmt.Errorf("upsert article: %w", err)
	}

	a.ID = id
	return inserted, nil
}

func (s *ArticleStore) GetByID(ctx context.Context, tenantID, id string) (*domain.Article, error) {
	var a domain.Article
	query := `SELECT ` + articleColumns + ` FROM articles WHERE tenant_id = $1 AND id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &a, query, tenantID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "article", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// ListActive returns non-archived articles newest-first by publish
// time, articles without one last.
func (s *ArticleStore) ListActive(ctx context.Context, tenantID, projectID string) ([]domain.Article, error) {
	query := `
		SELECT ` + articleColumns + ` FROM articles
		WHERE tenant_id = $1 AND project_id = $2 AND archived_at IS NULL
		ORDER BY published_at DESC NULLS LAST, scraped_at DESC`

	return s.list(ctx, query, tenantID, projectID)
}

// ListArchived returns archived articles newest-first by archive time.
func (s *ArticleStore) ListArchived(ctx context.Context, tenantID, projectID string) ([]domain.Article, error) {
	query := `
		SELECT ` + articleColumns + ` FROM articles
		WHERE tenant_id = $1 AND project_id = $2 AND archived_at IS NOT NULL
		ORDER BY archived_at DESC`

	return s.list(ctx, query, tenantID, projectID)
}

func (s *ArticleStore) list(ctx context.Context, query string, args ...any) ([]domain.Article, error) {
	var articles []domain.Article
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles, query, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Update applies a partial edit to the article's editable fields.
func (s *ArticleStore) Update(ctx context.Context, tenantID, id string, upd domain.ArticleUpdate) (*domain.Article, error) {
	// An all-omitted patch would build an UPDATE with no SET clause;
	// treat it as a plain read instead.
	if !upd.Title.Set && !upd.Content.Set && !upd.PublishedAt.Set {
		return s.GetByID(ctx, tenantID, id)
	}

	b := psql.Update("articles").
		Where(sq.Eq{"tenant_id": tenantID, "id": id}).
		Suffix("RETURNING " + articleColumns)

	b = setOptional(b, "title", upd.Title)
	b = setOptional(b, "content", upd.Content)
	b = setOptional(b, "published_at", upd.PublishedAt)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var a domain.Article
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &a, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "article", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return &a, nil
}

// Archive soft-deletes; Restore clears the archive timestamp. Articles
// are never hard-deleted.
func (s *ArticleStore) Archive(ctx context.Context, tenantID, id string, at time.Time) error {
	return s.setArchived(ctx, tenantID, id, &at)
}

func (s *ArticleStore) Restore(ctx context.Context, tenantID, id string) error {
	return s.setArchived(ctx, tenantID, id, nil)
}

func (s *ArticleStore) setArchived(ctx context.Context, tenantID, id string, at *time.Time) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE articles SET archived_at = $1 WHERE tenant_id = $2 AND id = $3`, at, tenantID, id)
	if err != nil {
		return fmt.Errorf("set archived: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "article", ID: id}
	}
	return nil
}

// ExistingURLs reports which of the candidate URLs already have a row
// for the project, mapped to their scrape time.
func (s *ArticleStore) ExistingURLs(ctx context.Context, projectID string, urls []string) (map[string]time.Time, error) {
	if len(urls) == 0 {
		return map[string]time.Time{}, nil
	}

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx,
		`SELECT url, scraped_at FROM articles WHERE project_id = $1 AND url = ANY($2)`,
		projectID, pq.Array(urls))
	if err != nil {
		return nil, fmt.Errorf("query existing urls: %w", err)
	}
	defer rows.Close()

	result := make(map[string]time.Time)
	for rows.Next() {
		var (
			u  string
			at time.Time
		)
		if err := rows.Scan(&u, &at); err != nil {
			return nil, fmt.Errorf("scan existing url: %w", err)
		}
		result[u] = at
	}
	return result, rows.Err()
}
