package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"pinflow/internal/domain"
)

// psql builds queries with Postgres placeholders; shared by all stores.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = `id, tenant_id, name, blog_url, sitemap_url, rss_url, cadence,
	audience, tone, visual_style, pinterest_user, pinterest_token, last_scraped_at, created_at, updated_at`

type ProjectStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewProjectStore(db *sqlx.DB, logger *slog.Logger) *ProjectStore {
	return &ProjectStore{db: db, logger: logger.With("store", "projects")}
}

func (s *ProjectStore) Create(ctx context.Context, p *domain.BlogProject) error {
	query := `
		INSERT INTO blog_projects (
			id, tenant_id, name, blog_url, sitemap_url, rss_url, cadence,
			audience, tone, visual_style, pinterest_user
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		p.ID, p.TenantID, p.Name, p.BlogURL, p.SitemapURL, p.RSSURL, p.Cadence,
		p.Audience, p.Tone, p.VisualStyle, p.PinterestUser,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (s *ProjectStore) GetByID(ctx context.Context, tenantID, id string) (*domain.BlogProject, error) {
	var p domain.BlogProject
	query := `SELECT ` + projectColumns + ` FROM blog_projects WHERE tenant_id = $1 AND id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p, query, tenantID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "project", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// List returns the tenant's projects newest-first by creation time.
func (s *ProjectStore) List(ctx context.Context, tenantID string) ([]domain.BlogProject, error) {
	var projects []domain.BlogProject
	query := `SELECT ` + projectColumns + ` FROM blog_projects WHERE tenant_id = $1 ORDER BY created_at DESC`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &projects, query, tenantID); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Update applies a partial edit: unset fields stay untouched, an
// explicit null clears the column.
func (s *ProjectStore) Update(ctx context.Context, tenantID, id string, upd domain.ProjectUpdate) (*domain.BlogProject, error) {
	b := psql.Update("blog_projects").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"tenant_id": tenantID, "id": id}).
		Suffix("RETURNING " + projectColumns)

	b = setOptional(b, "name", upd.Name)
	b = setOptional(b, "blog_url", upd.BlogURL)
	b = setOptional(b, "sitemap_url", upd.SitemapURL)
	b = setOptional(b, "rss_url", upd.RSSURL)
	b = setOptional(b, "cadence", upd.Cadence)
	b = setOptional(b, "audience", upd.Audience)
	b = setOptional(b, "tone", upd.Tone)
	b = setOptional(b, "visual_style", upd.VisualStyle)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var p domain.BlogProject
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "project", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return &p, nil
}

func (s *ProjectStore) Delete(ctx context.Context, tenantID, id string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM blog_projects WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "project", ID: id}
	}
	return nil
}

// CountRelated degrades gracefully: if a count query fails (for
// example the table is not provisioned yet) it returns zero for that
// count instead of propagating the error.
func (s *ProjectStore) CountRelated(ctx context.Context, tenantID, projectID string) domain.RelatedCounts {
	var counts domain.RelatedCounts

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &counts.Articles,
		`SELECT COUNT(*) FROM articles WHERE tenant_id = $1 AND project_id = $2`, tenantID, projectID)
	if err != nil {
		s.logger.Warn("article count unavailable", "project_id", projectID, "error", err)
		counts.Articles = 0
	}

	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &counts.Pins,
		`SELECT COUNT(*) FROM pins WHERE tenant_id = $1 AND project_id = $2`, tenantID, projectID)
	if err != nil {
		s.logger.Warn("pin count unavailable", "project_id", projectID, "error", err)
		counts.Pins = 0
	}

	return counts
}

// SetPinterestToken stores the Pinterest access token and account name
// obtained from an OAuth exchange.
func (s *ProjectStore) SetPinterestToken(ctx context.Context, tenantID, id, username, token string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE blog_projects SET pinterest_user = $1, pinterest_token = $2, updated_at = NOW()
		 WHERE tenant_id = $3 AND id = $4`, username, token, tenantID, id)
	if err != nil {
		return fmt.Errorf("set pinterest token: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "project", ID: id}
	}
	return nil
}

func (s *ProjectStore) MarkScraped(ctx context.Context, id string, at time.Time) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE blog_projects SET last_scraped_at = $1, updated_at = NOW() WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("mark scraped: %w", err)
	}
	return nil
}

// ListDueForScrape returns projects whose daily or weekly cadence has
// elapsed since the last scrape. Manual projects are never returned.
func (s *ProjectStore) ListDueForScrape(ctx context.Context, now time.Time) ([]domain.BlogProject, error) {
	var projects []domain.BlogProject
	query := `
		SELECT ` + projectColumns + ` FROM blog_projects
		WHERE (cadence = 'daily' AND (last_scraped_at IS NULL OR last_scraped_at <= $1))
		   OR (cadence = 'weekly' AND (last_scraped_at IS NULL OR last_scraped_at <= $2))
		ORDER BY created_at`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &projects, query,
		now.AddDate(0, 0, -1), now.AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("list due projects: %w", err)
	}
	return projects, nil
}

// setOptional renders the tri-state update semantics into a SET
// clause: omitted fields add nothing, explicit null writes NULL.
func setOptional[T any](b sq.UpdateBuilder, column string, f domain.Optional[T]) sq.UpdateBuilder {
	if !f.Set {
		return b
	}
	if !f.Valid {
		return b.Set(column, nil)
	}
	return b.Set(column, f.Value)
}
