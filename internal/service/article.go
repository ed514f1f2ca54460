package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pinflow/internal/domain"
	"pinflow/internal/events"
	"pinflow/internal/sitemap"
)

type ArticleService struct {
	profiles   ProfileStore
	projects   ProjectStore
	articles   ArticleStore
	discoverer SitemapDiscoverer
	pages      PageSource
	events     EventPublisher
	logger     *slog.Logger
}

func NewArticleService(
	profiles ProfileStore,
	projects ProjectStore,
	articles ArticleStore,
	discoverer SitemapDiscoverer,
	pages PageSource,
	publisher EventPublisher,
	logger *slog.Logger,
) *ArticleService {
	return &ArticleService{
		profiles:   profiles,
		projects:   projects,
		articles:   articles,
		discoverer: discoverer,
		pages:      pages,
		events:     publisher,
		logger:     logger.With("service", "articles"),
	}
}

// ScrapeResult summarizes one scrape run. Per-URL failures are
// collected in Errors without aborting the run.
type ScrapeResult struct {
	ArticlesFound int      `json:"articles_found"`
	Created       int      `json:"created"`
	Updated       int      `json:"updated"`
	Skipped       int      `json:"skipped"`
	Method        string   `json:"method"`
	Errors        []string `json:"errors,omitempty"`
}

// Scrape discovers the project's article URLs via its sitemap, falling
// back to the RSS feed when the sitemap cannot be read, then fetches
// and upserts each page.
func (s *ArticleService) Scrape(ctx context.Context, projectID string) (*ScrapeResult, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.GetByID(ctx, profile.TenantID, projectID)
	if err != nil {
		return nil, err
	}
	return s.scrapeProject(ctx, project)
}

// ScrapeDue runs a scrape for every project whose cadence has elapsed.
// Used by the scheduler, so failures are logged per project rather
// than aborting the batch.
func (s *ArticleService) ScrapeDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.projects.ListDueForScrape(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list due projects: %w", err)
	}

	scraped := 0
	for i := range due {
		if _, err := s.scrapeProject(ctx, &due[i]); err != nil {
			s.logger.Warn("scheduled scrape failed", "project_id", due[i].ID, "error", err)
			continue
		}
		scraped++
	}
	return scraped, nil
}

func (s *ArticleService) scrapeProject(ctx context.Context, project *domain.BlogProject) (*ScrapeResult, error) {
	projectID := project.ID
	startTime := time.Now()
	s.logger.Info("starting scrape", "project_id", projectID, "blog_url", project.BlogURL)

	entries, method, err := s.discover(ctx, project)
	if err != nil {
		return nil, err
	}

	result := &ScrapeResult{ArticlesFound: len(entries), Method: method}

	existing, err := s.articles.ExistingURLs(ctx, projectID, entryURLs(entries))
	if err != nil {
		return nil, fmt.Errorf("check existing urls: %w", err)
	}

	for _, entry := range entries {
		// Unchanged since the last scrape: the sitemap's lastmod
		// predates what we already stored.
		if scrapedAt, ok := existing[entry.URL]; ok && entry.LastMod != nil && !entry.LastMod.After(scrapedAt) {
			result.Skipped++
			continue
		}

		page, err := s.pages.FetchPage(ctx, entry.URL)
		if err != nil {
			s.logger.Warn("page fetch failed", "url", entry.URL, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", entry.URL, err))
			continue
		}

		article := &domain.Article{
			ID:          uuid.NewString(),
			ProjectID:   projectID,
			TenantID:    project.TenantID,
			Title:       page.Title,
			URL:         entry.URL,
			PublishedAt: page.PublishedAt,
			ScrapedAt:   time.Now().UTC(),
		}
		if page.Content != "" {
			article.Content = &page.Content
		}
		if article.PublishedAt == nil {
			article.PublishedAt = entry.LastMod
		}

		inserted, err := s.articles.Upsert(ctx, article)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", entry.URL, err))
			continue
		}
		if inserted {
			result.Created++
			s.publishChange(ctx, "create", project.TenantID, article.ID, projectID)
		} else {
			result.Updated++
			s.publishChange(ctx, "update", project.TenantID, article.ID, projectID)
		}
	}

	if err := s.projects.MarkScraped(ctx, projectID, time.Now().UTC()); err != nil {
		s.logger.Warn("mark scraped failed", "project_id", projectID, "error", err)
	}

	s.logger.Info("scrape finished",
		"project_id", projectID,
		"method", method,
		"found", result.ArticlesFound,
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
		"duration", time.Since(startTime).String(),
	)
	return result, nil
}

func (s *ArticleService) discover(ctx context.Context, project *domain.BlogProject) ([]sitemap.Entry, string, error) {
	var sitemapURL string
	if project.SitemapURL != nil {
		sitemapURL = *project.SitemapURL
	}

	entries, sitemapErr := s.discoverer.Discover(ctx, project.BlogURL, sitemapURL)
	if sitemapErr == nil {
		return entries, "sitemap", nil
	}

	if project.RSSURL == nil || *project.RSSURL == "" {
		if errors.Is(sitemapErr, domain.ErrNoURLsFound) {
			return nil, "", sitemapErr
		}
		return nil, "", fmt.Errorf("discover articles: %w", sitemapErr)
	}

	s.logger.Warn("sitemap discovery failed, trying rss feed",
		"blog_url", project.BlogURL, "error", sitemapErr)

	entries, feedErr := s.pages.DiscoverViaFeed(ctx, *project.RSSURL)
	if feedErr != nil {
		return nil, "", fmt.Errorf("discover articles: sitemap: %v; rss: %w", sitemapErr, feedErr)
	}
	return entries, "rss", nil
}

// AddManual fetches a single URL supplied by the user and stores it as
// an article of the project.
func (s *ArticleService) AddManual(ctx context.Context, projectID, pageURL string) (*domain.Article, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.GetByID(ctx, profile.TenantID, projectID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateBlogURL(pageURL); err != nil {
		return nil, &domain.ValidationError{Field: "url", Reason: "must be an absolute http(s) URL"}
	}

	page, err := s.pages.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	article := &domain.Article{
		ID:          uuid.NewString(),
		ProjectID:   project.ID,
		TenantID:    profile.TenantID,
		Title:       page.Title,
		URL:         pageURL,
		PublishedAt: page.PublishedAt,
		ScrapedAt:   time.Now().UTC(),
	}
	if page.Content != "" {
		article.Content = &page.Content
	}

	if _, err := s.articles.Upsert(ctx, article); err != nil {
		return nil, fmt.Errorf("store article: %w", err)
	}

	s.publishChange(ctx, "create", profile.TenantID, article.ID, projectID)
	return article, nil
}

// List returns the project's active or archived articles sorted by the
// requested field.
func (s *ArticleService) List(ctx context.Context, projectID string, archived bool, sortBy domain.ArticleSortField, descending bool) ([]domain.Article, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}

	var articles []domain.Article
	if archived {
		articles, err = s.articles.ListArchived(ctx, profile.TenantID, projectID)
	} else {
		articles, err = s.articles.ListActive(ctx, profile.TenantID, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	if sortBy != "" {
		domain.SortArticles(articles, sortBy, descending)
	}
	return articles, nil
}

func (s *ArticleService) Update(ctx context.Context, id string, upd domain.ArticleUpdate) (*domain.Article, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	if upd.Title.Set && (!upd.Title.Valid || upd.Title.Value == "") {
		return nil, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	article, err := s.articles.Update(ctx, profile.TenantID, id, upd)
	if err != nil {
		return nil, err
	}

	s.publishChange(ctx, "update", profile.TenantID, id, article.ProjectID)
	return article, nil
}

func (s *ArticleService) Archive(ctx context.Context, id string) error {
	return s.setArchived(ctx, id, true)
}

func (s *ArticleService) Restore(ctx context.Context, id string) error {
	return s.setArchived(ctx, id, false)
}

func (s *ArticleService) setArchived(ctx context.Context, id string, archive bool) error {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return err
	}
	article, err := s.articles.GetByID(ctx, profile.TenantID, id)
	if err != nil {
		return err
	}

	if archive {
		err = s.articles.Archive(ctx, profile.TenantID, id, time.Now().UTC())
	} else {
		err = s.articles.Restore(ctx, profile.TenantID, id)
	}
	if err != nil {
		return err
	}

	s.publishChange(ctx, "update", profile.TenantID, id, article.ProjectID)
	return nil
}

func (s *ArticleService) publishChange(ctx context.Context, action, tenantID, articleID, projectID string) {
	ev := events.ChangeEvent{
		Table:     "articles",
		Action:    action,
		TenantID:  tenantID,
		RowID:     articleID,
		ProjectID: projectID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Warn("change event not delivered", "action", action, "article_id", articleID, "error", err)
	}
}

func entryURLs(entries []sitemap.Entry) []string {
	urls := make([]string, len(entries))
	for i, e := range entries {
		urls[i] = e.URL
	}
	return urls
}
