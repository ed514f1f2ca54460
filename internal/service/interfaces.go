package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"pinflow/internal/ai"
	"pinflow/internal/domain"
	"pinflow/internal/events"
	"pinflow/internal/pinterest"
	"pinflow/internal/scraper"
	"pinflow/internal/sitemap"
)

type ProfileStore interface {
	Ensure(ctx context.Context, userID string) (*domain.Profile, error)
}

type ProjectStore interface {
	Create(ctx context.Context, p *domain.BlogProject) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.BlogProject, error)
	List(ctx context.Context, tenantID string) ([]domain.BlogProject, error)
	Update(ctx context.Context, tenantID, id string, upd domain.ProjectUpdate) (*domain.BlogProject, error)
	Delete(ctx context.Context, tenantID, id string) error
	CountRelated(ctx context.Context, tenantID, projectID string) domain.RelatedCounts
	SetPinterestToken(ctx context.Context, tenantID, id, username, token string) error
	MarkScraped(ctx context.Context, id string, at time.Time) error
	ListDueForScrape(ctx context.Context, now time.Time) ([]domain.BlogProject, error)
}

type ArticleStore interface {
	Upsert(ctx context.Context, a *domain.Article) (bool, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Article, error)
	ListActive(ctx context.Context, tenantID, projectID string) ([]domain.Article, error)
	ListArchived(ctx context.Context, tenantID, projectID string) ([]domain.Article, error)
	Update(ctx context.Context, tenantID, id string, upd domain.ArticleUpdate) (*domain.Article, error)
	Archive(ctx context.Context, tenantID, id string, at time.Time) error
	Restore(ctx context.Context, tenantID, id string) error
	ExistingURLs(ctx context.Context, projectID string, urls []string) (map[string]time.Time, error)
}

type PinStore interface {
	Create(ctx context.Context, p *domain.Pin) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Pin, error)
	ListByProject(ctx context.Context, tenantID, projectID string) ([]domain.Pin, error)
	Update(ctx context.Context, tenantID, id string, upd domain.PinUpdate) (*domain.Pin, error)
	SetStatus(ctx context.Context, tenantID, id string, status domain.PinStatus, errMsg *string) (*domain.Pin, error)
	SetMetadata(ctx context.Context, tenantID, id, title, description, altText string, status domain.PinStatus) (*domain.Pin, error)
	SetPublished(ctx context.Context, tenantID, id, pinterestID, pinterestURL string, at time.Time) (*domain.Pin, error)
	BulkDelete(ctx context.Context, tenantID string, ids []string) ([]domain.PinRef, error)
	BulkSetStatus(ctx context.Context, tenantID string, ids []string, status domain.PinStatus) ([]domain.PinRef, error)
	BulkSchedule(ctx context.Context, tenantID string, ids []string, times []time.Time) ([]domain.PinRef, error)
	ListDue(ctx context.Context, now time.Time) ([]domain.Pin, error)
}

type GenerationStore interface {
	Insert(ctx context.Context, g *domain.MetadataGeneration) error
	ListRecent(ctx context.Context, tenantID, pinID string) ([]domain.MetadataGeneration, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.MetadataGeneration, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	Publish(ctx context.Context, ev events.ChangeEvent) error
}

// SitemapDiscoverer enumerates article URLs from a blog's sitemap.
type SitemapDiscoverer interface {
	Discover(ctx context.Context, blogURL, sitemapURL string) ([]sitemap.Entry, error)
}

// PageSource fetches and extracts individual pages, and discovers
// entries from an RSS feed when a sitemap is unavailable.
type PageSource interface {
	FetchPage(ctx context.Context, pageURL string) (*scraper.Page, error)
	DiscoverViaFeed(ctx context.Context, feedURL string) ([]sitemap.Entry, error)
}

type MetadataGenerator interface {
	Generate(ctx context.Context, req ai.Request) (*ai.Metadata, error)
}

type PinPublisher interface {
	Publish(ctx context.Context, accessToken string, req pinterest.PublishRequest) (*pinterest.PublishResult, error)
}

// PinterestAuth drives the OAuth authorization-code flow.
type PinterestAuth interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}
