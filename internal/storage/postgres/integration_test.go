//go:build integration

package postgres

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"pinflow/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	logger    *slog.Logger
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_init.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM metadata_generations")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM pins")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM articles")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM blog_projects")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM profiles")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func ptr[T any](v T) *T { return &v }

func (s *PostgresIntegrationSuite) seedProject() *domain.BlogProject {
	project := &domain.BlogProject{
		ID:       uuid.NewString(),
		TenantID: "tenant-1",
		Name:     "Test Blog",
		BlogURL:  "https://blog.example.com",
		Cadence:  domain.CadenceManual,
	}
	s.Require().NoError(NewProjectStore(s.db, s.logger).Create(s.ctx, project))
	return project
}

func (s *PostgresIntegrationSuite) seedArticle(projectID string) *domain.Article {
	article := &domain.Article{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		TenantID:  "tenant-1",
		Title:     "Test Article",
		URL:       "https://blog.example.com/posts/" + uuid.NewString(),
		ScrapedAt: time.Now().UTC(),
	}
	_, err := NewArticleStore(s.db).Upsert(s.ctx, article)
	s.Require().NoError(err)
	return article
}

func (s *PostgresIntegrationSuite) TestProfileStore_EnsureIsIdempotent() {
	store := NewProfileStore(s.db)

	first, err := store.Ensure(s.ctx, "user-1")
	s.NoError(err)
	s.NotEmpty(first.TenantID)

	second, err := store.Ensure(s.ctx, "user-1")
	s.NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal(first.TenantID, second.TenantID)
}

func (s *PostgresIntegrationSuite) TestProjectStore_PartialUpdate() {
	store := NewProjectStore(s.db, s.logger)
	project := s.seedProject()

	_, err := store.Update(s.ctx, "tenant-1", project.ID, domain.ProjectUpdate{
		SitemapURL: domain.Some("https://blog.example.com/sitemap_index.xml"),
	})
	s.NoError(err)

	// A second partial update must not touch the sitemap URL.
	updated, err := store.Update(s.ctx, "tenant-1", project.ID, domain.ProjectUpdate{
		Name: domain.Some("Renamed"),
	})
	s.NoError(err)
	s.Equal("Renamed", updated.Name)
	s.Require().NotNil(updated.SitemapURL)
	s.Equal("https://blog.example.com/sitemap_index.xml", *updated.SitemapURL)

	// An explicit null clears it.
	updated, err = store.Update(s.ctx, "tenant-1", project.ID, domain.ProjectUpdate{
		SitemapURL: domain.Null[string](),
	})
	s.NoError(err)
	s.Nil(updated.SitemapURL)
}

func (s *PostgresIntegrationSuite) TestProjectStore_TenantIsolation() {
	store := NewProjectStore(s.db, s.logger)
	project := s.seedProject()

	_, err := store.GetByID(s.ctx, "tenant-2", project.ID)

	var notFound *domain.NotFoundError
	s.ErrorAs(err, &notFound)
}

func (s *PostgresIntegrationSuite) TestArticleStore_UpsertReportsInsertVsUpdate() {
	store := NewArticleStore(s.db)
	project := s.seedProject()

	article := &domain.Article{
		ID:        uuid.NewString(),
		ProjectID: project.ID,
		TenantID:  "tenant-1",
		Title:     "First Title",
		URL:       "https://blog.example.com/posts/one",
		ScrapedAt: time.Now().UTC(),
	}

	inserted, err := store.Upsert(s.ctx, article)
	s.NoError(err)
	s.True(inserted)

	article.Title = "Second Title"
	inserted, err = store.Upsert(s.ctx, article)
	s.NoError(err)
	s.False(inserted)

	got, err := store.GetByID(s.ctx, "tenant-1", article.ID)
	s.NoError(err)
	s.Equal("Second Title", got.Title)
}

func (s *PostgresIntegrationSuite) TestArticleStore_EmptyUpdateIsNoOp() {
	store := NewArticleStore(s.db)
	project := s.seedProject()
	article := s.seedArticle(project.ID)

	got, err := store.Update(s.ctx, "tenant-1", article.ID, domain.ArticleUpdate{})

	s.NoError(err)
	s.Equal(article.Title, got.Title)
}

func (s *PostgresIntegrationSuite) TestArticleStore_ArchiveMovesListing() {
	store := NewArticleStore(s.db)
	project := s.seedProject()
	article := s.seedArticle(project.ID)

	s.NoError(store.Archive(s.ctx, "tenant-1", article.ID, time.Now().UTC()))

	active, err := store.ListActive(s.ctx, "tenant-1", project.ID)
	s.NoError(err)
	s.Empty(active)

	archived, err := store.ListArchived(s.ctx, "tenant-1", project.ID)
	s.NoError(err)
	s.Len(archived, 1)

	s.NoError(store.Restore(s.ctx, "tenant-1", article.ID))

	active, err = store.ListActive(s.ctx, "tenant-1", project.ID)
	s.NoError(err)
	s.Len(active, 1)
}

func (s *PostgresIntegrationSuite) TestPinStore_ErrorRetainsPreviousStatus() {
	store := NewPinStore(s.db)
	project := s.seedProject()
	article := s.seedArticle(project.ID)

	pin := &domain.Pin{
		ID:        uuid.NewString(),
		ProjectID: project.ID,
		ArticleID: article.ID,
		TenantID:  "tenant-1",
		MediaURL:  "https://cdn.example.com/a.jpg",
		MediaType: "image",
		Status:    domain.StatusReadyToSchedule,
	}
	s.Require().NoError(store.Create(s.ctx, pin))

	updated, err := store.SetStatus(s.ctx, "tenant-1", pin.ID, domain.StatusError, ptr("board not found"))
	s.NoError(err)
	s.Equal(domain.StatusError, updated.Status)
	s.Require().NotNil(updated.PreviousStatus)
	s.Equal(domain.StatusReadyToSchedule, *updated.PreviousStatus)
	s.Require().NotNil(updated.ErrorMessage)
	s.Equal("board not found", *updated.ErrorMessage)
}

func (s *PostgresIntegrationSuite) TestPinStore_BulkScheduleAndListDue() {
	store := NewPinStore(s.db)
	project := s.seedProject()
	article := s.seedArticle(project.ID)

	var ids []string
	for range 3 {
		pin := &domain.Pin{
			ID:        uuid.NewString(),
			ProjectID: project.ID,
			ArticleID: article.ID,
			TenantID:  "tenant-1",
			MediaURL:  "https://cdn.example.com/a.jpg",
			MediaType: "image",
			Status:    domain.StatusMetadataCreated,
		}
		s.Require().NoError(store.Create(s.ctx, pin))
		ids = append(ids, pin.ID)
	}

	past := time.Now().UTC().Add(-time.Hour)
	times := []time.Time{past, past.Add(time.Minute), time.Now().UTC().Add(24 * time.Hour)}

	refs, err := store.BulkSchedule(s.ctx, "tenant-1", ids, times)
	s.NoError(err)
	s.Len(refs, 3)
	for _, ref := range refs {
		s.Equal(project.ID, ref.ProjectID)
	}

	due, err := store.ListDue(s.ctx, time.Now().UTC())
	s.NoError(err)
	s.Len(due, 2)
}

func (s *PostgresIntegrationSuite) TestGenerationStore_ListRecentKeepsThree() {
	store := NewGenerationStore(s.db)
	pins := NewPinStore(s.db)
	project := s.seedProject()
	article := s.seedArticle(project.ID)

	pin := &domain.Pin{
		ID:        uuid.NewString(),
		ProjectID: project.ID,
		ArticleID: article.ID,
		TenantID:  "tenant-1",
		MediaURL:  "https://cdn.example.com/a.jpg",
		MediaType: "image",
		Status:    domain.StatusMetadataCreated,
	}
	s.Require().NoError(pins.Create(s.ctx, pin))

	for range 5 {
		gen := &domain.MetadataGeneration{
			ID:          uuid.NewString(),
			PinID:       pin.ID,
			TenantID:    "tenant-1",
			Title:       "Title",
			Description: "Description",
			AltText:     "Alt",
		}
		s.Require().NoError(store.Insert(s.ctx, gen))
		// keep insert order observable in created_at
		time.Sleep(2 * time.Millisecond)
	}

	recent, err := store.ListRecent(s.ctx, "tenant-1", pin.ID)
	s.NoError(err)
	s.Len(recent, 3)
}
