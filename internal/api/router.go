package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pinflow/internal/domain"
	"pinflow/internal/service"
)

// ProjectService is the part of the project service the API consumes.
type ProjectService interface {
	Create(ctx context.Context, input service.CreateProjectInput) (*domain.BlogProject, error)
	List(ctx context.Context) ([]service.ProjectWithCounts, error)
	Get(ctx context.Context, id string) (*service.ProjectWithCounts, error)
	Update(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.BlogProject, error)
	Delete(ctx context.Context, id string) error
	PinterestAuthURL(ctx context.Context, projectID string) (string, error)
	ConnectPinterest(ctx context.Context, state, code, username string) error
}

type ArticleService interface {
	Scrape(ctx context.Context, projectID string) (*service.ScrapeResult, error)
	AddManual(ctx context.Context, projectID, pageURL string) (*domain.Article, error)
	List(ctx context.Context, projectID string, archived bool, sortBy domain.ArticleSortField, descending bool) ([]domain.Article, error)
	Update(ctx context.Context, id string, upd domain.ArticleUpdate) (*domain.Article, error)
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

type PinService interface {
	Create(ctx context.Context, input service.CreatePinsInput) ([]domain.Pin, error)
	List(ctx context.Context, projectID string, tab domain.StatusTab) (*service.PinList, error)
	Get(ctx context.Context, id string) (*domain.Pin, error)
	Update(ctx context.Context, id string, upd domain.PinUpdate) (*domain.Pin, error)
	SetStatus(ctx context.Context, id string, status domain.PinStatus) (*domain.Pin, error)
	GenerateMetadata(ctx context.Context, id, feedback string) (*domain.Pin, error)
	Generations(ctx context.Context, pinID string) ([]domain.MetadataGeneration, error)
	RestoreGeneration(ctx context.Context, generationID string) (*domain.Pin, error)
	BulkSchedule(ctx context.Context, input service.BulkScheduleInput) (int64, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)
	BulkSetStatus(ctx context.Context, ids []string, status domain.PinStatus) (int64, error)
	Publish(ctx context.Context, id string) (*domain.Pin, error)
}

type Server struct {
	projects ProjectService
	articles ArticleService
	pins     PinService
	logger   *slog.Logger

	opts Options
}

type Options struct {
	AllowedOrigins []string
	// FrontendURL is where the Pinterest OAuth callback sends the
	// browser back to.
	FrontendURL string
}

func NewServer(projects ProjectService, articles ArticleService, pins PinService, logger *slog.Logger, opts Options) *Server {
	return &Server{
		projects: projects,
		articles: articles,
		pins:     pins,
		logger:   logger.With("component", "api"),
		opts:     opts,
	}
}

// Router assembles the gin engine: CORS and metrics on everything, auth
// on the API group, the OAuth callback outside it.
func (s *Server) Router(verify TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(Prometheus())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = s.opts.AllowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Pinterest redirects the browser here; there is no bearer token.
	r.GET("/oauth/pinterest/callback", s.pinterestCallback)

	apiGroup := r.Group("/api/v1", Auth(verify))
	{
		apiGroup.POST("/projects", s.createProject)
		apiGroup.GET("/projects", s.listProjects)
		apiGroup.GET("/projects/:id", s.getProject)
		apiGroup.PATCH("/projects/:id", s.updateProject)
		apiGroup.DELETE("/projects/:id", s.deleteProject)
		apiGroup.POST("/projects/:id/scrape", s.scrapeProject)
		apiGroup.GET("/projects/:id/pinterest/connect", s.pinterestConnectURL)

		apiGroup.GET("/projects/:id/articles", s.listArticles)
		apiGroup.POST("/projects/:id/articles", s.addArticle)
		apiGroup.PATCH("/articles/:id", s.updateArticle)
		apiGroup.POST("/articles/:id/archive", s.archiveArticle)
		apiGroup.POST("/articles/:id/restore", s.restoreArticle)

		apiGroup.GET("/projects/:id/pins", s.listPins)
		apiGroup.POST("/pins", s.createPins)
		apiGroup.GET("/pins/:id", s.getPin)
		apiGroup.PATCH("/pins/:id", s.updatePin)
		apiGroup.POST("/pins/:id/status", s.setPinStatus)
		apiGroup.POST("/pins/:id/generate", s.generateMetadata)
		apiGroup.GET("/pins/:id/generations", s.listGenerations)
		apiGroup.POST("/generations/:id/restore", s.restoreGeneration)
		apiGroup.POST("/pins/:id/publish", s.publishPin)
		apiGroup.POST("/pins/bulk/schedule", s.bulkSchedule)
		apiGroup.POST("/pins/bulk/status", s.bulkSetStatus)
		apiGroup.POST("/pins/bulk/delete", s.bulkDelete)
	}

	return r
}
