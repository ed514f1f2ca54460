package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"pinflow/internal/ai"
	"pinflow/internal/api"
	"pinflow/internal/cache"
	"pinflow/internal/config"
	"pinflow/internal/events"
	"pinflow/internal/pinterest"
	"pinflow/internal/realtime"
	"pinflow/internal/scheduler"
	"pinflow/internal/scraper"
	"pinflow/internal/service"
	"pinflow/internal/sitemap"
	"pinflow/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := events.NewRabbitMQ(events.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Stores
	profileStore := postgres.NewProfileStore(db)
	projectStore := postgres.NewProjectStore(db, logger)
	articleStore := postgres.NewArticleStore(db)
	pinStore := postgres.NewPinStore(db)
	generationStore := postgres.NewGenerationStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Outbound clients
	httpClient := &http.Client{Timeout: 30 * time.Second}
	discoverer := sitemap.NewDiscoverer(httpClient, logger)
	pageSource := scraper.New(httpClient, logger)
	aiClient := ai.NewClient(ai.Config{
		Endpoint:     cfg.AI.Endpoint,
		Model:        cfg.AI.Model,
		APIKey:       cfg.AI.APIKey,
		SystemPrompt: cfg.AI.SystemPrompt,
		Timeout:      cfg.AI.Timeout,
	})
	pinterestClient := pinterest.NewClient(pinterest.Config{
		ClientID:     cfg.Pinterest.ClientID,
		ClientSecret: cfg.Pinterest.ClientSecret,
		RedirectURL:  cfg.Pinterest.RedirectURL,
	})

	// Read cache; the change-event consumer below keeps it honest.
	store := cache.New()

	// Services
	projectService := service.NewProjectService(profileStore, projectStore, pinterestClient, rabbitMQ, store, logger)
	articleService := service.NewArticleService(
		profileStore, projectStore, articleStore, discoverer, pageSource, rabbitMQ, logger,
	)
	pinService := service.NewPinService(
		profileStore, projectStore, articleStore, pinStore, generationStore,
		txManager, aiClient, pinterestClient, rabbitMQ, logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	invalidator := realtime.NewInvalidator(rabbitMQ, store, cfg.RabbitMQ.QueueName, nil, logger)
	go func() {
		if err := invalidator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("invalidator stopped", "error", err)
		}
	}()

	sched := scheduler.NewScheduler(pinService, articleService, cfg.Scheduler.Interval, logger)
	go func() {
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler error", "error", err)
		}
	}()

	server := api.NewServer(projectService, articleService, pinService, logger, api.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		FrontendURL:    cfg.Pinterest.FrontendURL,
	})
	// Tokens are opaque user identifiers passed through by the frontend
	// gateway.
	verify := func(ctx context.Context, token string) (string, error) {
		return token, nil
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      server.Router(verify),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
		cancel()
	}()

	logger.Info("starting pinflow", "addr", cfg.HTTP.Addr, "scheduler_interval", cfg.Scheduler.Interval)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
