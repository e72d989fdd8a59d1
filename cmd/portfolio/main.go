package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"blog_feed/internal/config"
	"blog_feed/internal/feed"
	"blog_feed/internal/preference"
	"blog_feed/internal/publisher"
	"blog_feed/internal/render"
	"blog_feed/internal/scheduler"
	"blog_feed/internal/source/devto"
	"blog_feed/internal/storage/postgres"
	"blog_feed/internal/storage/redis"
	"blog_feed/internal/web"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := openPreferenceStore(ctx, cfg.Preferences, logger)
	if err != nil {
		logger.Error("failed to open preference store", "driver", cfg.Preferences.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// Left nil when disabled so the controller skips publishing.
	var events feed.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
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
		events = rabbitMQ
	}

	devtoSource := devto.New(devto.Config{
		BaseURL:  cfg.API.BaseURL,
		Username: cfg.API.Username,
		Timeout:  cfg.API.Timeout,
	}, logger)

	pickColor := render.RandomColor
	if cfg.Render.PlaceholderColor == config.ColorHash {
		pickColor = render.HashColor
	}
	renderer := render.New(render.Options{
		ProfileURL: cfg.Render.ProfileURL,
		PickColor:  pickColor,
	})

	sessions, err := web.NewSessionStore(cfg.Sessions.MaxSessions, cfg.Sessions.IdleTimeout, logger)
	if err != nil {
		logger.Error("failed to create session store", "error", err)
		os.Exit(1)
	}

	newFeed := func(sessionID string, doc *web.Document) *feed.Controller {
		return feed.NewController(devtoSource, doc, renderer, events, logger, feed.Options{
			PageSize:  cfg.API.PageSize,
			SessionID: sessionID,
		})
	}

	server := web.NewServer(
		web.Config{Title: cfg.Server.Title},
		sessions,
		newFeed,
		preference.NewService(store, logger),
		logger,
	)

	sched := scheduler.NewScheduler(sessions, cfg.Sessions.SweepInterval, logger)
	go func() {
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler error", "error", err)
		}
	}()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
		cancel()
	}()

	logger.Info("starting blog feed",
		"source", devtoSource.Name(),
		"username", cfg.API.Username,
		"page_size", cfg.API.PageSize,
		"preferences", cfg.Preferences.Driver,
		"publisher_enabled", cfg.RabbitMQ.Enabled,
	)

	if err := server.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("blog feed stopped")
}

func openPreferenceStore(ctx context.Context, cfg config.PreferenceConfig, logger *slog.Logger) (preference.Store, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		logger.Info("connected to database")
		return postgres.NewThemeStore(db), func() { db.Close() }, nil

	case config.DriverRedis:
		store, err := redis.NewThemeStore(cfg.RedisURL, cfg.TTL)
		if err != nil {
			return nil, nil, err
		}
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		logger.Info("connected to redis")
		return store, func() { store.Close() }, nil

	default:
		return preference.NewMemoryStore(), func() {}, nil
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
