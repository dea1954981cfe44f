package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"adforge/internal/adapter/assets"
	httpadapter "adforge/internal/adapter/http"
	"adforge/internal/adapter/memory"
	"adforge/internal/adapter/openai"
	"adforge/internal/adapter/postgres"
	"adforge/internal/adapter/usecase"
	"adforge/internal/config"
	"adforge/internal/core/domain"
	"adforge/internal/core/port"
	"adforge/internal/db"
	"adforge/internal/session"
)

// main is the entry point of the adforge campaign manager. It loads
// configuration, selects the campaign store backend, wires the workflow
// components and starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	// Load a .env file if one is present; real environment wins.
	_ = godotenv.Load()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Select the campaign store. The in-memory store is the default;
	// postgres keeps campaigns across restarts.
	var repo port.CampaignRepository
	switch cfg.Storage {
	case config.StoragePostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		if cfg.Psql.SeedDemo {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			}
		}
		repo = postgres.NewCampaignRepository(pool)
	default:
		repo = memory.NewCampaignRepository()
	}

	// Upload directory is created up front so the static endpoint can
	// serve from it immediately.
	if err = os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		logger.Error("upload directory error", slog.Any("error", err))
		os.Exit(1)
	}

	accounts := memory.NewAccountRepository(domain.Account{
		ID:    cfg.Admin.ID,
		Email: cfg.Admin.Email,
		Name:  cfg.Admin.Name,
	})
	copygen := openai.NewCopyGenerator(cfg.AdCopy, logger)
	ingestor := assets.NewDiskIngestor(cfg.Uploads)
	svc := usecase.NewCampaignUseCase(repo, accounts, copygen, ingestor)
	sessions := session.NewStore(cfg.Session.Secret)

	handler := httpadapter.NewHandler(svc, sessions, cfg.Uploads, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
