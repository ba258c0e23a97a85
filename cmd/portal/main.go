package main

import (
	"context"
	"fmt"
	"io/fs"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/auth"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/config"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/identity"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/layout"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/media"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/server"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/store/postgres"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/tile"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/youthemail"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/web"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
}

func run() error {
	// Initialize structured logging from environment.
	logLevel := os.Getenv("PORTAL_LOG_LEVEL")
	level, parseErr := zerolog.ParseLevel(logLevel)
	if parseErr != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logFormat := os.Getenv("PORTAL_LOG_FORMAT")
	if logFormat == "text" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	ctx := context.Background()

	// Load configuration from environment.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Database.MaxConns < 0 || cfg.Database.MaxConns > math.MaxInt32 {
		return fmt.Errorf("database max_conns %d out of int32 range", cfg.Database.MaxConns)
	}

	// Connect to PostgreSQL.
	store, err := postgres.New(ctx, cfg.Database.DSN(), int32(cfg.Database.MaxConns)) //nolint:gosec // bounds checked above
	if err != nil {
		return err
	}
	defer store.Close()

	// S3 presigning client for tile imagery.
	mediaClient, err := media.New(ctx, cfg.Media.Region, cfg.Media.Bucket)
	if err != nil {
		return err
	}

	// Token verification and identity resolution.
	verifier := auth.NewJWTVerifier(cfg.Auth.TokenSecret)
	resolver := identity.NewResolver(store.Staff(), store.Customers(), store.YouthEmails())

	svcs := server.Services{
		Resolver:    resolver,
		Tiles:       tile.NewRegistry(store.Tiles(), mediaClient),
		Layouts:     layout.NewManager(store.Layouts(), store.Tiles()),
		YouthEmails: youthemail.NewRegistry(store.YouthEmails()),
		Media:       mediaClient,
	}

	// Prepare embedded React assets (strip "build/" prefix from fs paths).
	webAssets, err := fs.Sub(web.Assets, "build")
	if err != nil {
		return fmt.Errorf("web assets: %w", err)
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create HTTP server with all routes wired.
	srv := server.New(ctx, cfg, verifier, svcs, webAssets)

	// Start server in background goroutine.
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if startErr := srv.Start(ctx); startErr != nil {
			log.Error().Err(startErr).Msg("server error")
		}
	}()

	// Block until shutdown signal.
	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}

	log.Info().Msg("stopped")
	return nil
}
