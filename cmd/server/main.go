package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/logger"
	"storefront/internal/repository"
	"storefront/internal/repository/memory"
	"storefront/internal/repository/sqlite"
)

func main() {
	cfg, cfgPath, err := config.Load()
	if err != nil {
		log := logger.New("storefront", "info")
		log.Fatal().Err(err).Msg("load config")
	}

	log := logger.New("storefront", cfg.LogLevel)
	if cfgPath != "" {
		log.Info().Str("path", cfgPath).Msg("loaded config file")
	}

	store, err := openStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer store.Close()

	h := handler.New(store, log)
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.NewRouter(h),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("server listening")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("server stopped")
}

// openStore picks the storage backend from the config. The test backend is
// an in-memory SQLite database that vanishes on close.
func openStore(cfg *config.Config, log zerolog.Logger) (*repository.Store, error) {
	switch backend := cfg.Backend(); backend {
	case config.BackendTest:
		log.Info().Msg("using ephemeral sqlite store")
		return openSQLite(":memory:")
	case config.BackendSQLite:
		log.Info().Str("path", cfg.Database.Path).Msg("using persistent sqlite store")
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		return openSQLite(cfg.Database.Path)
	default:
		log.Info().Msg("using in-memory store")
		return memory.NewStore(), nil
	}
}

func openSQLite(path string) (*repository.Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.Seed(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return repository.NewStore(db.Users, db.Products, db.Orders, db.Close), nil
}
