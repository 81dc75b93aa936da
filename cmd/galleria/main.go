package main

import (
	"context"
	"log"
	"os"

	"github.com/akolenda/galleria/internal/catalog"
	"github.com/akolenda/galleria/internal/config"
	"github.com/akolenda/galleria/internal/db"
	"github.com/akolenda/galleria/internal/favorites"
	"github.com/akolenda/galleria/internal/images"
	"github.com/akolenda/galleria/internal/logging"
	"github.com/akolenda/galleria/internal/store"
	"github.com/akolenda/galleria/internal/web"
	"github.com/akolenda/galleria/internal/web/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	favStore := store.NewFavoriteStore(database)
	favs := favorites.New(context.Background(), favStore, logger)

	client := catalog.NewClient(cfg.APIBaseURL, cfg.APIRate)
	resolver := images.NewResolver(os.DirFS(cfg.ImageDir))

	server := web.NewServer(client, favs, resolver, templates.FS, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
