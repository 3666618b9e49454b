package main

import (
	"github.com/sirupsen/logrus"

	"github.com/scent-engine/backend/internal/api"
	"github.com/scent-engine/backend/internal/catalog"
	"github.com/scent-engine/backend/internal/config"
	"github.com/scent-engine/backend/internal/engine"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "scent-engine-api")

	entry.Info("Starting Scent Engine API Service")

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		entry.Fatalf("Failed to load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// 2. Catalog
	source := catalog.NewFileSource(cfg.CatalogPath)
	items, err := source.Load()
	if err != nil {
		entry.Fatalf("Failed to load catalog: %v", err)
	}

	// 3. Recommendation Engine (index built here, before serving)
	eng, err := engine.New(items, cfg.ResultCount, entry)
	if err != nil {
		entry.Fatalf("Failed to build catalog index: %v", err)
	}

	// 4. API Server
	server := api.NewServer(eng, source, entry)

	entry.Infof("Scent Engine API ready on port %s", cfg.Port)
	if err := server.Start(cfg.Port); err != nil {
		entry.Fatal(err)
	}
}
