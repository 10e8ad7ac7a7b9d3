// Package main - Entry point for the vendor comparison server
package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"vendor-tco/api"
	"vendor-tco/core/catalog"
	"vendor-tco/core/engine"
	"vendor-tco/core/factors"
	"vendor-tco/internal/config"
	"vendor-tco/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.LoadOrDefault(*cfgPath)
	config.Set(cfg)
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.InitializeDefault()
	}
	defer logging.Sync()

	cat, err := buildCatalog(cfg)
	if err != nil {
		logging.Error("failed to load vendor catalog", zap.Error(err))
		return
	}

	repo := factors.NewInMemoryRepository()
	eng := engine.New(repo, cat)
	orch := engine.NewOrchestrator(eng, cfg.Engine.Workers)

	server := api.NewServer(eng, orch, cat, version, cfg.Server.AllowedOrigins)

	logging.Info("vendor comparison server listening",
		zap.String("address", cfg.Server.Address),
		zap.String("version", version))

	if err := http.ListenAndServe(cfg.Server.Address, server); err != nil {
		logging.Error("server stopped", zap.Error(err))
	}
}

func buildCatalog(cfg *config.Config) (catalog.Catalog, error) {
	var cat *catalog.InMemoryCatalog
	if cfg.Catalog.UseBuiltin {
		cat = catalog.Builtin()
	} else {
		cat, _ = catalog.NewInMemoryCatalog(nil)
	}

	for _, path := range cfg.Catalog.Paths {
		loaded, err := catalog.LoadHCL(path)
		if err != nil {
			return nil, err
		}
		cat = cat.Merge(loaded)
	}
	return cat, nil
}
