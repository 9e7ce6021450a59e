package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/unclelab/sportevents/internal/catalog"
	"github.com/unclelab/sportevents/internal/config"
	"github.com/unclelab/sportevents/internal/events"
	"github.com/unclelab/sportevents/internal/migrations"
	"github.com/unclelab/sportevents/internal/server"
	"github.com/unclelab/sportevents/internal/storage"
	"github.com/unclelab/sportevents/internal/storage/memory"
	storemongo "github.com/unclelab/sportevents/internal/storage/mongo"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"server_mode", cfg.Server.Mode,
		"database_type", cfg.Database.Type,
		"catalog_dir", cfg.Catalog.Dir,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Initialize Storage
	var repo storage.EventRepository
	switch cfg.Database.Type {
	case "mongo":
		adapter, err := storemongo.NewAdapter(ctx, cfg.Database.URI, cfg.Database.Name, cfg.Database.Collection)
		if err != nil {
			slog.Error("Failed to initialize store", "error", err)
			os.Exit(1)
		}
		defer adapter.Close(context.Background())

		// 2.1. Ensure the unique eventId index exists
		if err := migrations.RunMigrations(adapter.Client(), cfg.Database.Name, cfg.Database.AutoMigrate); err != nil {
			slog.Error("Failed to run index migrations", "error", err)
			os.Exit(1)
		}
		repo = adapter
	case "memory":
		slog.Warn("Using in-memory store; events will not survive a restart")
		repo = memory.NewRepository()
	}

	// 3. Load the sports catalog
	sports, err := catalog.NewFromDir(cfg.Catalog.Dir)
	if err != nil {
		slog.Error("Failed to load sports catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Sports catalog loaded", "sports", sports.Names())

	// 4. Initialize the event service
	svc := events.NewService(repo, events.NewValidator(sports), cfg.Server.MaxBodySizeMB)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), repo, cfg.Server.Mode)
	svc.RegisterRoutes(srv.Engine)

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
