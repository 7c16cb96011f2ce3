package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"launchdash/internal/config"
	"launchdash/internal/dashboard"
	"launchdash/internal/dataset"
	"launchdash/internal/server"
)

func main() {
	cfg := config.Load()

	dashCfg, err := config.LoadDashboardConfig(cfg.DashboardConfigFile)
	if err != nil {
		log.Fatalf("Failed to load dashboard config: %v", err)
	}

	// The dataset is read once and never reloaded.
	ds, err := dataset.Load(cfg.DataFile)
	if err != nil {
		log.Fatalf("Failed to load launch dataset: %v", err)
	}
	log.Printf("Loaded %d launch records from %s (%d sites)", ds.Len(), cfg.DataFile, len(ds.Sites()))

	for _, site := range dashCfg.Sites {
		if !ds.HasSite(site.Value) {
			slog.Warn("dropdown site has no launch records", "site", site.Value)
		}
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(ds, dashboard.NewLayout(dashCfg))

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
