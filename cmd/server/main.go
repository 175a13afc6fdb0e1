package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"symptomchecker/internal/analyzer"
	"symptomchecker/internal/config"
	"symptomchecker/internal/llm"
	"symptomchecker/internal/server"
	"symptomchecker/internal/store"
)

func main() {
	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var queryLog store.Store
	if cfg.Database.Enabled {
		db, err := store.Open(cfg.Database.Path)
		if err != nil {
			log.Fatalf("failed to open query log: %v", err)
		}
		defer db.Close()
		queryLog = db

		if cfg.Database.RetentionDays > 0 {
			go runRetentionSweep(db, time.Duration(cfg.Database.RetentionDays)*24*time.Hour)
		}
	} else {
		queryLog = store.Disabled{}
		slog.Info("query log disabled")
	}

	provider, err := llm.NewOpenAI(&cfg.Groq)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	a := analyzer.New(provider, cfg.Analysis)

	srv := server.New(*cfg, a, queryLog)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "model", cfg.Groq.Model)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// runRetentionSweep deletes query records older than the retention window,
// once at startup and then daily.
func runRetentionSweep(queryLog store.Store, age time.Duration) {
	sweep := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		deleted, err := queryLog.DeleteOlderThan(ctx, age)
		if err != nil {
			slog.Error("retention sweep failed", "error", err)
			return
		}
		if deleted > 0 {
			slog.Info("retention sweep removed old queries", "deleted", deleted)
		}
	}

	sweep()
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		sweep()
	}
}
