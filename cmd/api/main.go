package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"

	"github.com/octobees/linkedin-extractor/api/internal/config"
	"github.com/octobees/linkedin-extractor/api/internal/database"
	"github.com/octobees/linkedin-extractor/api/internal/exa"
	"github.com/octobees/linkedin-extractor/api/internal/handler"
	"github.com/octobees/linkedin-extractor/api/internal/hunter"
	"github.com/octobees/linkedin-extractor/api/internal/repository"
	"github.com/octobees/linkedin-extractor/api/internal/router"
	"github.com/octobees/linkedin-extractor/api/internal/scheduler"
	"github.com/octobees/linkedin-extractor/api/internal/service"
	"github.com/octobees/linkedin-extractor/api/internal/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := sheets.NewClient(ctx, cfg.SpreadsheetID, cfg.GoogleCredentials)
	if err != nil {
		log.Fatalf("failed to create sheets client: %v", err)
	}

	logs := service.LogStore(store)
	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		defer pool.Close()
		logs = service.FanoutLogs(store, repository.NewPGXExtractionLogsRepository(pool))
	}

	searcher := exa.NewClient(nil, cfg.ExaBaseURL, cfg.ExaAPIKey)

	var enricher service.EmailFinder
	if cfg.HunterAPIKey != "" {
		enricher = hunter.NewClient(nil, cfg.HunterBaseURL, cfg.HunterAPIKey)
	}

	extractor := service.NewExtractor(searcher, enricher, store, logs)

	webhookHandler := handler.NewWebhookHandler(extractor, cfg.WebhookSecret)
	statusHandler := handler.NewStatusHandler(
		cfg.SpreadsheetID,
		cfg.ExaAPIKey != "",
		cfg.HunterAPIKey != "",
		cfg.GoogleCredentials != "",
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, cfg, router.Handlers{
		Status:  statusHandler,
		Webhook: webhookHandler,
	})

	var updater *scheduler.Updater
	if cfg.EnableCron {
		updater = scheduler.New(
			extractor.ForChannel(service.ChannelScheduler),
			cfg.UpdateSchedule,
			cfg.UpdateDelay,
		)
		if err := updater.Start(); err != nil {
			log.Fatalf("failed to start profile refresh schedule: %v", err)
		}
		log.Printf("profile refresh scheduled at %q", cfg.UpdateSchedule)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	if updater != nil {
		updater.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
