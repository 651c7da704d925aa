package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/api"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/config"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/service"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/yahoo"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// One store file per portfolio under the data directory
	stores := repository.NewStoreManager(cfg.Database.Dir)
	defer stores.CloseAll()

	log.Info().Str("dir", cfg.Database.Dir).Msg("Using portfolio data directory")

	yahooClient := yahoo.NewFinanceClient()

	// Create services
	systemService := service.NewSystemService(cfg.Database.Dir)
	symbolService := service.NewSymbolService(yahooClient)
	priceService := service.NewPriceService(yahooClient)
	portfolioService := service.NewPortfolioService(stores, priceService)
	transactionService := service.NewTransactionService(stores, symbolService, priceService)
	historyService := service.NewHistoryService(stores, portfolioService)

	// Scheduled performance snapshots
	scheduler := cron.New()
	if cfg.Snapshot.Enabled {
		_, err := scheduler.AddFunc(cfg.Snapshot.Schedule, func() {
			if err := historyService.SnapshotAll(context.Background()); err != nil {
				log.Error().Err(err).Msg("Scheduled performance snapshot failed")
			}
		})
		if err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.Snapshot.Schedule).Msg("Invalid snapshot schedule")
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Info().Str("schedule", cfg.Snapshot.Schedule).Msg("Performance snapshot job scheduled")
	}

	// Create router
	router := api.NewRouter(systemService, portfolioService, transactionService, historyService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
