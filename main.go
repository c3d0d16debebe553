package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auction "auction-ranking/internal/auctionService"
	"auction-ranking/internal/config"
	"auction-ranking/internal/lifecycle"
	"auction-ranking/internal/live"
	model "auction-ranking/internal/models"
	"auction-ranking/internal/repository"
	"auction-ranking/internal/server"
	"auction-ranking/utils"

	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := utils.SetLogLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}

	repo, err := openRepository(cfg)
	if err != nil {
		utils.Fatal("failed to open repository", map[string]any{"driver": cfg.DBDriver, "error": err.Error()})
	}

	hub := live.NewHub()
	auctionSvc := auction.NewAuctionService(repo, hub)

	if cfg.SeedDemoData {
		if err := seedDemoData(auctionSvc); err != nil {
			utils.Warn("demo data not seeded", map[string]any{"error": err.Error()})
		}
	}

	scheduler, err := lifecycle.NewScheduler(auctionSvc, cfg.StatusSchedule)
	if err != nil {
		utils.Fatal("failed to schedule status refresh", map[string]any{"error": err.Error()})
	}
	if _, err := scheduler.RunOnce(); err != nil {
		utils.Warn("initial status refresh failed", map[string]any{"error": err.Error()})
	}
	scheduler.Start()

	router := server.SetupRouter(auctionSvc, hub, server.NewBidRateLimiter(cfg.BidRateLimit, cfg.BidRateBurst))
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.Info("Starting auction server", map[string]any{"addr": srv.Addr, "db_driver": cfg.DBDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("Shutting down auction server", nil)

	<-scheduler.Stop().Done()
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}
}

// openRepository returns the in-memory store or a gorm-backed SQL store
func openRepository(cfg config.Config) (repository.AuctionDB, error) {
	if cfg.DBDriver == config.DriverMemory {
		return repository.NewMemoryRepo(), nil
	}

	db, err := repository.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	if err := repository.Migrate(db); err != nil {
		return nil, err
	}
	return repository.NewGormRepo(db)
}

// seedDemoData adds a live auction with a few bids and a scheduled one
func seedDemoData(svc *auction.AuctionService) error {
	now := time.Now().UTC()

	office, err := svc.CreateAuction(model.NewAuction{
		Name:         "Office furniture",
		Description:  "120 ergonomic chairs and 60 desks",
		ReservePrice: decimal.NewFromInt(50000),
		StartTime:    now.Add(-5 * time.Minute),
		EndTime:      now.Add(2 * time.Hour),
		CreatedBy:    "demo-buyer",
	})
	if err != nil {
		return err
	}

	bids := []struct {
		vendorID string
		amount   string
	}{
		{"vendor-acme", "48500.00"},
		{"vendor-globex", "47250.50"},
		{"vendor-initech", "49900.00"},
		{"vendor-acme", "46800.00"},
	}
	for _, b := range bids {
		if _, err := svc.PlaceBid(office.ID, b.vendorID, decimal.RequireFromString(b.amount)); err != nil {
			return err
		}
	}

	_, err = svc.CreateAuction(model.NewAuction{
		Name:         "Laptop refresh",
		Description:  "200 developer laptops",
		ReservePrice: decimal.NewFromInt(300000),
		StartTime:    now.Add(time.Hour),
		EndTime:      now.Add(4 * time.Hour),
		CreatedBy:    "demo-buyer",
	})
	return err
}
