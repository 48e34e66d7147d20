package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/GildedTros_Go/internal/aging"
	"github.com/osse101/GildedTros_Go/internal/catalog"
	"github.com/osse101/GildedTros_Go/internal/config"
	"github.com/osse101/GildedTros_Go/internal/domain"
	"github.com/osse101/GildedTros_Go/internal/inventory"
	"github.com/osse101/GildedTros_Go/internal/metrics"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initLogger(cfg)

	slog.Info("Starting Gilded Tros",
		"environment", cfg.Environment,
		"days", cfg.Days,
		"stock", cfg.StockPath)

	cat, err := catalog.LoadCatalog(ctx, cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	stock, err := inventory.LoadStock(cfg.StockPath)
	if err != nil {
		return err
	}

	svc := inventory.NewService(aging.NewDispatcher(cat), metrics.NewRecorder())
	if err := svc.RegisterAll(ctx, stock); err != nil {
		// Rejected items are reported and left off the shelf
		slog.Warn("Some items were rejected", "error", err)
	}

	items := svc.Items()
	initial := make([]domain.State, len(items))
	for i, item := range items {
		initial[i] = item.State()
	}

	reports := make([]*inventory.Report, 0, cfg.Days)
	for day := 0; day < cfg.Days; day++ {
		report, err := svc.UpdateQuality(ctx)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	if err := writeReport(os.Stdout, reports, items, initial); err != nil {
		return err
	}

	if err := svc.Revalidate(ctx); err != nil {
		slog.Warn("Revalidation found items outside their bounds", "error", err)
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		slog.Info("Metrics written", "path", cfg.MetricsTextfile)
	}
	return nil
}
