package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"vendas/internal/amqp"
	"vendas/internal/cli"
	"vendas/internal/ledger"
	gsheet "vendas/internal/sheets/google"
	"vendas/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	if !cfg.ExportEnabled() {
		logger.Error("Export disabled: both AMQP_URL and GOOGLE_SPREADSHEET_ID are required for the worker")
		os.Exit(1)
	}

	store, cleanup := cli.InitStore(logger, cfg)
	defer func() {
		if err := cleanup(); err != nil {
			logger.Error("Store cleanup failed", "error", err)
		}
	}()

	ctx, cancel := cli.SignalContext()
	defer cancel()

	sheetsClient, err := gsheet.NewFromEnv(ctx)
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", "error", err)
		os.Exit(1)
	}
	logger.Info("Google Sheets client initialized",
		"spreadsheet_id", cfg.GoogleSpreadsheetID, "sheet", cfg.GoogleSheetName)

	led := ledger.New(store)
	exportWorker := worker.NewExportWorker(led, sheetsClient, sheetsClient, sheetsClient)

	// Catch up on anything recorded while the worker was down.
	if err := exportWorker.Reconcile(ctx); err != nil {
		logger.Error("Startup reconcile failed", "error", err)
		// Keep running; the periodic pass retries.
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqp.ConsumeWithReconnect(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue,
			func(event *amqp.SaleEvent) error {
				return exportWorker.HandleEvent(ctx, event)
			})
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.ExportInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := exportWorker.Reconcile(ctx); err != nil {
					logger.Error("Periodic reconcile failed", "error", err)
				}
			}
		}
	})

	logger.Info("Worker started",
		"queue", cfg.AMQPQueue, "export_interval", cfg.ExportInterval.String())

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
