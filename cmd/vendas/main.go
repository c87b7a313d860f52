package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"vendas/internal/amqp"
	"vendas/internal/cli"
	apphttp "vendas/internal/http"
	"vendas/internal/ledger"
	"vendas/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	store, cleanup := cli.InitStore(logger, cfg)
	defer func() {
		if err := cleanup(); err != nil {
			logger.Error("Store cleanup failed", "error", err)
		}
	}()

	led := ledger.New(store)
	if err := led.Load(context.Background()); err != nil {
		logger.Error("Failed to load ledger", "error", err)
		os.Exit(1)
	}

	// Event publishing is optional: without a broker the dashboard still
	// records sales locally.
	var publisher services.EventPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			publisher = client
			logger.Info("Initialized AMQP client",
				"exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	svc := services.NewSalesService(led, publisher)
	defer svc.Close()

	srv := apphttp.NewServer(":"+cfg.Port, svc, led, store)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := cli.SignalContext()
	defer cancel()

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting vendas server",
		"port", cfg.Port, "backend", cfg.SnapshotBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	slog.Info("Server stopped gracefully")
}
