// Package main is the entry point for the SkyRoute records console.
// It wires the same services as the API server and hands them to the
// interactive shell on stdin/stdout.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skyroute/skyroute/internal/config"
	"github.com/skyroute/skyroute/internal/console"
	"github.com/skyroute/skyroute/internal/repo"
	"github.com/skyroute/skyroute/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// The console logs to stderr so structured output never interleaves
	// with the menus on stdout.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	customerRepo := repo.NewCustomerRepo(pool)
	destinationRepo := repo.NewDestinationRepo(pool)
	saleRepo := repo.NewSaleRepo(pool)

	sh := console.New(
		os.Stdin,
		os.Stdout,
		service.NewCustomerService(customerRepo),
		service.NewDestinationService(destinationRepo),
		service.NewSaleService(saleRepo, customerRepo, destinationRepo),
	)
	sh.Run(ctx)
}
