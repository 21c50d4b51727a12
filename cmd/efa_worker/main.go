package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/campusfunds/event_funds_app/internal/amqp"
	"github.com/campusfunds/event_funds_app/internal/core/services"
	"github.com/campusfunds/event_funds_app/internal/repositories/database/pgsql"
	"github.com/campusfunds/event_funds_app/internal/worker"
	"github.com/campusfunds/event_funds_app/pkg/config"
	"github.com/campusfunds/event_funds_app/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL must be set for the recompute worker")
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer amqpClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(repos, cfg.CacheTTL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := worker.NewRecomputeWorker(amqpClient, container.Fund, logger)
	logger.Info("Recompute worker starting", slog.String("queue", cfg.AMQPQueue))
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("Worker stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Recompute worker stopped")
}
