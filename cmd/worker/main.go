package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kirillkom/document-analyzer/internal/bootstrap"
	"github.com/kirillkom/document-analyzer/internal/config"
	"github.com/kirillkom/document-analyzer/internal/core/domain"
	"github.com/kirillkom/document-analyzer/internal/core/usecase"
	"github.com/kirillkom/document-analyzer/internal/observability/logging"
	"github.com/kirillkom/document-analyzer/internal/observability/metrics"
)

const workerService = "document-analyzer-worker"

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger(workerService, cfg.LogLevel, os.Stdout)
	slog.SetDefault(logger)

	if cfg.NATSURL == "" {
		logger.Error("worker_config_invalid", "error", "NATS_URL is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue, err := bootstrap.ConnectQueue(cfg, logger)
	if err != nil {
		logger.Error("worker_bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer queue.Close()

	workerMetrics := metrics.NewWorkerMetrics(workerService)
	metricsServer := &http.Server{
		Addr:              ":" + cfg.WorkerMetricsPort,
		Handler:           workerMetrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("worker_metrics_listening", "addr", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("worker_metrics_server_failed", "error", err)
		}
	}()

	processUC := usecase.NewProcessDocumentUseCase(workerService, cfg.KeywordLimit, workerMetrics, logger)

	logger.Info("worker_subscribed", "subject", cfg.NATSSubject)
	err = queue.SubscribeDocumentAdded(ctx, func(handlerCtx context.Context, doc domain.Document) error {
		processCtx, cancel := context.WithTimeout(handlerCtx, 30*time.Second)
		defer cancel()
		_, err := processUC.Process(processCtx, doc)
		return err
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(shutdownCtx)

	if err != nil {
		logger.Error("worker_subscribe_failed", "error", err)
		os.Exit(1)
	}
	logger.Info("worker_stopped")
}
