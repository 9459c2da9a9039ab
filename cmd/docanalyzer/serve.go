package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/kirillkom/document-analyzer/internal/adapters/http"
	"github.com/kirillkom/document-analyzer/internal/bootstrap"
	"github.com/kirillkom/document-analyzer/internal/config"
	"github.com/kirillkom/document-analyzer/internal/observability/logging"
)

const (
	transportStdio = "stdio"
	transportHTTP  = "http"
)

func newServeCmd() *cobra.Command {
	var transport string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio or HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("transport") {
				cfg.MCPTransport = transport
			}
			if cfg.MCPTransport != transportStdio && cfg.MCPTransport != transportHTTP {
				return fmt.Errorf("unknown transport %q: want %s or %s", cfg.MCPTransport, transportStdio, transportHTTP)
			}

			// stdout carries the protocol on stdio, so logs always go to stderr.
			logger := logging.NewJSONLogger(cfg.ServiceName, cfg.LogLevel, os.Stderr)
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := bootstrap.New(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}
			defer app.Close()

			if cfg.MCPTransport == transportStdio {
				logger.Info("mcp_stdio_started")
				return app.MCP.ServeStdio(ctx, os.Stdin, os.Stdout)
			}
			return serveHTTP(ctx, app)
		},
	}
	cmd.Flags().StringVar(&transport, "transport", transportStdio, "MCP transport: stdio or http")
	return cmd
}

func serveHTTP(ctx context.Context, app *bootstrap.App) error {
	cfg := app.Config
	router := httpadapter.NewRouter(cfg, app.Catalog, app.Analyzer,
		httpadapter.WithLogger(app.Logger),
		httpadapter.WithMetrics(app.Metrics),
		httpadapter.WithMCPHandler(app.MCP.HTTPHandler(cfg.MCPEndpointPath)),
	)
	handler, err := router.Handler()
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("http_listening", "addr", server.Addr, "mcp_path", cfg.MCPEndpointPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	app.Logger.Info("http_stopped")
	return nil
}
