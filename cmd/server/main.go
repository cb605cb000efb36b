package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/mvilanova/intervals-mcp-server/internal/config"
	"github.com/mvilanova/intervals-mcp-server/internal/health"
	"github.com/mvilanova/intervals-mcp-server/internal/httpapi"
	"github.com/mvilanova/intervals-mcp-server/internal/httpx"
	"github.com/mvilanova/intervals-mcp-server/internal/logging"
	"github.com/mvilanova/intervals-mcp-server/internal/mcpx"
	otelx "github.com/mvilanova/intervals-mcp-server/internal/otel"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/factory"
)

func main() {
	ctx := context.Background()

	// Load configuration from .env file and environment
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	secureLog := logging.NewSecureLogger(slog.Default())
	secureLog.Info("Configuration loaded",
		"mode", cfg.Mode,
		"athlete_id", cfg.AthleteID,
		"api_key", cfg.APIKey,
		"base_url", cfg.IntervalsBaseURL,
	)

	// Initialize OpenTelemetry
	shutdown, err := otelx.InitOpenTelemetry(ctx, "intervals-mcp-server")
	if err != nil {
		slog.Error("Failed to initialize OpenTelemetry", "error", err)
		os.Exit(1)
	}
	defer shutdown(ctx)

	cache, redisClient := factory.NewCache(cfg)

	toolFactory := factory.NewFactory(cfg)
	registry := toolFactory.CreateAllTools(cache)

	if cfg.Mode == "stdio" {
		shim := mcpx.NewRegistry("intervals-icu", mcpx.WithLifespan(func(ctx context.Context) (func(context.Context) error, error) {
			slog.Info("MCP server starting")
			return func(context.Context) error {
				slog.Info("MCP server stopped")
				if redisClient != nil {
					return redisClient.Close()
				}
				return nil
			}, nil
		}))
		factory.BridgeToShim(registry, shim)

		// No host candidates here, so the binder falls through to the
		// built-in stdio server.
		if err := shim.Run(ctx); err != nil {
			slog.Error("MCP server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// HTTP mode: expose the tools plus health and metrics endpoints
	api := httpapi.NewServer(registry)

	handler := mux.NewRouter()
	handler.Use(
		httpx.OTelMiddleware(),
		httpx.Logger(),
		httpx.Recovery(),
	)

	healthChecker := health.NewHealthChecker(redisClient)
	handler.HandleFunc("/health", healthChecker.HealthHandler)
	handler.HandleFunc("/ready", healthChecker.ReadyHandler)

	// Metrics endpoint
	handler.Handle("/metrics", http.DefaultServeMux)

	handler.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "intervals-mcp-server")
	})

	handler.HandleFunc("/tools", api.ListToolsHandler).Methods(http.MethodGet)
	handler.HandleFunc("/tools/{name}", api.CallToolHandler).Methods(http.MethodPost)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting the server...", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exited")
}
