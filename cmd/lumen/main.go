// Lumen generation engine server: provides the HTTP API, runs the order
// worker, and streams generation events.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lumenlabs/lumen/ent/generationorder"
	"github.com/lumenlabs/lumen/pkg/api"
	"github.com/lumenlabs/lumen/pkg/config"
	"github.com/lumenlabs/lumen/pkg/database"
	"github.com/lumenlabs/lumen/pkg/events"
	"github.com/lumenlabs/lumen/pkg/leases"
	"github.com/lumenlabs/lumen/pkg/llm"
	"github.com/lumenlabs/lumen/pkg/queue"
	"github.com/lumenlabs/lumen/pkg/services"
	"github.com/lumenlabs/lumen/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting lumen",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs pending migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Select the LLM provider
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// the first RPC call.
	var provider llm.Provider
	switch cfg.Provider.Mode {
	case config.ProviderModeGRPC:
		grpcProvider, err := llm.NewGRPCProvider(cfg.Provider)
		if err != nil {
			slog.Error("Failed to initialize provider", "addr", cfg.Provider.Addr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := grpcProvider.Close(); err != nil {
				slog.Error("Error closing provider connection", "error", err)
			}
		}()
		provider = grpcProvider
	default:
		provider = llm.NewStubProvider(cfg.Provider.Model)
	}
	slog.Info("Provider initialized", "mode", cfg.Provider.Mode, "name", provider.Name())

	// 4. Domain services
	llmExecutor := llm.NewExecutor(dbClient.Client)
	settings := services.NewSettingsService(dbClient.Client)
	queries := services.NewQueryService(dbClient.Client, provider, llmExecutor, settings)
	articles := services.NewArticleService(dbClient.Client)
	orders := services.NewOrderService(dbClient.Client, articles)
	eventService := services.NewEventService(dbClient.Client)
	mail := services.NewMailService(dbClient.Client, orders)
	slog.Info("Services initialized")

	// 5. Streaming infrastructure: transactional publisher, NOTIFY listener
	// on a dedicated pgx connection, in-process broker for SSE fan-out.
	publisher := events.NewPublisher(dbClient.DB())
	broker := events.NewBroker()
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), broker)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	slog.Info("Streaming infrastructure initialized")

	// 6. Worker with its per-kind executors
	leaseMgr := leases.NewManager(dbClient.Client, cfg.Queue.LeaseTTL)
	searchExecutor := queue.NewSearchExecutor(
		provider, llmExecutor, settings, queries, articles, orders, publisher, leaseMgr)
	mailExecutor := queue.NewMailExecutor(
		provider, llmExecutor, settings, mail, orders, publisher)

	worker := queue.NewWorker(dbClient.Client, cfg.Queue, map[generationorder.Kind]queue.OrderExecutor{
		generationorder.KindQueryFull:             searchExecutor,
		generationorder.KindIntentRegen:           searchExecutor,
		generationorder.KindArticleRegenKeepTitle: searchExecutor,
		generationorder.KindMailReply:             mailExecutor,
	}, leaseMgr, orders)
	worker.Start(ctx)

	// 7. HTTP server
	server := api.NewServer(dbClient, queries, orders, eventService, mail, broker, worker)
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Lumen started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop the HTTP surface first so no new orders
	// arrive, then let the worker drain its active order.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	worker.Stop()
	slog.Info("Shutdown complete")
}
