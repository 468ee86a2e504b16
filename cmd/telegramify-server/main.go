package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	telegramify "github.com/riverfjs/telegramify-html"
	"github.com/riverfjs/telegramify-html/internal/api"
	"github.com/riverfjs/telegramify-html/internal/bus"
	"github.com/riverfjs/telegramify-html/internal/config"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		slog.Debug(fmt.Sprintf(format, args...))
	}))

	slog.Info("telegramify starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	renderCfg, err := cfg.ResolveRenderConfig()
	if err != nil {
		slog.Error("failed to load render config", "path", cfg.RenderConfigPath, "error", err)
		os.Exit(1)
	}
	telegramify.SetLogger(slog.Default().With("component", "telegramify"))

	// NATS worker (optional)
	var busClient *bus.Client
	if cfg.NatsURL != "" {
		busClient, err = bus.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		slog.Info("NATS connected", "url", cfg.NatsURL)

		worker := bus.NewWorker(busClient, cfg.ResultSubject, renderCfg, slog.Default())
		if err := busClient.Subscribe(cfg.RequestSubject, worker.Handle); err != nil {
			slog.Error("failed to subscribe to render requests", "error", err)
			busClient.Close()
			os.Exit(1)
		}
	} else {
		slog.Warn("NATS_URL not set, running HTTP only")
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, renderCfg, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			cancel()
		}
	}()

	slog.Info("telegramify ready", "port", cfg.Port, "max_length", renderCfg.MaxLength)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown failed", "error", err)
	}
	if busClient != nil {
		// Drain closes the connection when it finishes
		if err := busClient.Drain(shutdownCtx); err != nil {
			slog.Warn("NATS drain failed", "error", err)
		}
	}
	cancel()
	slog.Info("telegramify stopped")
}

func setupLogging(level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
