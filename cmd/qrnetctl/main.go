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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	metricsadapter "github.com/ericfisherdev/qrnetctl/internal/adapter/driven/metrics"
	"github.com/ericfisherdev/qrnetctl/internal/adapter/driven/netctl"
	"github.com/ericfisherdev/qrnetctl/internal/adapter/driven/wifiqr"
	httphandler "github.com/ericfisherdev/qrnetctl/internal/adapter/driving/http"
	"github.com/ericfisherdev/qrnetctl/internal/application"
	"github.com/ericfisherdev/qrnetctl/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"default_interface", cfg.DefaultInterface,
		"max_body_bytes", cfg.MaxBodyBytes,
		"log_level", cfg.LogLevel,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Metrics registry with process and runtime collectors.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metricsadapter.NewRecorder(reg)
	if err != nil {
		return err
	}

	// 4. Wire adapters and the provisioning service.
	svc := application.NewProvisionService(
		wifiqr.NewParser(),
		netctl.NewRenderer(),
		recorder,
		logger,
	)

	// 5. Create HTTP handler and register API routes.
	apiHandler := httphandler.NewHandler(svc, cfg.DefaultInterface, cfg.MaxBodyBytes, logger)
	handler := httphandler.NewServeMux(apiHandler, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 6. Wait for shutdown signal or a listener failure.
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	// 7. Graceful shutdown with 10s timeout to drain in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
