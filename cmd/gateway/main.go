// Package main is the entry point for the gateway server.
// It wires all dependencies together and starts the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/apilooter/gateway/internal/catalog"
	"github.com/apilooter/gateway/internal/config"
	"github.com/apilooter/gateway/internal/dispatch"
	"github.com/apilooter/gateway/internal/handler"
	"github.com/apilooter/gateway/internal/observability"
	"github.com/apilooter/gateway/internal/policy"
	"github.com/apilooter/gateway/internal/transport"
	"github.com/apilooter/gateway/model"
)

// Build-time variables set via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc1234"
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Step 1: Parse CLI flags.
	configPath := flag.String("config", "", "path to configuration file (optional)")
	flag.Parse()

	// Step 2: Load configuration.
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 1
	}

	// Step 3: Initialize telemetry (logger, tracer, metrics).
	observability.Version = version
	observability.Commit = commit

	logger, err := observability.NewLogger(cfg.Observability)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	tracingShutdown, err := observability.InitTracing(ctx, cfg.Observability.Tracing, "gateway", version)
	if err != nil {
		logger.Error("tracing initialization failed", zap.Error(err))
		return 1
	}

	var metrics *observability.Metrics
	if cfg.Observability.Metrics.Enabled {
		metrics = observability.InitMetrics(prometheus.DefaultRegisterer)
	}

	// Step 4: Load the catalog, validate, build registry.
	providers, err := loadCatalog(cfg.Catalog, logger)
	if err != nil {
		logger.Error("catalog loading failed", zap.Error(err))
		if metrics != nil {
			metrics.RecordCatalogLoad("error")
		}
		return 1
	}

	validator := catalog.NewValidator()
	report := validator.Validate(providers)
	for _, w := range report.Warnings {
		logger.Warn("catalog validation warning", zap.String("finding", w.String()))
	}
	if !report.OK() {
		for _, e := range report.Errors {
			logger.Error("catalog validation error", zap.String("finding", e.String()))
		}
		logger.Error("catalog validation failed", zap.Int("errors", len(report.Errors)))
		return 1
	}
	if metrics != nil {
		metrics.RecordCatalogLoad("ok")
		metrics.SetProvidersLoaded(float64(len(providers)))
		metrics.SetValidationFindings(len(report.Errors), len(report.Warnings))
	}

	registry := catalog.NewRegistry(providers)

	// Step 5: Derive the outbound domain allow-list from the catalog.
	domains := policy.NewDomain(providers)
	logger.Info("domain allow-list derived", zap.Strings("hosts", domains.Hosts()))

	// Step 6: Build the handler registry and dispatch engine.
	httpClient := &http.Client{Timeout: cfg.Dispatch.OutboundTimeout}
	handlers := handler.NewRegistry(httpClient)

	engineOpts := []dispatch.Option{
		dispatch.WithMaxParamLength(cfg.Dispatch.MaxParamLength),
	}
	if metrics != nil {
		engineOpts = append(engineOpts, dispatch.WithMetrics(metrics))
	}
	engine := dispatch.NewEngine(registry, handlers, domains, logger, engineOpts...)

	// Step 7: Build the per-client rate limiter.
	var limiter *policy.ClientLimiter
	if cfg.RateLimit.Enabled {
		limiter = policy.NewClientLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
	}

	// Step 8: Build HTTP router and server.
	router := transport.NewRouter(transport.Dependencies{
		Config:  cfg,
		Logger:  logger,
		Catalog: registry,
		Engine:  engine,
		Limiter: limiter,
		Metrics: metrics,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Step 9: Start HTTP server.
	logger.Info("server started",
		zap.Int("port", cfg.Server.Port),
		zap.String("version", version),
		zap.String("commit", commit),
		zap.Int("providers", registry.Len()),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		logger.Info("shutdown initiated")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		return 1
	}

	// Graceful shutdown sequence.
	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// Stop accepting new connections and drain in-flight requests.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	// Flush telemetry.
	if err := tracingShutdown(shutdownCtx); err != nil {
		logger.Error("tracing shutdown error", zap.Error(err))
	}

	logger.Info("shutdown complete")
	return 0
}

// loadCatalog returns the provider set for this deployment: YAML directories
// when configured, the built-in catalog otherwise.
func loadCatalog(cfg config.CatalogConfig, logger *zap.Logger) ([]model.Provider, error) {
	if len(cfg.Directories) == 0 {
		logger.Info("using built-in catalog")
		return catalog.Builtin(), nil
	}

	loader := catalog.NewLoader()
	providers, err := loader.LoadAll(cfg.Directories)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded",
		zap.Strings("directories", cfg.Directories),
		zap.Int("providers", len(providers)),
	)
	return providers, nil
}
