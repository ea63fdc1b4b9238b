package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hijamacare/site-engine/internal/api/router"
	"github.com/hijamacare/site-engine/internal/app/bootstrap"
	appconfig "github.com/hijamacare/site-engine/internal/config"
	"github.com/hijamacare/site-engine/internal/http/handlers"
	"github.com/hijamacare/site-engine/pkg/logging"
)

func main() {
	// Load .env in development; in deployed environments the variables
	// come from the platform.
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.NewWithFormat(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting site-engine API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Metrics registry
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize runtime dependencies
	ctx := context.Background()
	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	if redisClient != nil {
		defer redisClient.Close()
	}

	bookingCfg := bootstrap.BuildBookingConfig(cfg)
	pipeline := bootstrap.BuildPipeline(cfg, logger, promRegistry)
	registry := bootstrap.BuildRegistry(logger, promRegistry, time.Now)
	store := bootstrap.BuildContentStore(cfg, logger)
	renderCache := bootstrap.BuildRenderCache(redisClient, cfg, logger, promRegistry)

	// Initialize handlers
	pagesHandler := handlers.NewPagesHandler(store, registry, renderCache, logger)
	bookingHandler := handlers.NewBookingHandler(bookingCfg, pipeline, logger, time.Now)
	contactHandler := handlers.NewContactHandler(bookingCfg, pipeline, logger)

	// Setup router
	r := router.New(&router.Config{
		Logger:             logger,
		PagesHandler:       pagesHandler,
		BookingHandler:     bookingHandler,
		ContactHandler:     contactHandler,
		MetricsHandler:     promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
