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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calyxhealth/frontdesk-ai/internal/api/router"
	"github.com/calyxhealth/frontdesk-ai/internal/compliance"
	appconfig "github.com/calyxhealth/frontdesk-ai/internal/config"
	"github.com/calyxhealth/frontdesk-ai/internal/fulfillment"
	"github.com/calyxhealth/frontdesk-ai/internal/http/handlers"
	"github.com/calyxhealth/frontdesk-ai/internal/observability/metrics"
	"github.com/calyxhealth/frontdesk-ai/internal/sheets"
	"github.com/calyxhealth/frontdesk-ai/pkg/logging"
)

func main() {
	// Load .env in development; ignore absence in production.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting frontdesk-ai fulfillment server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	reg := prometheus.NewRegistry()
	fulfillmentMetrics := metrics.NewFulfillmentMetrics(reg)

	reader, err := sheets.NewClient(context.Background(), sheets.ClientConfig{
		SpreadsheetID:   cfg.SpreadsheetID,
		CredentialsFile: cfg.GoogleCredentialsFile,
		APIKey:          cfg.GoogleAPIKey,
		Timeout:         cfg.SheetsTimeout,
	}, fulfillmentMetrics, logger)
	if err != nil {
		logger.Error("failed to create sheets gateway", "error", err)
		os.Exit(1)
	}

	dispatcher := fulfillment.NewRouter(fulfillment.RouterConfig{
		Reader:   reader,
		Helpline: cfg.HelplineNumber,
		Audit:    compliance.NewInteractionLog(logger),
		Metrics:  fulfillmentMetrics,
		Logger:   logger,
	})

	fulfillmentHandler := handlers.NewFulfillmentHandler(dispatcher, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		Fulfillment:        fulfillmentHandler,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
