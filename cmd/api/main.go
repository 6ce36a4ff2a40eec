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

	"github.com/dermvoice/backend/internal/api/router"
	"github.com/dermvoice/backend/internal/appointments"
	"github.com/dermvoice/backend/internal/calllog"
	appconfig "github.com/dermvoice/backend/internal/config"
	"github.com/dermvoice/backend/internal/gsuite"
	"github.com/dermvoice/backend/internal/http/handlers"
	"github.com/dermvoice/backend/internal/observability/metrics"
	"github.com/dermvoice/backend/internal/schedule"
	"github.com/dermvoice/backend/internal/sheetstore"
	"github.com/dermvoice/backend/pkg/logging"
)

func main() {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting derm voice backend",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Authorize the Google clients once at startup and pass them down.
	clients, err := gsuite.NewClients(context.Background(), cfg.GoogleCredentialsFile)
	if err != nil {
		logger.Error("failed to create Google clients", "error", err)
		os.Exit(1)
	}

	store := sheetstore.New(clients.Sheets)
	events, err := schedule.NewEventCreator(clients.Calendar, cfg.AppointmentsCalendarID, cfg.Timezone, logger)
	if err != nil {
		logger.Error("failed to create calendar event creator", "error", err)
		os.Exit(1)
	}

	metricsHandler, bookingMetrics := setupMetrics()

	slots := appointments.NewService(store, events, cfg.AppointmentsSheetID, bookingMetrics, logger)
	calls := calllog.NewService(store, cfg.CallsSheetID, bookingMetrics, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		Appointments:       handlers.NewAppointmentsHandler(slots, calls, logger),
		CallLog:            handlers.NewCallLogHandler(calls, logger),
		MetricsHandler:     metricsHandler,
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

func setupMetrics() (http.Handler, *metrics.BookingMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), metrics.NewBookingMetrics(reg)
}
