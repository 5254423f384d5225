package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/globe/internal/catalog"
	"github.com/UnknownOlympus/globe/internal/config"
	"github.com/UnknownOlympus/globe/internal/geo"
	"github.com/UnknownOlympus/globe/internal/metrics"
	"github.com/UnknownOlympus/globe/internal/scene"
	"github.com/UnknownOlympus/globe/internal/service"
	"github.com/UnknownOlympus/globe/internal/session"
	"github.com/UnknownOlympus/globe/internal/starfield"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// debugEventsPerSecond caps the diagnostic projection and rotation log lines.
const debugEventsPerSecond = 5

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	cat, err := catalog.New(cfg.Cities)
	if err != nil {
		log.Fatalf("Failed to build city catalog: %v", err)
	}
	logger.InfoContext(ctx, "City catalog loaded", "cities", cat.Len())

	// Diagnostics from the projection and rotation math go to metrics and, sampled, to the log.
	observer := geo.MultiObserver{
		metrics.NewGeoObserver(appMetrics),
		geo.NewLogObserver(logger, debugEventsPerSecond),
	}

	globe := scene.NewGlobe(scene.Config{
		Radius:        cfg.Globe.Radius,
		MarkerOffset:  cfg.Globe.MarkerOffset,
		SpinPeriod:    cfg.Globe.SpinPeriod,
		FocusDuration: cfg.Globe.FocusDuration,
		ResetDuration: cfg.Globe.ResetDuration,
		ResumeDelay:   cfg.Globe.ResumeDelay,
		PulsePeriod:   scene.DefaultConfig().PulsePeriod,
		PulsePeak:     scene.DefaultConfig().PulsePeak,
	}, observer)

	globeService := service.NewGlobeService(
		logger,
		cat,
		session.New(cat, cfg.ResultLimit),
		globe,
		appMetrics,
		starfield.Config{Count: cfg.Stars.Count, Seed: cfg.Stars.Seed},
		cfg.FrameInterval,
	)
	logger.InfoContext(ctx, "Star field generated", "stars", len(globeService.Stars()))

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Start the monitoring server in a goroutine to allow main to listen for signals.
	go startMonitoringServer(ctx, logger, reg, globeService, cfg.Port)

	go globeService.Run(ctx)

	if len(cfg.Tour) > 0 {
		go service.NewTour(logger, globeService, cfg.Tour, cfg.TourInterval).Run(ctx)
	}

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// startMonitoringServer starts an HTTP server that provides health check and metrics endpoints.
// It listens on the specified port and logs the server's status and any errors encountered.
//
// Parameters:
// - ctx: A context.Context for managing cancellation and timeouts.
// - log: A logger for logging server events and errors.
// - reg: A registry with Prometheus collectors.
// - svc: The globe service, reported in the health check.
// - port: The port number on which the server will listen.
func startMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	svc *service.GlobeService,
	port int,
) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(writer http.ResponseWriter, _ *http.Request) {
		log.DebugContext(ctx, "Performing health checks...")
		state := svc.State()
		_, err := fmt.Fprintf(writer, "OK mode=%s\n", state.Globe.Mode)
		if err != nil {
			log.ErrorContext(ctx, "failed to write reply", "error", err)
		}

		log.DebugContext(ctx, "Health checks completed", "status", http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	log.InfoContext(ctx, "Starting monitoring server", "port", port)
	readTimeout := 5
	writeTimeout := 10
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(writeTimeout)*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "Monitoring server shutdown failed", "error", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "Monitoring server failed", "error", err)
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
