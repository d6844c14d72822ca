package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"video-player/internal/catalog"
	"video-player/internal/handlers"
	"video-player/internal/memory"
	"video-player/internal/metrics"
	"video-player/internal/session"
	"video-player/internal/startup"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the player over an HTTP JSON API",
		Long: "serve loads the catalog and exposes a single shared session over HTTP.\n" +
			"Prometheus metrics are served on a separate port unless METRICS_ENABLED=false.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), overrides)
		},
	}

	cmd.Flags().StringVarP(&overrides.Port, "port", "p", "", "API port (overrides PORT)")
	return cmd
}

// runServe runs until ctx is cancelled, SIGINT or SIGTERM is received, or
// one of the servers fails.
func runServe(ctx context.Context, o startup.Overrides) error {
	startTime := time.Now()

	config, err := startup.LoadConfig(o)
	if err != nil {
		return err
	}

	memLimit := memory.Configure()

	loadStart := time.Now()
	cat, err := catalog.Open(ctx, config.CatalogPath, config.CatalogFormat)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	startup.LogCatalogLoaded(config.CatalogPath, catalog.DetectFormat(config.CatalogPath, config.CatalogFormat), cat.Len(), time.Since(loadStart))

	sess := session.New(cat)
	startup.LogSessionCreated(sess.ID())

	h := handlers.New(sess)
	router := h.NewRouter(handlers.RouterConfig{
		LogHealthChecks: config.LogHealthChecks,
		RateLimit:       config.RateLimit,
	})
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var metricsSrv *http.Server
	var collector *metrics.Collector
	if config.MetricsEnabled {
		metrics.InitializeMetrics()
		collector = metrics.NewCollector(sess, config.StatsInterval)

		mux := http.NewServeMux()
		mux.Handle("/metrics", h.MetricsHandler())
		metricsSrv = &http.Server{
			Addr:              ":" + config.MetricsPort,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return listen(srv, "API server")
	})
	if metricsSrv != nil {
		g.Go(func() error {
			return listen(metricsSrv, "metrics server")
		})
		collector.Start()
	}

	g.Go(func() error {
		reason := "context cancellation"
		select {
		case sig := <-sigChan:
			reason = sig.String()
		case <-gctx.Done():
		}
		startup.LogShutdownInitiated(reason)
		return shutdown(srv, metricsSrv, collector)
	})

	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		MemoryLimit:     memLimit.String(),
		StartupDuration: time.Since(startTime),
	})

	return g.Wait()
}

func listen(srv *http.Server, name string) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func shutdown(srv, metricsSrv *http.Server, collector *metrics.Collector) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error

	startup.LogShutdownStep("Shutting down API server")
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("API server shutdown: %w", err))
	} else {
		startup.LogShutdownStepComplete("API server stopped")
	}

	if collector != nil {
		startup.LogShutdownStep("Stopping metrics collector")
		collector.Stop()
		startup.LogShutdownStepComplete("Metrics collector stopped")
	}

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	if len(errs) == 0 {
		startup.LogShutdownComplete()
	}
	return errors.Join(errs...)
}
