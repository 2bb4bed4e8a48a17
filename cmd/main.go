package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/afcrichmond/believe-api/internal/adapters/inbound/livews"
	"github.com/afcrichmond/believe-api/internal/adapters/inbound/rest"
	"github.com/afcrichmond/believe-api/internal/adapters/inbound/sse"
	"github.com/afcrichmond/believe-api/internal/adapters/outbound/delivery"
	"github.com/afcrichmond/believe-api/internal/config"
	"github.com/afcrichmond/believe-api/internal/core/hooks"
	"github.com/afcrichmond/believe-api/internal/events"
	"github.com/afcrichmond/believe-api/internal/store"
	"github.com/afcrichmond/believe-api/internal/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.LogLevel)
	telemetry.Infof("Starting believe-api")

	bus := events.NewBus()

	// ── Seed data ───────────────────────────────────────────────
	dataStore, err := store.New()
	if err != nil {
		telemetry.Errorf("Failed to load seed data: %v", err)
		os.Exit(1)
	}

	// ── Webhooks ────────────────────────────────────────────────
	registry := hooks.NewRegistry()

	deliveryStore, err := delivery.OpenStore(cfg.DeliveryStorePath)
	if err != nil {
		telemetry.Warnf("Delivery log disabled: %v", err)
	}

	dispatcher := delivery.NewDispatcher(registry, deliveryStore,
		cfg.DeliveryTimeout, cfg.DeliveryRatePerSec, cfg.DeliveryBurst)
	dispatcher.Attach(bus)

	// ── HTTP surface ────────────────────────────────────────────
	mux := http.NewServeMux()
	rest.NewHandler(dataStore, cfg.APIKey, registry, dispatcher, deliveryStore).RegisterRoutes(mux)
	sse.NewHandler(dataStore).RegisterRoutes(mux)
	livews.NewHandler(bus, cfg.DefaultHomeTeam, cfg.DefaultAwayTeam).RegisterRoutes(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:        addr,
		Handler:     mux,
		ReadTimeout: 30 * time.Second,
		// no WriteTimeout: live match streams and SSE outlive any fixed cap
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Errorf("HTTP server: %v", err)
			os.Exit(1)
		}
	}()
	telemetry.Infof("Listening on %q", addr)

	// ── Shutdown ────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	telemetry.Infof("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)

	if deliveryStore != nil {
		deliveryStore.Close()
	}

	telemetry.Infof("Shutdown complete  requests=%d  matches=%d/%d  events=%d  webhooks=%d/%d",
		telemetry.Metrics.APIRequests.Value(),
		telemetry.Metrics.MatchesCompleted.Value(),
		telemetry.Metrics.MatchesStarted.Value(),
		telemetry.Metrics.EventsStreamed.Value(),
		telemetry.Metrics.WebhooksDelivered.Value(),
		telemetry.Metrics.WebhookFailures.Value(),
	)
}
