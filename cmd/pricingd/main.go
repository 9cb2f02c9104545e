package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkgkafka "github.com/Smannenbach/Loan-Daddy-LOS-sub000/pkg/kafka"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/pkg/observability"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/application/usecase"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/service"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/infrastructure/adapter"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/infrastructure/catalog"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/infrastructure/config"
	syncKafka "github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/infrastructure/kafka"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/infrastructure/scheduler"
	grpcPresentation "github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/presentation/grpc"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})
	slog.SetDefault(logger)

	logger.Info("starting pricing-engine",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics exporter.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck // best-effort meter shutdown

	// Seed the in-memory rate catalog, optionally overlaid from a YAML
	// rate sheet.
	now := time.Now().UTC()
	seed := catalog.DefaultSeed(now)
	if cfg.RatesFile != "" {
		overrides, loadErr := catalog.LoadRatesFile(cfg.RatesFile, now)
		if loadErr != nil {
			logger.Error("failed to load rates file", "path", cfg.RatesFile, "error", loadErr)
			os.Exit(1)
		}
		seed = catalog.MergeSnapshots(seed, overrides)
		logger.Info("rate sheet overrides applied", "path", cfg.RatesFile)
	}

	rateCatalog := catalog.New(seed, logger)
	for _, name := range cfg.RateProviders {
		provider := adapter.NewRateProviderAdapter(adapter.DefaultRateProviderConfig(name), nil, seed)
		rateCatalog.RegisterProvider(provider)
	}
	logger.Info("rate catalog ready", "offers", rateCatalog.OfferCount())

	// Wire infrastructure adapters.
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := syncKafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	// Wire use cases.
	pricingUC := usecase.NewGetPricingUseCase(
		rateCatalog,
		service.NewEligibilityFilter(),
		service.NewCostRanker(),
		publisher,
		logger,
	)
	ratesUC := usecase.NewGetRatesByLenderUseCase(rateCatalog)
	amortizeUC := usecase.NewAmortizeUseCase()
	feesUC := usecase.NewCalculateFeesUseCase(service.NewFeeEngine())
	ratiosUC := usecase.NewCalculateRatiosUseCase(service.NewRatioCalculator())
	syncUC := usecase.NewSyncRatesUseCase(rateCatalog, publisher, logger)

	// Scheduled provider refresh.
	refresher := scheduler.New(syncUC, cfg.RateProviders, logger)
	if cfg.SyncCron != "" {
		if regErr := refresher.Register(cfg.SyncCron); regErr != nil {
			logger.Error("invalid sync cron spec", "spec", cfg.SyncCron, "error", regErr)
			os.Exit(1)
		}
		refresher.Start()
		defer refresher.Stop()
	}

	// gRPC server.
	handler := grpcPresentation.NewPricingHandler(pricingUC, ratesUC, amortizeUC, feesUC, ratiosUC, syncUC,
		logger)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("/metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("pricing-engine stopped")
}
