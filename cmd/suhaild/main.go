package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/suhailre/suhail/internal/application/usecase"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/infrastructure/catalog"
	"github.com/suhailre/suhail/internal/infrastructure/chat"
	"github.com/suhailre/suhail/internal/infrastructure/config"
	"github.com/suhailre/suhail/internal/infrastructure/kafka"
	"github.com/suhailre/suhail/internal/infrastructure/messaging"
	grpcPresentation "github.com/suhailre/suhail/internal/presentation/grpc"
	"github.com/suhailre/suhail/internal/presentation/rest"
	"github.com/suhailre/suhail/internal/presentation/ws"
	pkgkafka "github.com/suhailre/suhail/pkg/kafka"
	"github.com/suhailre/suhail/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})

	logger.Info("starting suhail",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() { _ = shutdown(context.Background()) }()
		}
	}

	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: cfg.ServiceName})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }()

	instruments, err := usecase.NewInstruments(meterProvider.Meter("suhail"))
	if err != nil {
		logger.Error("failed to create instruments", "error", err)
		os.Exit(1)
	}

	// Reference data.
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		logger.Error("failed to load catalog", "file", cfg.CatalogFile, "error", err)
		os.Exit(1)
	}
	if err := cat.Validate(); err != nil {
		// Missing joins are tolerated; engines fall back to defaults.
		logger.Warn("catalog has incomplete joins", "error", err)
	}

	// Event publishing.
	var publisher port.EventPublisher
	if kcfg := (pkgkafka.Config{Brokers: cfg.Kafka.Brokers}); kcfg.Enabled() {
		producer := pkgkafka.NewProducer(kcfg)
		defer func() { _ = producer.Close() }()
		publisher = kafka.NewEventPublisher(producer, cfg.Kafka.Topic, logger)
		logger.Info("publishing events to kafka", "topic", cfg.Kafka.Topic)
	} else {
		publisher = messaging.NewLogEventPublisher(logger)
	}

	var completer port.ChatCompleter = chat.Unconfigured{}
	if cfg.Chat.Enabled() {
		completer = chat.NewOpenAICompleter(chat.Config{
			APIKey:      cfg.Chat.APIKey,
			BaseURL:     cfg.Chat.BaseURL,
			Model:       cfg.Chat.Model,
			Timeout:     cfg.Chat.Timeout,
			MaxTokens:   cfg.Chat.MaxTokens,
			Temperature: cfg.Chat.Temperature,
		})
	} else {
		logger.Warn("OPENAI_API_KEY not set, chat will answer with the fallback message")
	}

	set := usecase.NewSet(usecase.Dependencies{
		Catalog:      cat,
		Publisher:    publisher,
		Completer:    completer,
		Metrics:      instruments,
		Logger:       logger,
		HistoryLimit: cfg.Chat.HistoryLimit,
	})

	// gRPC server.
	grpcServer, err := grpcPresentation.NewServer(grpcPresentation.NewAdvisorHandler(set, logger), logger, grpcPresentation.Options{
		CertFile:   cfg.TLS.CertFile,
		KeyFile:    cfg.TLS.KeyFile,
		Reflection: cfg.GRPCReflection,
	})
	if err != nil {
		logger.Error("failed to create gRPC server", "error", err)
		os.Exit(1)
	}

	// HTTP server.
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metricsHandler)
	rest.NewHealthHandler(cat, logger).RegisterRoutes(mux)
	rest.NewHandler(set, logger).RegisterRoutes(mux)
	ws.NewChatHandler(set.Chat, logger).RegisterRoutes(mux)

	var limiter *rest.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = rest.NewRateLimiter(cfg.RateLimit)
	}

	httpServer := &http.Server{
		Addr: cfg.HTTPAddr(),
		Handler: rest.Chain(mux,
			rest.RecoverMiddleware(logger),
			rest.LoggingMiddleware(logger),
			rest.RateLimitMiddleware(limiter),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("suhail stopped")
}
