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

	"hosted-checkout/config"
	httpHandler "hosted-checkout/internal/adapter/http/handler"
	"hosted-checkout/internal/adapter/http/middleware"
	pgStorage "hosted-checkout/internal/adapter/storage/postgres"
	redisStorage "hosted-checkout/internal/adapter/storage/redis"
	"hosted-checkout/internal/core/ports"
	"hosted-checkout/internal/metrics"
	"hosted-checkout/internal/service"
	"hosted-checkout/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("HCO_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Hosted Checkout")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if cfg.Database.AutoMigrate {
		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	var sink interface {
		ports.ForwardMetrics
		middleware.RequestObserver
	} = metrics.NoopSink{}
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		sink = metrics.NewPrometheusSink(reg, log)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	// Initialize repositories
	configRepo := pgStorage.NewCompanyConfigRepo(pool)
	deliveryRepo := pgStorage.NewDeliveryRepo(pool)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	forwarder := service.NewForwarder(
		configRepo,
		deliveryRepo,
		sigSvc,
		&http.Client{},
		log,
		service.ForwarderOptions{
			MaxAttempts:    cfg.Forwarder.MaxAttempts,
			BaseDelay:      cfg.Forwarder.BaseDelay,
			RequestTimeout: cfg.Forwarder.RequestTimeout,
			LockTTL:        cfg.Forwarder.LockTTL,
			SigningSecret:  cfg.Forwarder.SigningSecret,
		},
	).
		WithLocker(redisStorage.NewDeliveryLock(rdb)).
		WithMetrics(sink)

	configSvc := service.NewCompanyConfigManager(
		configRepo,
		sigSvc,
		cfg.Server.PublicBaseURL,
		cfg.Forwarder.SigningSecret,
		log,
	)

	var userTokens ports.UserTokenVerifier
	if cfg.Platform.UserTokenPublicKey != "" {
		verifier, err := service.NewJWTUserTokenVerifier(cfg.Platform.UserTokenPublicKey, cfg.Platform.AppID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load user token public key")
		}
		userTokens = verifier
	} else {
		log.Warn().Msg("platform.user_token_public_key not set, dashboard saves are checked by company header only")
	}

	var webhookVerifier ports.PlatformWebhookVerifier
	if cfg.Platform.WebhookSecret != "" {
		verifier, err := service.NewStandardWebhookVerifier(cfg.Platform.WebhookSecret)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load platform webhook secret")
		}
		webhookVerifier = verifier
	} else {
		log.Warn().Msg("platform.webhook_secret not set, /api/webhooks is disabled")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Forwarder:       forwarder,
		ConfigSvc:       configSvc,
		WebhookVerifier: webhookVerifier,
		PlatformEvents:  service.NewPlatformEventHandler(forwarder, log),
		UserTokens:      userTokens,
		RateLimitStore:  redisStorage.NewRateLimitStore(rdb),
		RateLimits: httpHandler.RateLimits{
			Forward: middleware.RateLimitRule{Limit: cfg.RateLimit.ForwardLimit, Window: cfg.RateLimit.ForwardWindow},
			Save:    middleware.RateLimitRule{Limit: cfg.RateLimit.SaveLimit, Window: cfg.RateLimit.SaveWindow},
		},
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		RequestMetrics: sink,
		MetricsHandler: metricsHandler,
		MetricsPath:    cfg.Metrics.Path,
		TrustedProxies: cfg.Server.TrustedProxies,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// In-flight forwards may still be sleeping between retries.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
