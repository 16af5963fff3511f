package handler

import (
	"net/http"

	"hosted-checkout/internal/adapter/http/middleware"
	"hosted-checkout/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RateLimits holds the per-route-group limits.
type RateLimits struct {
	Forward middleware.RateLimitRule
	Save    middleware.RateLimitRule
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Forwarder       ports.Forwarder
	ConfigSvc       ports.CompanyConfigService
	WebhookVerifier ports.PlatformWebhookVerifier // nil = platform webhooks disabled
	PlatformEvents  ports.PlatformEventService
	UserTokens      ports.UserTokenVerifier   // nil = company header check only
	RateLimitStore  middleware.RateLimitStore // nil = rate limiting disabled
	RateLimits      RateLimits
	HealthCheckers  []ports.HealthChecker
	RequestMetrics  middleware.RequestObserver // nil = request metrics disabled
	MetricsHandler  http.Handler               // nil = no metrics endpoint
	MetricsPath     string
	TrustedProxies  []string
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(deps.TrustedProxies); err != nil {
		deps.Logger.Warn().Err(err).Msg("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.RequestMetrics != nil {
		r.Use(middleware.Metrics(deps.RequestMetrics))
	}
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.MetricsHandler))
	}

	rl := func(rule middleware.RateLimitRule, key middleware.KeyFunc) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, rule, key, deps.Logger)
	}

	api := r.Group("/api")

	forwardHandler := NewForwardHandler(deps.Forwarder)
	api.POST("/automation/webhook", rl(deps.RateLimits.Forward, middleware.WebhookKey), forwardHandler.Forward)

	configHandler := NewConfigHandler(deps.ConfigSvc)
	company := api.Group("/company/:companyId")
	{
		company.GET("", configHandler.GetPublic)
		company.POST("/save",
			middleware.CompanyAccess(deps.UserTokens, deps.Logger),
			rl(deps.RateLimits.Save, middleware.CompanySaveKey),
			configHandler.Save,
		)
	}

	if deps.WebhookVerifier != nil && deps.PlatformEvents != nil {
		platformHandler := NewPlatformWebhookHandler(deps.WebhookVerifier, deps.PlatformEvents, deps.Logger)
		api.POST("/webhooks", platformHandler.Receive)
	}

	return r
}
