package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Forwarder ForwarderConfig `mapstructure:"forwarder"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Platform  PlatformConfig  `mapstructure:"platform"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`            // debug, release, test
	PublicBaseURL  string   `mapstructure:"public_base_url"` // used to build checkout links
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"` // apply embedded migrations on startup
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ForwarderConfig tunes the merchant webhook forwarder.
type ForwarderConfig struct {
	MaxAttempts    int           `mapstructure:"max_attempts"`
	BaseDelay      time.Duration `mapstructure:"base_delay"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	LockTTL        time.Duration `mapstructure:"lock_ttl"`
	SigningSecret  string        `mapstructure:"signing_secret"` // empty = unsigned outbound requests
}

// WorstCaseDuration is the longest a single forward can hold the delivery
// lease: every attempt timing out plus every backoff between them.
func (f ForwarderConfig) WorstCaseDuration() time.Duration {
	total := time.Duration(f.MaxAttempts) * f.RequestTimeout
	delay := f.BaseDelay
	for i := 1; i < f.MaxAttempts; i++ {
		total += delay
		delay *= 2
	}
	return total
}

type RateLimitConfig struct {
	ForwardLimit  int64         `mapstructure:"forward_limit"`
	ForwardWindow time.Duration `mapstructure:"forward_window"`
	SaveLimit     int64         `mapstructure:"save_limit"`
	SaveWindow    time.Duration `mapstructure:"save_window"`
}

// PlatformConfig holds credentials shared with the commerce platform.
type PlatformConfig struct {
	WebhookSecret      string `mapstructure:"webhook_secret"`
	AppID              string `mapstructure:"app_id"`
	UserTokenPublicKey string `mapstructure:"user_token_public_key"` // PEM, ES256
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: HCO_ (Hosted Checkout).
// Nested keys use underscore: HCO_DATABASE_HOST, HCO_FORWARDER_SIGNING_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.public_base_url", "http://localhost:8080")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "hosted_checkout")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("forwarder.max_attempts", 3)
	v.SetDefault("forwarder.base_delay", "300ms")
	v.SetDefault("forwarder.request_timeout", "10s")
	v.SetDefault("forwarder.lock_ttl", "45s")
	v.SetDefault("forwarder.signing_secret", "")
	v.SetDefault("ratelimit.forward_limit", 10)
	v.SetDefault("ratelimit.forward_window", "1m")
	v.SetDefault("ratelimit.save_limit", 10)
	v.SetDefault("ratelimit.save_window", "1m")
	v.SetDefault("platform.webhook_secret", "")
	v.SetDefault("platform.app_id", "")
	v.SetDefault("platform.user_token_public_key", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// HCO_FORWARDER_MAX_ATTEMPTS -> forwarder.max_attempts
	v.SetEnvPrefix("HCO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Forwarder.MaxAttempts < 1 {
		return fmt.Errorf("forwarder.max_attempts must be at least 1, got %d", c.Forwarder.MaxAttempts)
	}
	if c.Forwarder.BaseDelay < 0 {
		return fmt.Errorf("forwarder.base_delay must not be negative")
	}
	if c.Forwarder.RequestTimeout <= 0 {
		return fmt.Errorf("forwarder.request_timeout must be positive")
	}
	if worst := c.Forwarder.WorstCaseDuration(); c.Forwarder.LockTTL <= worst {
		return fmt.Errorf("forwarder.lock_ttl (%s) must exceed the longest retry sequence (%s)",
			c.Forwarder.LockTTL, worst)
	}
	if c.RateLimit.ForwardLimit < 1 || c.RateLimit.SaveLimit < 1 {
		return fmt.Errorf("ratelimit limits must be positive")
	}
	if c.RateLimit.ForwardWindow < time.Second || c.RateLimit.SaveWindow < time.Second {
		return fmt.Errorf("ratelimit windows must be at least 1s")
	}
	return nil
}
