package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultSupplierPortalURL is used when no Supplier Portal base URL is configured
	DefaultSupplierPortalURL = "https://supplier-bice.vercel.app"
	// DefaultMenuPlatformURL is used when no Menu Platform base URL is configured
	DefaultMenuPlatformURL = "https://micron-dusky.vercel.app"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Auth      AuthConfig
	Platforms PlatformsConfig
	HTTP      HTTPConfig
	Log       LogConfig
	SyncLog   SyncLogConfig
	Redis     RedisConfig
	Telemetry TelemetryConfig
	Swagger   SwaggerConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name    string
	Env     string
	Port    string
	Version string
}

// AuthConfig holds the shared API key presented by callers
type AuthConfig struct {
	APIKey string
}

// Configured reports whether an API key is set
func (a AuthConfig) Configured() bool {
	return a.APIKey != ""
}

// PlatformsConfig holds downstream platform endpoints and credentials
type PlatformsConfig struct {
	SupplierPortalURL    string
	SupplierPortalAPIKey string
	MenuPlatformURL      string
	MenuPlatformAPIKey   string
	Timeout              time.Duration
	MaxResponseSize      int64
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	MaxBodySize       int64
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
	TrustedProxies    []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// SyncLogConfig holds settings for the relay audit trail
type SyncLogConfig struct {
	Enabled      bool
	Driver       string // sqlite, postgres
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port for the redis client
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SwaggerConfig controls the API documentation endpoint
type SwaggerConfig struct {
	Enabled     bool
	RequireAuth bool     // Require the shared API key to read the docs
	AllowedIPs  []string // IPs or CIDR ranges, empty allows all
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	Enabled           bool    // Whether to enable OpenTelemetry
	CollectorEndpoint string  // OTEL Collector endpoint (e.g., "localhost:4317")
	SamplingRatio     float64 // Sampling ratio (0.0-1.0, 1.0 = 100%)
	ServiceName       string  // Service name for traces
	Insecure          bool    // Use insecure (non-TLS) connection (development only)
	MetricsEnabled    bool
	LogsEnabled       bool
	ExportInterval    time.Duration
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with RELAY_ prefix (e.g., RELAY_AUTH_API_KEY)
// 2. Deployment variables without prefix (API_KEY, SUPPLIER_PORTAL_URL, ...)
// 3. config.toml
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("RELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindDeploymentEnv(v); err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:    v.GetString("app.name"),
			Env:     v.GetString("app.env"),
			Port:    v.GetString("app.port"),
			Version: v.GetString("app.version"),
		},
		Auth: AuthConfig{
			APIKey: strings.TrimSpace(v.GetString("auth.api_key")),
		},
		Platforms: PlatformsConfig{
			SupplierPortalURL:    v.GetString("platforms.supplier_portal_url"),
			SupplierPortalAPIKey: v.GetString("platforms.supplier_portal_api_key"),
			MenuPlatformURL:      v.GetString("platforms.menu_platform_url"),
			MenuPlatformAPIKey:   v.GetString("platforms.menu_platform_api_key"),
			Timeout:              v.GetDuration("platforms.timeout"),
			MaxResponseSize:      v.GetInt64("platforms.max_response_size"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:       v.GetDuration("http.read_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:    v.GetInt("http.max_header_bytes"),
			MaxBodySize:       v.GetInt64("http.max_body_size"),
			RateLimitEnabled:  v.GetBool("http.rate_limit_enabled"),
			RateLimitRequests: v.GetInt("http.rate_limit_requests"),
			RateLimitWindow:   v.GetDuration("http.rate_limit_window"),
			TrustedProxies:    v.GetStringSlice("http.trusted_proxies"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		SyncLog: SyncLogConfig{
			Enabled:      v.GetBool("sync_log.enabled"),
			Driver:       v.GetString("sync_log.driver"),
			DSN:          v.GetString("sync_log.dsn"),
			MaxOpenConns: v.GetInt("sync_log.max_open_conns"),
			MaxIdleConns: v.GetInt("sync_log.max_idle_conns"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
			MetricsEnabled:    v.GetBool("telemetry.metrics_enabled"),
			LogsEnabled:       v.GetBool("telemetry.logs_enabled"),
			ExportInterval:    v.GetDuration("telemetry.export_interval"),
		},
		Swagger: SwaggerConfig{
			Enabled:     v.GetBool("swagger.enabled"),
			RequireAuth: v.GetBool("swagger.require_auth"),
			AllowedIPs:  v.GetStringSlice("swagger.allowed_ips"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindDeploymentEnv maps the unprefixed variable names used by existing
// deployments onto config keys. The RELAY_ form is listed first and wins.
func bindDeploymentEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"auth.api_key":                      {"RELAY_AUTH_API_KEY", "API_KEY"},
		"app.env":                           {"RELAY_APP_ENV", "NODE_ENV"},
		"platforms.supplier_portal_url":     {"RELAY_PLATFORMS_SUPPLIER_PORTAL_URL", "SUPPLIER_PORTAL_URL"},
		"platforms.supplier_portal_api_key": {"RELAY_PLATFORMS_SUPPLIER_PORTAL_API_KEY", "SUPPLIER_PORTAL_API_KEY"},
		"platforms.menu_platform_url":       {"RELAY_PLATFORMS_MENU_PLATFORM_URL", "MENU_PLATFORM_URL"},
		"platforms.menu_platform_api_key":   {"RELAY_PLATFORMS_MENU_PLATFORM_API_KEY", "MENU_PLATFORM_API_KEY"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "supplier-relay"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}
	if cfg.Platforms.SupplierPortalURL == "" {
		cfg.Platforms.SupplierPortalURL = DefaultSupplierPortalURL
	}
	if cfg.Platforms.MenuPlatformURL == "" {
		cfg.Platforms.MenuPlatformURL = DefaultMenuPlatformURL
	}
	cfg.Platforms.SupplierPortalURL = strings.TrimRight(cfg.Platforms.SupplierPortalURL, "/")
	cfg.Platforms.MenuPlatformURL = strings.TrimRight(cfg.Platforms.MenuPlatformURL, "/")
	// Platform credentials fall back to the shared key
	if cfg.Platforms.SupplierPortalAPIKey == "" {
		cfg.Platforms.SupplierPortalAPIKey = cfg.Auth.APIKey
	}
	if cfg.Platforms.MenuPlatformAPIKey == "" {
		cfg.Platforms.MenuPlatformAPIKey = cfg.Auth.APIKey
	}
	if cfg.Platforms.Timeout == 0 {
		cfg.Platforms.Timeout = 30 * time.Second
	}
	if cfg.Platforms.MaxResponseSize == 0 {
		cfg.Platforms.MaxResponseSize = 10 << 20 // 10MB
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	// Must outlast the outbound platform timeout
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = cfg.Platforms.Timeout + 15*time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 5 << 20 // 5MB
	}
	if cfg.HTTP.RateLimitRequests == 0 {
		cfg.HTTP.RateLimitRequests = 100
	}
	if cfg.HTTP.RateLimitWindow == 0 {
		cfg.HTTP.RateLimitWindow = time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.SyncLog.Driver == "" {
		cfg.SyncLog.Driver = "sqlite"
	}
	if cfg.SyncLog.DSN == "" && cfg.SyncLog.Driver == "sqlite" {
		cfg.SyncLog.DSN = "file:relay_sync_log.db?_busy_timeout=5000"
	}
	if cfg.SyncLog.MaxOpenConns == 0 {
		cfg.SyncLog.MaxOpenConns = 10
	}
	if cfg.SyncLog.MaxIdleConns == 0 {
		cfg.SyncLog.MaxIdleConns = 2
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317" // Default gRPC endpoint
	}
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.Name
	}
	if cfg.Telemetry.ExportInterval == 0 {
		cfg.Telemetry.ExportInterval = 60 * time.Second
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if err := validateBaseURL("platforms.supplier_portal_url", c.Platforms.SupplierPortalURL); err != nil {
		return err
	}
	if err := validateBaseURL("platforms.menu_platform_url", c.Platforms.MenuPlatformURL); err != nil {
		return err
	}
	if c.Platforms.Timeout < 0 {
		return fmt.Errorf("platforms.timeout cannot be negative")
	}

	if c.SyncLog.Enabled {
		switch c.SyncLog.Driver {
		case "sqlite", "postgres":
		default:
			return fmt.Errorf("sync_log.driver must be one of sqlite, postgres, got %q", c.SyncLog.Driver)
		}
		if c.SyncLog.DSN == "" {
			return fmt.Errorf("sync_log.dsn is required when sync_log.enabled is true")
		}
		if c.SyncLog.MaxIdleConns > c.SyncLog.MaxOpenConns {
			return fmt.Errorf("sync_log.max_idle_conns (%d) cannot exceed sync_log.max_open_conns (%d)",
				c.SyncLog.MaxIdleConns, c.SyncLog.MaxOpenConns)
		}
	}

	if c.HTTP.RateLimitEnabled && c.HTTP.RateLimitRequests <= 0 {
		return fmt.Errorf("http.rate_limit_requests must be positive")
	}

	// Production-specific validations
	if c.App.Env == "production" {
		if c.Auth.APIKey == "" {
			return fmt.Errorf("auth.api_key is required in production")
		}
		if len(c.Auth.APIKey) < 16 {
			return fmt.Errorf("auth.api_key must be at least 16 characters in production")
		}
		for _, raw := range []string{c.Platforms.SupplierPortalURL, c.Platforms.MenuPlatformURL} {
			if !strings.HasPrefix(raw, "https://") {
				return fmt.Errorf("platform URLs must use https in production, got %q", raw)
			}
		}
		if c.Swagger.Enabled && !c.Swagger.RequireAuth && len(c.Swagger.AllowedIPs) == 0 {
			return fmt.Errorf("swagger endpoint must be disabled, require authentication, or have IP restriction in production")
		}
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}

	return nil
}

func validateBaseURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", key, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host, got %q", key, raw)
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
