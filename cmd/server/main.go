package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	_ "github.com/supplierhub/relay/docs"
	relayapp "github.com/supplierhub/relay/internal/application/relay"
	"github.com/supplierhub/relay/internal/domain/relay"
	"github.com/supplierhub/relay/internal/infrastructure/config"
	"github.com/supplierhub/relay/internal/infrastructure/logger"
	"github.com/supplierhub/relay/internal/infrastructure/persistence"
	"github.com/supplierhub/relay/internal/infrastructure/platform"
	"github.com/supplierhub/relay/internal/infrastructure/ratelimit"
	"github.com/supplierhub/relay/internal/infrastructure/telemetry"
	"github.com/supplierhub/relay/internal/interfaces/http/dto"
	"github.com/supplierhub/relay/internal/interfaces/http/handler"
	"github.com/supplierhub/relay/internal/interfaces/http/middleware"
	"github.com/supplierhub/relay/internal/interfaces/http/router"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Supplier Relay API
//	@version		1.0
//	@description	Relays orders, backorders and catalog updates between the Menu Platform and the Supplier Portal

//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Shared API key. Format: "Bearer {API_KEY}"

const meterName = "github.com/supplierhub/relay"

// pingFunc adapts a function to relayapp.Pinger
type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
	log, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx := context.Background()

	// OpenTelemetry providers. Each falls back to a no-op when disabled.
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.ExportInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}

	// Rebuild the logger so entries also reach the collector
	if loggerProvider.IsEnabled() {
		level, _ := zapcore.ParseLevel(cfg.Log.Level)
		log, err = logger.New(logCfg, loggerProvider.ZapCore(level))
		if err != nil {
			panic("Failed to initialize logger: " + err.Error())
		}
	}

	log.Info("Starting Supplier Relay",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", cfg.App.Version),
	)
	if !cfg.Auth.Configured() {
		log.Warn("API key is not configured, protected endpoints will answer 500")
	}

	relayMetrics, err := telemetry.NewRelayMetrics(meterProvider.Meter(meterName))
	if err != nil {
		log.Fatal("Failed to create relay metrics", zap.Error(err))
	}

	// Platform clients
	portalClient, err := platform.NewClient(relay.PlatformSupplierPortal, platform.Config{
		BaseURL:         cfg.Platforms.SupplierPortalURL,
		APIKey:          cfg.Platforms.SupplierPortalAPIKey,
		Timeout:         cfg.Platforms.Timeout,
		MaxResponseSize: cfg.Platforms.MaxResponseSize,
	}, log, relayMetrics)
	if err != nil {
		log.Fatal("Failed to create Supplier Portal client", zap.Error(err))
	}
	menuClient, err := platform.NewClient(relay.PlatformMenuPlatform, platform.Config{
		BaseURL:         cfg.Platforms.MenuPlatformURL,
		APIKey:          cfg.Platforms.MenuPlatformAPIKey,
		Timeout:         cfg.Platforms.Timeout,
		MaxResponseSize: cfg.Platforms.MaxResponseSize,
	}, log, relayMetrics)
	if err != nil {
		log.Fatal("Failed to create Menu Platform client", zap.Error(err))
	}
	supplierPortal := platform.NewSupplierPortalClient(portalClient)
	menuPlatform := platform.NewMenuPlatformClient(menuClient)

	healthService := relayapp.NewHealthService(relayapp.HealthSettings{
		Environment:       cfg.App.Env,
		Version:           cfg.App.Version,
		SupplierPortalURL: cfg.Platforms.SupplierPortalURL,
		MenuPlatformURL:   cfg.Platforms.MenuPlatformURL,
		APIKeyConfigured:  cfg.Auth.Configured(),
	}, nil)

	// Sync log (optional audit trail)
	var (
		serviceOpts    []relayapp.Option
		syncLogService *relayapp.SyncLogService
	)
	if cfg.SyncLog.Enabled {
		gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), 200*time.Millisecond)
		db, err := persistence.NewDatabase(cfg.SyncLog, gormLog)
		if err != nil {
			log.Fatal("Failed to connect to sync log database", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing sync log database", zap.Error(err))
			}
		}()
		if err := db.EnsureSchema(); err != nil {
			log.Fatal("Sync log schema is not ready", zap.Error(err))
		}

		if err := telemetry.RegisterDBTracing(db.DB, telemetry.DefaultDBTracingConfig(db.System()), log); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
		if sqlDB, err := db.SQLDB(); err == nil {
			if _, err := telemetry.RegisterDBPoolMetrics(meterProvider.Meter(meterName), sqlDB); err != nil {
				log.Warn("Failed to register database pool metrics", zap.Error(err))
			}
		}

		syncLogService = relayapp.NewSyncLogService(persistence.NewGormSyncLogRepository(db.DB), log)
		serviceOpts = append(serviceOpts, relayapp.WithSyncRecorder(syncLogService))
		healthService.AddDependency("sync_log", db)
		log.Info("Sync log enabled", zap.String("driver", db.Driver()))
	}

	// Services and handlers
	orderService := relayapp.NewOrderService(supplierPortal, serviceOpts...)
	productService := relayapp.NewProductService(menuPlatform, supplierPortal, serviceOpts...)

	handlers := router.Handlers{
		Order:   handler.NewOrderHandler(orderService),
		Product: handler.NewProductHandler(productService),
		Health:  handler.NewHealthHandler(healthService),
		SyncLog: handler.NewSyncLogHandler(syncLogService),
	}

	// Middleware in front of every endpoint except the health check
	var protected []gin.HandlerFunc
	if cfg.HTTP.RateLimitEnabled {
		var limiter ratelimit.Limiter
		if cfg.Redis.Enabled {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr(),
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer func() {
				_ = rdb.Close()
			}()
			limiter = ratelimit.NewRedisLimiter(rdb, cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
			healthService.AddDependency("redis", pingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}))
		} else {
			memLimiter := ratelimit.NewMemoryLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
			defer memLimiter.Close()
			limiter = memLimiter
		}
		protected = append(protected, middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
			zap.Bool("redis", cfg.Redis.Enabled),
		)
	}
	protected = append(protected, middleware.APIKeyAuth(cfg.Auth.APIKey))

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. Recovery - Catch panics and answer with the error envelope
	// 2. RequestID - Generate/propagate request ID
	// 3. Tracing - Server span per request
	// 4. Logger - Log requests
	// 5. Security - Add security headers
	// 6. Metrics - Request count and latency per route
	// 7. BodyLimit - Limit request body size
	engine.Use(logger.Recovery(log, func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
	}))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tracerProvider.IsEnabled(),
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.SecureWithConfig(middleware.SecurityConfig{
		HSTSEnabled: cfg.IsProduction(),
		HSTSMaxAge:  middleware.DefaultSecurityConfig().HSTSMaxAge,
	}))
	engine.Use(middleware.Metrics(relayMetrics))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// API documentation, guarded by swagger.* settings
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, middleware.APIKeyAuth(cfg.Auth.APIKey)),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine)
	router.RegisterRelayRoutes(r, handlers, protected...)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Flush telemetry after the last request has finished
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Tracer provider shutdown failed", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Meter provider shutdown failed", zap.Error(err))
	}
	if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Logger provider shutdown failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
