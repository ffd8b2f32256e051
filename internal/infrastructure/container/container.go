// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"
	"net/http"

	"github.com/brewsmith/v1/internal/application/optimizer"
	"github.com/brewsmith/v1/internal/domain/optimization"
	"github.com/brewsmith/v1/internal/infrastructure/calculator"
	"github.com/brewsmith/v1/internal/infrastructure/catalog"
	"github.com/brewsmith/v1/internal/infrastructure/config"
	"github.com/brewsmith/v1/internal/infrastructure/http/apiserver"
	"github.com/brewsmith/v1/internal/ports/inbound"
	"github.com/brewsmith/v1/internal/ports/outbound"
	"github.com/brewsmith/v1/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	CatalogModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug || cfg.IsDevelopment(),
		})
	},
)

// MetricsModule provides the Prometheus registry and engine metrics
var MetricsModule = fx.Provide(
	func() *prometheus.Registry {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg
	},
	func(reg *prometheus.Registry) *optimizer.Metrics {
		return optimizer.NewMetrics(reg)
	},
)

// CatalogModule provides the style catalog, optionally cached in Redis
var CatalogModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.StyleCatalog {
		base := catalog.NewMemoryCatalog()
		if !cfg.Catalog.EnableCache {
			return base
		}

		client := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.Database,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			PoolSize:     cfg.Redis.PoolSize,
		})
		cache := catalog.NewRedisCache(client, log)
		log.Info("Style catalog caching enabled",
			zap.String("redis_addr", cfg.RedisAddr()),
			zap.Duration("ttl", cfg.Catalog.CacheTTL),
		)
		return catalog.NewCachedCatalog(base, cache, cfg.Catalog.CacheTTL, log)
	},
)

// ServiceModule provides the application services
var ServiceModule = fx.Provide(
	calculator.NewService,

	func(
		calc outbound.MetricsCalculator,
		styles outbound.StyleCatalog,
		metrics *optimizer.Metrics,
		log *zap.Logger,
	) inbound.OptimizerService {
		return optimizer.NewService(calc, styles, optimization.DefaultPreferences(), metrics, log)
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	server *apiserver.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Brewsmith application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Brewsmith application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			_ = log.Sync()

			return nil
		},
	})
}
