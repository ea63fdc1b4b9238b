// Package bootstrap assembles the application's runtime dependencies from
// configuration. Every builder degrades: a missing optional dependency
// yields nil rather than a startup failure.
package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/hijamacare/site-engine/internal/booking"
	appconfig "github.com/hijamacare/site-engine/internal/config"
	"github.com/hijamacare/site-engine/internal/content"
	"github.com/hijamacare/site-engine/internal/modules"
	"github.com/hijamacare/site-engine/internal/modules/builtin"
	"github.com/hijamacare/site-engine/internal/observability/metrics"
	"github.com/hijamacare/site-engine/internal/recaptcha"
	"github.com/hijamacare/site-engine/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// BuildBookingConfig maps application configuration onto the booking form's
// configuration, with the authored service catalogue.
func BuildBookingConfig(cfg *appconfig.Config) booking.Config {
	return booking.Config{
		Endpoint:            cfg.BookingEndpoint,
		ShowVerification:    cfg.ShowRecaptcha,
		VerificationSiteKey: cfg.RecaptchaSiteKey,
		ServiceTypes: []booking.ServiceType{
			{Name: "Wet Cupping (Hijama)", DurationMinutes: 60, Price: "$90"},
			{Name: "Dry Cupping", DurationMinutes: 45, Price: "$70"},
			{Name: "Massage Cupping", DurationMinutes: 45, Price: "$70"},
			{Name: "Consultation", DurationMinutes: 30, Price: "Free"},
		},
		TimeSlots: []string{
			"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
			"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
		},
		ResetDelay: cfg.BookingResetDelay,
	}.WithDefaults()
}

// BuildTokenSource returns the verification token client, or nil when
// verification is disabled or misconfigured. A nil source with verification
// enabled makes every submission fail closed, which is the intended
// behavior for a broken verification setup.
func BuildTokenSource(cfg *appconfig.Config, logger *logging.Logger) booking.TokenSource {
	if cfg == nil || !cfg.ShowRecaptcha {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	client, err := recaptcha.New(recaptcha.Config{
		BaseURL: cfg.RecaptchaBaseURL,
		SiteKey: cfg.RecaptchaSiteKey,
		Timeout: cfg.RecaptchaTimeout,
		Logger:  logger.Logger,
	})
	if err != nil {
		logger.Warn("recaptcha client unavailable, submissions will fail closed", "error", err)
		return nil
	}
	return client
}

// BuildPipeline wires the submission pipeline from configuration.
func BuildPipeline(cfg *appconfig.Config, logger *logging.Logger, reg prometheus.Registerer) *booking.Pipeline {
	return booking.NewPipeline(booking.PipelineConfig{
		Endpoint:         cfg.BookingEndpoint,
		ShowVerification: cfg.ShowRecaptcha,
		Tokens:           BuildTokenSource(cfg, logger),
		Logger:           logger,
		Metrics:          metrics.NewBookingMetrics(reg),
	})
}

// BuildRegistry returns a module registry with every built-in handler
// registered.
func BuildRegistry(logger *logging.Logger, reg prometheus.Registerer, now func() time.Time) *modules.Registry {
	registry := modules.NewRegistry(logger, metrics.NewModuleMetrics(reg))
	builtin.RegisterAll(registry, now)
	return registry
}

// BuildContentStore loads the authored page catalogue. A missing or broken
// content file degrades to an empty catalogue so booking endpoints stay up.
func BuildContentStore(cfg *appconfig.Config, logger *logging.Logger) content.Store {
	if logger == nil {
		logger = logging.Default()
	}
	store, err := content.LoadFile(cfg.ContentFile)
	if err != nil {
		logger.Warn("content catalogue unavailable, serving no pages", "file", cfg.ContentFile, "error", err)
		return content.NewMemoryStore(nil)
	}
	return store
}

// BuildRenderCache returns the Redis-backed render cache, disabled when
// Redis is not configured.
func BuildRenderCache(client *redis.Client, cfg *appconfig.Config, logger *logging.Logger, reg prometheus.Registerer) *content.RenderCache {
	if client == nil {
		return nil
	}
	return content.NewRenderCache(client, cfg.RenderCacheTTL, logger, metrics.NewContentMetrics(reg))
}
