package content

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hijamacare/site-engine/internal/modules"
	"github.com/hijamacare/site-engine/internal/observability/metrics"
	"github.com/hijamacare/site-engine/pkg/logging"
)

const cacheKeyPrefix = "render:page:"

// RenderCache keeps resolved page renderings in Redis so repeat page views
// skip module resolution. A nil client disables caching entirely.
type RenderCache struct {
	client  *redis.Client
	ttl     time.Duration
	logger  *logging.Logger
	metrics *metrics.ContentMetrics
}

// NewRenderCache creates a cache with the given TTL.
func NewRenderCache(client *redis.Client, ttl time.Duration, logger *logging.Logger, m *metrics.ContentMetrics) *RenderCache {
	if logger == nil {
		logger = logging.Default()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RenderCache{client: client, ttl: ttl, logger: logger, metrics: m}
}

// Get returns the cached rendering for a slug, or nil on miss. Cache
// failures degrade to a miss; the page is re-rendered instead.
func (c *RenderCache) Get(ctx context.Context, slug string) []modules.Rendered {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, cacheKeyPrefix+slug).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("render cache read failed", "slug", slug, "error", err)
		}
		c.metrics.ObserveCache("miss")
		return nil
	}
	var rendered []modules.Rendered
	if err := json.Unmarshal(raw, &rendered); err != nil {
		c.logger.Warn("render cache entry corrupt", "slug", slug, "error", err)
		c.metrics.ObserveCache("miss")
		return nil
	}
	c.metrics.ObserveCache("hit")
	return rendered
}

// Set stores a rendering for a slug. Failures are logged and ignored.
func (c *RenderCache) Set(ctx context.Context, slug string, rendered []modules.Rendered) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(rendered)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKeyPrefix+slug, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("render cache write failed", "slug", slug, "error", err)
	}
}

// Invalidate drops the cached rendering for a slug.
func (c *RenderCache) Invalidate(ctx context.Context, slug string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKeyPrefix+slug).Err(); err != nil {
		c.logger.Warn("render cache invalidate failed", "slug", slug, "error", err)
	}
}
