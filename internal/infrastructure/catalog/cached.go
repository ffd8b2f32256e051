package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/brewsmith/v1/internal/domain/style"
	"github.com/brewsmith/v1/internal/ports/outbound"
	"github.com/brewsmith/v1/pkg/errors"
	"go.uber.org/zap"
)

const (
	cacheKeyPrefix = "brewsmith:style:"
	cacheKeyList   = "brewsmith:styles:all"
)

// CachedCatalog decorates a StyleCatalog with a read-through byte cache.
// Cache failures are logged and treated as misses; the inner catalog is
// always the source of truth.
type CachedCatalog struct {
	inner  outbound.StyleCatalog
	cache  outbound.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedCatalog wraps a catalog with caching.
func NewCachedCatalog(inner outbound.StyleCatalog, cache outbound.CacheRepository, ttl time.Duration, logger *zap.Logger) *CachedCatalog {
	return &CachedCatalog{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("cached-catalog"),
	}
}

var _ outbound.StyleCatalog = (*CachedCatalog)(nil)

// FindByID resolves through the cache keyed by identifier.
func (c *CachedCatalog) FindByID(ctx context.Context, id string) (*style.Guide, error) {
	key := cacheKeyPrefix + "id:" + id
	if guide := c.cachedGuide(ctx, key); guide != nil {
		return guide, nil
	}

	guide, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, guide)
	return guide, nil
}

// FindByName resolves through the cache keyed by lowercased name.
func (c *CachedCatalog) FindByName(ctx context.Context, name string) (*style.Guide, error) {
	key := cacheKeyPrefix + "name:" + strings.ToLower(name)
	if guide := c.cachedGuide(ctx, key); guide != nil {
		return guide, nil
	}

	guide, err := c.inner.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, guide)
	return guide, nil
}

// List resolves the full guide list through a single cache entry.
func (c *CachedCatalog) List(ctx context.Context) ([]style.Guide, error) {
	if data, err := c.cache.Get(ctx, cacheKeyList); err == nil {
		var guides []style.Guide
		if err := json.Unmarshal(data, &guides); err == nil {
			return guides, nil
		}
		c.logger.Warn("Corrupt cached style list, refetching", zap.String("key", cacheKeyList))
	}

	guides, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(guides); err == nil {
		if err := c.cache.Set(ctx, cacheKeyList, data, c.ttl); err != nil {
			c.logger.Warn("Failed to cache style list", zap.Error(err))
		}
	}
	return guides, nil
}

func (c *CachedCatalog) cachedGuide(ctx context.Context, key string) *style.Guide {
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil
	}
	var guide style.Guide
	if err := json.Unmarshal(data, &guide); err != nil {
		c.logger.Warn("Corrupt cached style guide", zap.String("key", key), zap.Error(err))
		if delErr := c.cache.Delete(ctx, key); delErr != nil {
			c.logger.Warn("Failed to evict corrupt cache entry", zap.String("key", key), zap.Error(delErr))
		}
		return nil
	}
	return &guide
}

func (c *CachedCatalog) store(ctx context.Context, key string, guide *style.Guide) {
	data, err := json.Marshal(guide)
	if err != nil {
		c.logger.Warn("Failed to marshal style guide for cache",
			zap.String("key", key), zap.Error(errors.Wrap(err, "marshal style guide")))
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache style guide", zap.String("key", key), zap.Error(err))
	}
}
