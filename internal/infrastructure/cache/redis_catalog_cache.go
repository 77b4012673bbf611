// Package cache decorates the catalog service with a redis layer for the
// public read endpoints. The dashboard workflow invalidates it whenever a
// change touches published records.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/mills"
	"mill_inventory_service/internal/pkg/config"
	"mill_inventory_service/internal/pkg/logger"
	"mill_inventory_service/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "mill-inventory:catalog:"

// Keys carry the normalized locale, never the raw request value: Invalidate
// only knows the supported locales, so an entry keyed on "PT" or "fr" would
// outlive a publish.
func millsKey(locale string) string {
	return keyPrefix + "mills:" + constructions.NormalizeLocale(locale)
}

func mapKey(locale string) string {
	return keyPrefix + "map:" + constructions.NormalizeLocale(locale)
}

func searchableKey() string {
	return keyPrefix + "searchable"
}

// RedisCatalogCache wraps a CatalogService, caching the listing responses
// per locale. Slug lookups and search pass through: they are either cheap or
// derived from a cached listing anyway.
type RedisCatalogCache struct {
	inner  mills.CatalogService
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisCatalogCache creates the caching decorator from cache settings.
func NewRedisCatalogCache(inner mills.CatalogService, settings *config.CacheSettings, log logger.Logger) (*RedisCatalogCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	ttl := time.Duration(settings.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &RedisCatalogCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: log,
	}, nil
}

func (c *RedisCatalogCache) PublishedMills(ctx context.Context, locale string) ([]*mills.PublishedMill, error) {
	key := millsKey(locale)

	var cached []*mills.PublishedMill
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	result, err := c.inner.PublishedMills(ctx, locale)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, result)
	return result, nil
}

func (c *RedisCatalogCache) PublishedMillBySlug(ctx context.Context, slug, locale string) (*mills.PublishedMill, error) {
	return c.inner.PublishedMillBySlug(ctx, slug, locale)
}

func (c *RedisCatalogCache) MapData(ctx context.Context, locale string) (*mills.MapData, error) {
	key := mapKey(locale)

	var cached mills.MapData
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := c.inner.MapData(ctx, locale)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, result)
	return result, nil
}

func (c *RedisCatalogCache) WaterLineBySlug(ctx context.Context, slug, locale string) (*mills.WaterLineDetail, error) {
	return c.inner.WaterLineBySlug(ctx, slug, locale)
}

func (c *RedisCatalogCache) ConnectedMills(ctx context.Context, waterLineID, locale string) ([]*mills.MillSummary, error) {
	return c.inner.ConnectedMills(ctx, waterLineID, locale)
}

func (c *RedisCatalogCache) SearchableMills(ctx context.Context) ([]*mills.SearchableMill, error) {
	key := searchableKey()

	var cached []*mills.SearchableMill
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	result, err := c.inner.SearchableMills(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, result)
	return result, nil
}

func (c *RedisCatalogCache) Search(ctx context.Context, query, locale string) ([]*mills.SearchResult, error) {
	return c.inner.Search(ctx, query, locale)
}

// Invalidate drops every cached catalog response. Implements the
// app.CatalogInvalidator hook used by the dashboard workflow.
func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	keys := []string{searchableKey()}
	for _, locale := range constructions.SupportedLocales {
		keys = append(keys,
			millsKey(locale),
			mapKey(locale),
		)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}

	c.logger.Info("Invalidated catalog cache")
	return nil
}

// get loads and decodes a cached entry; any failure counts as a miss so
// redis trouble never takes the catalog down.
func (c *RedisCatalogCache) get(ctx context.Context, key string, out interface{}) bool {
	payload, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Catalog cache read failed for ", key, ": ", err)
		}
		metrics.CacheMissesTotal.Inc()
		return false
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		c.logger.Warn("Catalog cache entry for ", key, " is corrupt: ", err)
		metrics.CacheMissesTotal.Inc()
		return false
	}

	metrics.CacheHitsTotal.Inc()
	return true
}

func (c *RedisCatalogCache) set(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to encode catalog cache entry for ", key, ": ", err)
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("Catalog cache write failed for ", key, ": ", err)
	}
}
