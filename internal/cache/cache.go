// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps serialized discovery documents close to the
// discovery server. Redis is used when an address is configured, an
// in-process cache otherwise.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/gnap-bootstrap/internal/config"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
)

// KeyServiceConfig is the cache key of the serialized service configuration.
const KeyServiceConfig = "gnap:service_config"

// DefaultTTL is used when no TTL is configured.
const DefaultTTL = time.Hour

// MaxLocalTTL caps entries of the in-process cache. A seed run in another
// process cannot invalidate it, so a re-seeded document shows up within this
// window, the same max-age the discovery endpoint advertises.
const MaxLocalTTL = time.Minute

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

//go:generate mockgen -source=cache.go -destination=../mock/cache_mock.go -package=mock

// Cache is a byte-oriented key/value cache with per-entry expiry.
type Cache interface {
	// Get returns the value stored under key or [ErrCacheMiss].
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key for ttl. A non-positive ttl uses the
	// cache default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// New returns a Redis cache when cfg.RedisAddr is set and a memory cache
// capped at [MaxLocalTTL] otherwise. The Redis connection is verified with
// a ping.
func New(ctx context.Context, cfg config.Cache, log *logger.Logger) (Cache, error) {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if cfg.RedisAddr == "" {
		ttl = min(ttl, MaxLocalTTL)
		log.Debug().Dur("ttl", ttl).Msg("using in-process cache")
		return NewMemory(ttl), nil
	}

	c := NewRedis(cfg.RedisAddr, cfg.RedisDB, ttl)
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		log.Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		return nil, err
	}
	log.Info().Str("addr", cfg.RedisAddr).Int("db", cfg.RedisDB).Msg("connected to redis cache")

	return c, nil
}
