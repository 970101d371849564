package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/gnap-bootstrap/internal/cache"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/internal/metrics"
	"github.com/MKhiriev/gnap-bootstrap/internal/validators"
	"github.com/MKhiriev/gnap-bootstrap/models"
)

// ConfigCacheService is a read-through cache in front of a ConfigService.
// Cache failures are logged and the call falls through to the inner service.
type ConfigCacheService struct {
	inner   ConfigService
	cache   cache.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewConfigCacheService(c cache.Cache, ttl time.Duration, m *metrics.Metrics, log *logger.Logger) ConfigServiceWrapper {
	return &ConfigCacheService{cache: c, ttl: ttl, metrics: m, logger: log}
}

func (s *ConfigCacheService) GetConfig(ctx context.Context) (validators.ValidConfig, error) {
	if valid, ok := s.lookup(ctx); ok {
		return valid, nil
	}

	valid, err := s.inner.GetConfig(ctx)
	if err != nil {
		return validators.ValidConfig{}, err
	}

	data, err := json.Marshal(valid)
	if err != nil {
		s.logger.Err(err).Str("func", "ConfigCacheService.GetConfig").Msg("failed to encode service config")
		return valid, nil
	}
	if err = s.cache.Set(ctx, cache.KeyServiceConfig, data, s.ttl); err != nil {
		s.logger.Warn().Err(err).Str("func", "ConfigCacheService.GetConfig").Msg("failed to cache service config")
	}

	return valid, nil
}

// lookup returns the cached document when it is present and still valid.
// Entries that no longer decode or validate are dropped.
func (s *ConfigCacheService) lookup(ctx context.Context) (validators.ValidConfig, bool) {
	data, err := s.cache.Get(ctx, cache.KeyServiceConfig)
	if errors.Is(err, cache.ErrCacheMiss) {
		s.metrics.ObserveCacheLookup(metrics.CacheMiss)
		return validators.ValidConfig{}, false
	}
	if err != nil {
		s.metrics.ObserveCacheLookup(metrics.CacheError)
		s.logger.Warn().Err(err).Str("func", "ConfigCacheService.lookup").Msg("config cache unavailable")
		return validators.ValidConfig{}, false
	}

	var cfg models.ServiceConfig
	if err = json.Unmarshal(data, &cfg); err == nil {
		var valid validators.ValidConfig
		if valid, err = validators.ValidateConfig(cfg); err == nil {
			s.metrics.ObserveCacheLookup(metrics.CacheHit)
			return valid, true
		}
	}

	s.metrics.ObserveCacheLookup(metrics.CacheError)
	s.logger.Warn().Err(err).Str("func", "ConfigCacheService.lookup").Msg("dropping corrupt cache entry")
	if delErr := s.cache.Delete(ctx, cache.KeyServiceConfig); delErr != nil {
		s.logger.Warn().Err(delErr).Msg("failed to drop corrupt cache entry")
	}

	return validators.ValidConfig{}, false
}

func (s *ConfigCacheService) Wrap(inner ConfigService) ConfigService {
	s.inner = inner
	return s
}
