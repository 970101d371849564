package service

import (
	"time"

	"github.com/MKhiriev/gnap-bootstrap/internal/cache"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/internal/metrics"
	"github.com/MKhiriev/gnap-bootstrap/internal/store"
)

type Services struct {
	LoaderService   LoaderService
	ConfigService   ConfigService
	RegistryService RegistryService
}

// NewServices wires the services around one store. When c is nil the
// config service reads the store on every call.
func NewServices(documentStore store.DocumentStore, c cache.Cache, ttl time.Duration, m *metrics.Metrics, logger *logger.Logger) *Services {
	var configService ConfigService = NewConfigService(documentStore, logger)
	if c != nil {
		configService = NewConfigCacheService(c, ttl, m, logger).Wrap(configService)
	}

	return &Services{
		LoaderService:   NewLoaderService(documentStore, c, m, logger),
		ConfigService:   configService,
		RegistryService: NewRegistryService(documentStore, logger),
	}
}
