package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/internal/store"
	"github.com/MKhiriev/gnap-bootstrap/internal/validators"
)

type configService struct {
	store  store.DocumentStore
	logger *logger.Logger
}

// NewConfigService returns a ConfigService reading straight from the store.
func NewConfigService(documentStore store.DocumentStore, log *logger.Logger) ConfigService {
	return &configService{store: documentStore, logger: log}
}

// GetConfig loads the singleton and validates it again, so a document that
// was edited in the store by hand is never served.
func (c *configService) GetConfig(ctx context.Context) (validators.ValidConfig, error) {
	cfg, err := c.store.GetServiceConfig(ctx)
	if errors.Is(err, store.ErrConfigNotFound) {
		return validators.ValidConfig{}, validators.NotInitialized()
	}
	if err != nil {
		c.logger.Err(err).Str("func", "configService.GetConfig").Msg("failed to read service config")
		return validators.ValidConfig{}, fmt.Errorf("reading service config: %w", err)
	}

	valid, err := validators.ValidateConfig(cfg)
	if err != nil {
		c.logger.Err(err).Str("func", "configService.GetConfig").Msg("stored service config is invalid")
		return validators.ValidConfig{}, err
	}

	return valid, nil
}
