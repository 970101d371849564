package service

import (
	"context"

	"github.com/MKhiriev/gnap-bootstrap/internal/validators"
	"github.com/MKhiriev/gnap-bootstrap/models"
)

// LoaderService validates a seed and writes it to the backing store.
type LoaderService interface {
	Load(ctx context.Context, seed models.Seed, opts LoadOptions) (models.LoadReport, error)
}

// ConfigService gives read-only access to the current discovery document.
type ConfigService interface {
	// GetConfig returns the most recently loaded configuration or a
	// [validators.ConfigError] of kind [validators.ErrNotInitialized].
	GetConfig(ctx context.Context) (validators.ValidConfig, error)
}

// RegistryService looks up seeded clients and accounts.
type RegistryService interface {
	GetClient(ctx context.Context, clientID string) (models.Client, error)
	GetAccount(ctx context.Context, accountID string) (models.Account, error)
}

// ConfigServiceWrapper defines middleware composition for ConfigService.
// Implementations wrap an existing ConfigService to add behavior such as
// caching.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService // returns a decorated ConfigService applying additional behavior
}

// LoadOptions controls a single [LoaderService.Load] run.
type LoadOptions struct {
	// Mode selects insert (fail on existing keys) or upsert semantics.
	Mode models.SaveMode
	// DryRun validates the seed without touching the store.
	DryRun bool
}
