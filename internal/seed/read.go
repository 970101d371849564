// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package seed

import (
	"context"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/models"
)

// Files names the three seed definition files of one bootstrap run.
type Files struct {
	Config   string
	Clients  string
	Accounts string
}

// ReadConfig decodes the discovery document at path. legacy reports whether
// the file used the split array form.
func ReadConfig(path string) (cfg models.ServiceConfig, legacy bool, err error) {
	data, f, err := readFile(path)
	if err != nil {
		return models.ServiceConfig{}, false, err
	}

	seq, err := isSequence(data, f)
	if err != nil {
		return models.ServiceConfig{}, false, fmt.Errorf("%w %s: %w", ErrDecoding, path, err)
	}

	if !seq {
		if err = decode(data, f, &cfg); err != nil {
			return models.ServiceConfig{}, false, fmt.Errorf("%w %s: %w", ErrDecoding, path, err)
		}
		return cfg, false, nil
	}

	var parts []models.ServiceConfig
	if err = decode(data, f, &parts); err != nil {
		return models.ServiceConfig{}, true, fmt.Errorf("%w %s: %w", ErrDecoding, path, err)
	}

	cfg, err = MergeLegacyConfig(parts)
	return cfg, true, err
}

// MergeLegacyConfig folds the partial documents of the legacy split form
// into one document. A field already set by an earlier part is kept.
func MergeLegacyConfig(parts []models.ServiceConfig) (models.ServiceConfig, error) {
	if len(parts) == 0 {
		return models.ServiceConfig{}, ErrEmptyLegacyConfig
	}

	var merged models.ServiceConfig
	for i, part := range parts {
		if err := mergo.Merge(&merged, part); err != nil {
			return models.ServiceConfig{}, fmt.Errorf("error merging legacy config part %d: %w", i, err)
		}
	}

	return merged, nil
}

// ReadClients decodes the client registrations at path.
func ReadClients(path string) ([]models.Client, error) {
	var clients []models.Client
	if err := readInto(path, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// ReadAccounts decodes the account profiles at path.
func ReadAccounts(path string) ([]models.Account, error) {
	var accounts []models.Account
	if err := readInto(path, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ReadSeed reads all three definition files.
func ReadSeed(ctx context.Context, files Files) (models.Seed, error) {
	log := logger.FromContext(ctx)

	cfg, legacy, err := ReadConfig(files.Config)
	if err != nil {
		return models.Seed{}, fmt.Errorf("config: %w", err)
	}
	if legacy {
		log.Warn().Str("path", files.Config).Msg("service config uses the legacy split format; parts were merged")
	}

	clients, err := ReadClients(files.Clients)
	if err != nil {
		return models.Seed{}, fmt.Errorf("clients: %w", err)
	}

	accounts, err := ReadAccounts(files.Accounts)
	if err != nil {
		return models.Seed{}, fmt.Errorf("accounts: %w", err)
	}

	log.Debug().
		Int("clients", len(clients)).
		Int("accounts", len(accounts)).
		Msg("seed files decoded")

	return models.Seed{Config: cfg, Clients: clients, Accounts: accounts}, nil
}
