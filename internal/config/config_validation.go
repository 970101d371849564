// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

func (cfg *SeedConfig) validate() error {
	if cfg.Seed.ConfigPath == "" || cfg.Seed.ClientsPath == "" || cfg.Seed.AccountsPath == "" {
		return fmt.Errorf("%w: config, clients and accounts files are required", ErrInvalidSeedConfigs)
	}

	if cfg.Seed.DryRun {
		return nil
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	return nil
}

func (cfg *DiscoveryConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Cache.TTL <= 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}

func (s Storage) validate() error {
	if s.URI == "" {
		return fmt.Errorf("%w: store URI is required", ErrInvalidStorageConfigs)
	}

	if s.Timeout < 0 {
		return fmt.Errorf("%w: negative store timeout", ErrInvalidStorageConfigs)
	}

	return nil
}
