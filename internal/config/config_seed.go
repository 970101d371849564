// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// SeedConfig is the configuration view of the seed binary.
type SeedConfig struct {
	App     App
	Storage Storage
	Cache   Cache
	Seed    Seed
}

// GetSeedConfig loads the structured configuration from args and the
// environment and narrows it to a validated [SeedConfig].
func GetSeedConfig(args []string) (*SeedConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	seedCfg := cfg.seedConfig()
	if err := seedCfg.validate(); err != nil {
		return nil, err
	}

	return seedCfg, nil
}

func (cfg *StructuredConfig) seedConfig() *SeedConfig {
	return &SeedConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Cache:   cfg.Cache,
		Seed:    cfg.Seed,
	}
}

// StoreTimeout returns the store timeout, falling back to ten seconds.
func (cfg *SeedConfig) StoreTimeout() time.Duration {
	if cfg.Storage.Timeout <= 0 {
		return 10 * time.Second
	}
	return cfg.Storage.Timeout
}
