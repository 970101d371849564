// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// DiscoveryConfig is the configuration view of the discovery server.
type DiscoveryConfig struct {
	App     App
	Storage Storage
	Cache   Cache
	Server  Server
}

// GetDiscoveryConfig loads the structured configuration from args and the
// environment and narrows it to a validated [DiscoveryConfig].
func GetDiscoveryConfig(args []string) (*DiscoveryConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	discoveryCfg := cfg.discoveryConfig()
	if err := discoveryCfg.validate(); err != nil {
		return nil, err
	}

	return discoveryCfg, nil
}

func (cfg *StructuredConfig) discoveryConfig() *DiscoveryConfig {
	return &DiscoveryConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Cache:   cfg.Cache,
		Server:  cfg.Server,
	}
}
