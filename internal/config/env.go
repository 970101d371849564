package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the env and envPrefix tags of [StructuredConfig].
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return &cfg, nil
}
