// Package config provides configuration loading, merging, and validation
// facilities for the seed and discovery binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env files (only fill variables that are not already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON settings file
//
// The main entry points are [GetSeedConfig] for the bootstrap run and
// [GetDiscoveryConfig] for the discovery server. Both derive a narrow,
// validated view from the merged [StructuredConfig].
package config
