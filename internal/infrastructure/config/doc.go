// Package config loads and validates the Kivai runtime configuration.
//
// Configuration is YAML-based with hardcoded defaults and KIVAI_* environment
// variable overrides for deployment-specific values (hosts, credentials).
package config
