// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types. Datasource values found
// in the environment are marked as [SourceEnv].
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	markSources(cfg, SourceEnv)
	return nil
}

// loadEnvFiles loads .env files in order. godotenv never overrides a
// variable that is already set, so the real environment and earlier files
// take precedence. An explicitly named file that does not exist is an error.
func loadEnvFiles(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("error reading env file %s: %w", path, err)
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("error loading env file %s: %w", path, err)
		}
	}
	return nil
}

// markSources sets source for every secret-bearing datasource value cfg
// provides.
func markSources(cfg *StructuredConfig, source ValueSource) {
	if cfg.Spring.Datasource.URL != "" {
		cfg.Sources.URL = source
	}
	if cfg.Spring.Datasource.Username != "" {
		cfg.Sources.Username = source
	}
	if cfg.Spring.Datasource.Password != "" {
		cfg.Sources.Password = source
	}
}
