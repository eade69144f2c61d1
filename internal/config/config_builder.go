// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"dario.cat/mergo"
)

// configBuilder collects one *StructuredConfig per source and merges them
// by priority in build. The with* methods may be called in any order; each
// records its error and leaves the builder usable so that every problem is
// reported at once.
type configBuilder struct {
	file  *StructuredConfig
	env   *StructuredConfig
	flags *StructuredConfig
	err   error

	filePath   string
	unresolved unresolvedPlaceholders
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// layers returns the collected configs from lowest to highest priority.
func (b *configBuilder) layers() []*StructuredConfig {
	layers := []*StructuredConfig{defaults()}
	for _, cfg := range []*StructuredConfig{b.file, b.env, b.flags} {
		if cfg != nil {
			layers = append(layers, cfg)
		}
	}
	return layers
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if err := b.checkUnresolved(); err != nil {
		b.err = errors.Join(b.err, err)
	}
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.layers() {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// checkUnresolved reports file placeholders that could not be resolved,
// except for properties the environment or a flag supplies anyway: Spring
// never evaluates a property that a higher source overrides.
func (b *configBuilder) checkUnresolved() error {
	var errs error
	for _, key := range slices.Sorted(maps.Keys(b.unresolved)) {
		if b.overridden(key) {
			continue
		}
		errs = errors.Join(errs, fmt.Errorf("%s: %w", key, b.unresolved[key]))
	}

	if errs != nil {
		return fmt.Errorf("error resolving config file %s: %w", b.filePath, errs)
	}
	return nil
}

func (b *configBuilder) overridden(key string) bool {
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg == nil {
			continue
		}
		for _, p := range properties(cfg) {
			if p.key == key && *p.dst != "" {
				return true
			}
		}
	}
	return false
}

func (b *configBuilder) withFlags(flags *Flags) *configBuilder {
	if flags == nil {
		return b
	}

	b.flags = flags.config()
	return b
}

// withEnvFiles loads the .env files named by flags or DSCHECK_ENV_FILES into
// the process environment. It must run before withEnv.
func (b *configBuilder) withEnvFiles() *configBuilder {
	var paths []string
	if b.flags != nil {
		paths = b.flags.Tool.EnvFiles
	}
	if len(paths) == 0 {
		envCfg := &StructuredConfig{}
		if err := parseEnv(envCfg); err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		paths = envCfg.Tool.EnvFiles
	}

	if err := loadEnvFiles(paths); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

// withFile parses the application.yml whose path is resolved from the env
// and flag layers, flags winning. Active profiles are resolved the same way.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	var profiles []string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg == nil {
			continue
		}
		if cfg.Tool.ConfigPath != "" {
			path = cfg.Tool.ConfigPath
		}
		if len(cfg.Spring.ActiveProfiles) > 0 {
			profiles = cfg.Spring.ActiveProfiles
		}
	}

	if path == "" {
		return b
	}

	fileCfg, unresolved, err := parseYAML(path, profiles)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.file = fileCfg
	b.filePath = path
	b.unresolved = unresolved
	return b
}
