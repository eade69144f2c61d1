// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-datasource-check/models"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging a Spring application.yml, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Environment names follow Spring Boot's relaxed binding, so the variables
// an application would read (SPRING_DATASOURCE_URL, ...) are the ones
// checked here.
type StructuredConfig struct {
	// Spring holds the application properties under test.
	Spring Spring `envPrefix:"SPRING_"`

	// Tool holds settings of the checker itself.
	Tool Tool `envPrefix:"DSCHECK_"`

	// Sources records where each secret-bearing datasource value came from.
	// Filled by every layer for the values it provides, so after merging it
	// describes the winning layer.
	Sources Sources
}

// Spring mirrors the spring.* property tree.
type Spring struct {
	Datasource Datasource `envPrefix:"DATASOURCE_"`
	JPA        JPA        `envPrefix:"JPA_"`

	// ActiveProfiles selects which profile-specific documents of a
	// multi-document application.yml are applied.
	// Env: SPRING_PROFILES_ACTIVE
	ActiveProfiles []string `env:"PROFILES_ACTIVE" envSeparator:","`
}

// Datasource mirrors spring.datasource.*.
type Datasource struct {
	// URL is the JDBC connection string.
	// Env: SPRING_DATASOURCE_URL
	URL string `env:"URL"`

	// Username is the database role.
	// Env: SPRING_DATASOURCE_USERNAME
	Username string `env:"USERNAME"`

	// Password is the role's credential. Never logged.
	// Env: SPRING_DATASOURCE_PASSWORD
	Password string `env:"PASSWORD"`

	// DriverClassName is the JDBC driver; org.postgresql.Driver when empty.
	// Env: SPRING_DATASOURCE_DRIVER_CLASS_NAME
	DriverClassName string `env:"DRIVER_CLASS_NAME"`
}

// JPA mirrors spring.jpa.*.
type JPA struct {
	Hibernate Hibernate `envPrefix:"HIBERNATE_"`

	// ShowSQL prints executed statements. Kept as text so an explicit
	// "false" from a higher layer overrides "true" from a lower one; parsed
	// with strconv.ParseBool during validation.
	// Env: SPRING_JPA_SHOW_SQL
	ShowSQL string `env:"SHOW_SQL"`
}

// Hibernate mirrors spring.jpa.hibernate.*.
type Hibernate struct {
	// DDLAuto is the schema synchronization mode (none, validate, update,
	// create, create-drop).
	// Env: SPRING_JPA_HIBERNATE_DDL_AUTO
	DDLAuto string `env:"DDL_AUTO"`
}

// Tool holds settings of the checker.
type Tool struct {
	// ConfigPath is the optional application.yml to load.
	// Env: DSCHECK_CONFIG
	ConfigPath string `env:"CONFIG"`

	// EnvFiles are .env files loaded before the environment is read.
	// Variables already present in the process environment win.
	// Env: DSCHECK_ENV_FILES (comma separated)
	EnvFiles []string `env:"ENV_FILES" envSeparator:","`

	// ConnectTimeout bounds connecting and probing the database.
	// Env: DSCHECK_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// LogLevel is a zerolog level name.
	// Env: DSCHECK_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Output is the report format: text or json.
	// Env: DSCHECK_OUTPUT
	Output string `env:"OUTPUT"`
}

// ValueSource tells where a configuration value came from.
type ValueSource int

const (
	SourceUnset ValueSource = iota
	// SourceFileLiteral is a value written verbatim in the config file.
	SourceFileLiteral
	// SourceFilePlaceholder is a file value resolved from ${...} placeholders.
	SourceFilePlaceholder
	SourceEnv
	SourceFlag
)

func (s ValueSource) String() string {
	switch s {
	case SourceFileLiteral:
		return "file literal"
	case SourceFilePlaceholder:
		return "file placeholder"
	case SourceEnv:
		return "environment"
	case SourceFlag:
		return "command line"
	}
	return "unset"
}

// Sources tracks the origin of the values that must not be committed to
// version control.
type Sources struct {
	URL      ValueSource
	Username ValueSource
	Password ValueSource
}

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// defaults is the lowest-priority layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Tool: Tool{
			ConnectTimeout: 5 * time.Second,
			LogLevel:       "info",
			Output:         OutputText,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later wins for
// non-zero fields):
//  1. Built-in defaults
//  2. The application.yml named by --config or DSCHECK_CONFIG
//  3. Environment variables (after loading any .env files)
//  4. Command-line flags
//
// This matches Spring Boot's own precedence of command-line arguments over
// OS environment over application.yml.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnvFiles().
		withEnv().
		withFile().
		build()
}

// Datasource converts the merged properties into the record the validator
// works on.
func (cfg *StructuredConfig) Datasource() models.Datasource {
	ds := models.Datasource{
		URL:             cfg.Spring.Datasource.URL,
		Username:        cfg.Spring.Datasource.Username,
		Password:        cfg.Spring.Datasource.Password,
		DriverClassName: cfg.Spring.Datasource.DriverClassName,
		DDLAuto:         models.DDLAuto(cfg.Spring.JPA.Hibernate.DDLAuto),
	}
	// validate has already rejected unparsable values
	ds.ShowSQL, _ = strconv.ParseBool(cfg.Spring.JPA.ShowSQL)
	return ds
}
