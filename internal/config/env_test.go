// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SPRING_DATASOURCE_URL":               "jdbc:postgresql://localhost:5432/studfolio_db",
		"SPRING_DATASOURCE_USERNAME":          "studfolio_user",
		"SPRING_DATASOURCE_PASSWORD":          "studfolio123",
		"SPRING_DATASOURCE_DRIVER_CLASS_NAME": "org.postgresql.Driver",
		"SPRING_JPA_HIBERNATE_DDL_AUTO":       "update",
		"SPRING_JPA_SHOW_SQL":                 "true",
		"SPRING_PROFILES_ACTIVE":              "prod,eu",

		"DSCHECK_CONFIG":          "/etc/app/application.yml",
		"DSCHECK_ENV_FILES":       ".env,.env.local",
		"DSCHECK_CONNECT_TIMEOUT": "3s",
		"DSCHECK_LOG_LEVEL":       "debug",
		"DSCHECK_OUTPUT":          "json",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "jdbc:postgresql://localhost:5432/studfolio_db", cfg.Spring.Datasource.URL)
	assert.Equal(t, "studfolio_user", cfg.Spring.Datasource.Username)
	assert.Equal(t, "studfolio123", cfg.Spring.Datasource.Password)
	assert.Equal(t, "org.postgresql.Driver", cfg.Spring.Datasource.DriverClassName)
	assert.Equal(t, "update", cfg.Spring.JPA.Hibernate.DDLAuto)
	assert.Equal(t, "true", cfg.Spring.JPA.ShowSQL)
	assert.Equal(t, []string{"prod", "eu"}, cfg.Spring.ActiveProfiles)

	assert.Equal(t, "/etc/app/application.yml", cfg.Tool.ConfigPath)
	assert.Equal(t, []string{".env", ".env.local"}, cfg.Tool.EnvFiles)
	assert.Equal(t, 3*time.Second, cfg.Tool.ConnectTimeout)
	assert.Equal(t, "debug", cfg.Tool.LogLevel)
	assert.Equal(t, "json", cfg.Tool.Output)

	assert.Equal(t, Sources{URL: SourceEnv, Username: SourceEnv, Password: SourceEnv}, cfg.Sources)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SPRING_DATASOURCE_PASSWORD": "only-password",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Spring.Datasource.URL)
	assert.Equal(t, "only-password", cfg.Spring.Datasource.Password)
	assert.Equal(t, Sources{Password: SourceEnv}, cfg.Sources)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"DSCHECK_CONNECT_TIMEOUT": "soon",
	})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestLoadEnvFiles(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SPRING_DATASOURCE_USERNAME", "from_process")

	dir := t.TempDir()
	first := filepath.Join(dir, ".env")
	second := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(first, []byte("SPRING_DATASOURCE_PASSWORD=from_first\nSPRING_DATASOURCE_USERNAME=from_file\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("SPRING_DATASOURCE_PASSWORD=from_second\nSPRING_DATASOURCE_URL=jdbc:postgresql://localhost/db\n"), 0o600))

	require.NoError(t, loadEnvFiles([]string{first, second}))

	assert.Equal(t, "from_process", os.Getenv("SPRING_DATASOURCE_USERNAME"), "process env wins")
	assert.Equal(t, "from_first", os.Getenv("SPRING_DATASOURCE_PASSWORD"), "earlier file wins")
	assert.Equal(t, "jdbc:postgresql://localhost/db", os.Getenv("SPRING_DATASOURCE_URL"))
}

func TestLoadEnvFiles_MissingFile(t *testing.T) {
	err := loadEnvFiles([]string{filepath.Join(t.TempDir(), "missing.env")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// Helpers

var envKeys = []string{
	"SPRING_DATASOURCE_URL",
	"SPRING_DATASOURCE_USERNAME",
	"SPRING_DATASOURCE_PASSWORD",
	"SPRING_DATASOURCE_DRIVER_CLASS_NAME",
	"SPRING_JPA_HIBERNATE_DDL_AUTO",
	"SPRING_JPA_SHOW_SQL",
	"SPRING_PROFILES_ACTIVE",

	"DSCHECK_CONFIG",
	"DSCHECK_ENV_FILES",
	"DSCHECK_CONNECT_TIMEOUT",
	"DSCHECK_LOG_LEVEL",
	"DSCHECK_OUTPUT",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads; t.Setenv restores
// the original values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
