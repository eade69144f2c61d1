// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseYAML_Runbook(t *testing.T) {
	// Arrange
	p := writeTempYAML(t, "application.yml", `
spring:
  datasource:
    url: jdbc:postgresql://localhost:5432/studfolio_db
    username: studfolio_user
    password: studfolio123
    driver-class-name: org.postgresql.Driver
  jpa:
    hibernate:
      ddl-auto: update
    show-sql: true
`)

	// Act
	cfg, _, err := parseYAML(p, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "jdbc:postgresql://localhost:5432/studfolio_db", cfg.Spring.Datasource.URL)
	assert.Equal(t, "studfolio_user", cfg.Spring.Datasource.Username)
	assert.Equal(t, "studfolio123", cfg.Spring.Datasource.Password)
	assert.Equal(t, "org.postgresql.Driver", cfg.Spring.Datasource.DriverClassName)
	assert.Equal(t, "update", cfg.Spring.JPA.Hibernate.DDLAuto)
	assert.Equal(t, "true", cfg.Spring.JPA.ShowSQL)

	assert.Equal(t, SourceFileLiteral, cfg.Sources.URL)
	assert.Equal(t, SourceFileLiteral, cfg.Sources.Username)
	assert.Equal(t, SourceFileLiteral, cfg.Sources.Password)
}

func TestParseYAML_Placeholders(t *testing.T) {
	// Arrange
	t.Setenv("DB_URL", "jdbc:postgresql://db.prod:5432/studfolio_db")
	t.Setenv("DB_PASSWORD", "from-env")
	p := writeTempYAML(t, "application.yaml", `
spring:
  datasource:
    url: ${DB_URL}
    username: ${DB_USERNAME:studfolio_user}
    password: ${DB_PASSWORD}
`)

	// Act
	cfg, _, err := parseYAML(p, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "jdbc:postgresql://db.prod:5432/studfolio_db", cfg.Spring.Datasource.URL)
	assert.Equal(t, "studfolio_user", cfg.Spring.Datasource.Username)
	assert.Equal(t, "from-env", cfg.Spring.Datasource.Password)

	assert.Equal(t, SourceFilePlaceholder, cfg.Sources.URL)
	assert.Equal(t, SourceFilePlaceholder, cfg.Sources.Username)
	assert.Equal(t, SourceFilePlaceholder, cfg.Sources.Password)
}

func TestParseYAML_UnresolvedPlaceholder(t *testing.T) {
	p := writeTempYAML(t, "application.yml", `
spring:
  datasource:
    password: ${DSCHECK_TEST_SURELY_UNSET_VARIABLE}
`)

	cfg, unresolved, err := parseYAML(p, nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Spring.Datasource.Password)
	assert.Equal(t, SourceUnset, cfg.Sources.Password)
	require.Contains(t, unresolved, keyPassword)
	assert.ErrorIs(t, unresolved[keyPassword], ErrUnresolvedPlaceholder)
}

func TestParseYAML_RelaxedKeysAndPropertyReferences(t *testing.T) {
	p := writeTempYAML(t, "application.yml", `
app:
  db-name: studfolio_db
spring.datasource:
  url: jdbc:postgresql://localhost:5432/${app.db-name}
  driverClassName: org.postgresql.Driver
spring:
  jpa:
    hibernate:
      ddl_auto: validate
`)

	cfg, _, err := parseYAML(p, nil)
	require.NoError(t, err)
	assert.Equal(t, "jdbc:postgresql://localhost:5432/studfolio_db", cfg.Spring.Datasource.URL)
	assert.Equal(t, "org.postgresql.Driver", cfg.Spring.Datasource.DriverClassName)
	assert.Equal(t, "validate", cfg.Spring.JPA.Hibernate.DDLAuto)
}

func TestParseYAML_Profiles(t *testing.T) {
	body := `
spring:
  profiles:
    active: local
  datasource:
    url: jdbc:postgresql://localhost:5432/studfolio_db
    username: studfolio_user
---
spring:
  config:
    activate:
      on-profile: prod
  datasource:
    url: ${SPRING_DATASOURCE_URL:jdbc:postgresql://db.prod:5432/studfolio_db}
---
spring:
  config:
    activate:
      on-profile: "!prod"
  jpa:
    show-sql: true
`
	p := writeTempYAML(t, "application.yml", body)

	tests := []struct {
		name     string
		profiles []string
		url      string
		showSQL  string
	}{
		{"default profile from file", nil, "jdbc:postgresql://localhost:5432/studfolio_db", "true"},
		{"explicit prod", []string{"prod"}, "jdbc:postgresql://db.prod:5432/studfolio_db", ""},
		{"explicit other", []string{"test"}, "jdbc:postgresql://localhost:5432/studfolio_db", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := parseYAML(p, tt.profiles)
			require.NoError(t, err)
			assert.Equal(t, tt.url, cfg.Spring.Datasource.URL)
			assert.Equal(t, tt.showSQL, cfg.Spring.JPA.ShowSQL)
			assert.Equal(t, "studfolio_user", cfg.Spring.Datasource.Username)
		})
	}
}

func TestParseYAML_Errors(t *testing.T) {
	t.Run("wrong extension", func(t *testing.T) {
		p := writeTempYAML(t, "application.properties", "spring.datasource.url=x")
		_, _, err := parseYAML(p, nil)
		assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := parseYAML(filepath.Join(t.TempDir(), "nope.yml"), nil)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		p := writeTempYAML(t, "application.yml", "spring:\n  datasource: [unclosed")
		_, _, err := parseYAML(p, nil)
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		p := writeTempYAML(t, "application.yml", "")
		cfg, _, err := parseYAML(p, nil)
		require.NoError(t, err)
		assert.Equal(t, Datasource{}, cfg.Spring.Datasource)
	})
}

func TestPlaceholderResolver(t *testing.T) {
	t.Setenv("SPRING_DATASOURCE_USERNAME", "relaxed_user")
	t.Setenv("EMPTY_BUT_SET", "")

	r := &placeholderResolver{props: map[string]string{
		"a.b":     "${a.c}",
		"a.c":     "${a.b}",
		"pg.host": "localhost",
		"dburl":   "jdbc:postgresql://${pg.host}/db",
	}}

	tests := []struct {
		name        string
		in          string
		want        string
		placeholder bool
		err         error
	}{
		{"literal", "plain", "plain", false, nil},
		{"default used", "${UNSET_FOR_TEST_123:fallback}", "fallback", true, nil},
		{"empty default", "${UNSET_FOR_TEST_123:}", "", true, nil},
		{"set but empty wins over default", "${EMPTY_BUT_SET:fallback}", "", true, nil},
		{"relaxed env name", "${spring.datasource.username}", "relaxed_user", true, nil},
		{"nested property", "${dburl}", "jdbc:postgresql://localhost/db", true, nil},
		{"multiple in one value", "${pg.host}:${UNSET_FOR_TEST_123:5432}", "localhost:5432", true, nil},
		{"default with colon", "${UNSET_FOR_TEST_123:jdbc:postgresql://h/db}", "jdbc:postgresql://h/db", true, nil},
		{"nested default", "${UNSET_FOR_TEST_123:${UNSET_FOR_TEST_456:x}}", "x", true, nil},
		{"nested default from property", "${UNSET_FOR_TEST_123:${pg.host}}", "localhost", true, nil},
		{"nested default inside text", "jdbc:postgresql://${UNSET_FOR_TEST_123:${pg.host}}:5432/db", "jdbc:postgresql://localhost:5432/db", true, nil},
		{"unterminated is literal", "${UNSET_FOR_TEST_123", "${UNSET_FOR_TEST_123", false, nil},
		{"unresolved", "${UNSET_FOR_TEST_123}", "", true, ErrUnresolvedPlaceholder},
		{"unresolved nested default", "${UNSET_FOR_TEST_123:${UNSET_FOR_TEST_456}}", "", true, ErrUnresolvedPlaceholder},
		{"cycle", "${a.b}", "", true, ErrPlaceholderCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, placeholder, err := r.resolve(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.placeholder, placeholder)
		})
	}
}
