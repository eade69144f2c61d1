// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-datasource-check/models"
)

// Lint finding codes.
const (
	FindingLiteralSecret          = "LITERAL_SECRET"
	FindingLiteralConnection      = "LITERAL_CONNECTION_VALUE"
	FindingPasswordOnCommandLine  = "PASSWORD_ON_COMMAND_LINE"
	FindingShowSQLEnabled         = "SHOW_SQL_ENABLED"
	FindingDestructiveDDLAuto     = "DESTRUCTIVE_DDL_AUTO"
	FindingSchemaAutoCreateActive = "SCHEMA_AUTO_CREATE"
)

// Lint reports advisory findings about how the datasource is configured.
// Findings never make a configuration invalid.
func Lint(cfg *StructuredConfig) []models.Finding {
	var findings []models.Finding

	if cfg.Sources.Password == SourceFileLiteral {
		findings = append(findings, models.Finding{
			Severity: models.SeverityWarning,
			Code:     FindingLiteralSecret,
			Field:    "password",
			Message:  "password is written literally in the config file; use ${SPRING_DATASOURCE_PASSWORD} and keep the value out of version control",
		})
	}
	if cfg.Sources.URL == SourceFileLiteral && models.RedactURL(cfg.Spring.Datasource.URL) != cfg.Spring.Datasource.URL {
		findings = append(findings, models.Finding{
			Severity: models.SeverityWarning,
			Code:     FindingLiteralSecret,
			Field:    "url",
			Message:  "url embeds credentials in the config file; set them through username and ${SPRING_DATASOURCE_PASSWORD}",
		})
	}
	if cfg.Sources.Password == SourceFlag {
		findings = append(findings, models.Finding{
			Severity: models.SeverityInfo,
			Code:     FindingPasswordOnCommandLine,
			Field:    "password",
			Message:  "password passed on the command line is visible in the process list; prefer SPRING_DATASOURCE_PASSWORD",
		})
	}

	for _, literal := range []struct {
		field  string
		source ValueSource
		env    string
	}{
		{"url", cfg.Sources.URL, "SPRING_DATASOURCE_URL"},
		{"username", cfg.Sources.Username, "SPRING_DATASOURCE_USERNAME"},
	} {
		if literal.source == SourceFileLiteral {
			findings = append(findings, models.Finding{
				Severity: models.SeverityInfo,
				Code:     FindingLiteralConnection,
				Field:    literal.field,
				Message:  fmt.Sprintf("%s is fixed in the config file; deployed environments usually override it with ${%s}", literal.field, literal.env),
			})
		}
	}

	ds := cfg.Datasource()
	if ds.ShowSQL {
		findings = append(findings, models.Finding{
			Severity: models.SeverityInfo,
			Code:     FindingShowSQLEnabled,
			Field:    "show-sql",
			Message:  "show-sql prints every statement; disable it outside local development",
		})
	}

	ddlAuto, err := models.ParseDDLAuto(string(ds.DDLAuto))
	if err != nil {
		// reported by the validator
		return findings
	}
	switch {
	case ddlAuto.Destructive():
		findings = append(findings, models.Finding{
			Severity: models.SeverityWarning,
			Code:     FindingDestructiveDDLAuto,
			Field:    "ddl-auto",
			Message:  fmt.Sprintf("ddl-auto=%s drops existing tables at startup", ddlAuto),
		})
	case ddlAuto.CreatesTables():
		findings = append(findings, models.Finding{
			Severity: models.SeverityInfo,
			Code:     FindingSchemaAutoCreateActive,
			Field:    "ddl-auto",
			Message:  fmt.Sprintf("ddl-auto=%s creates missing tables at startup; the role needs CREATE on the schema", ddlAuto),
		})
	}

	return findings
}
