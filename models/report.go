// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProbeResult holds what the server reports about the connected session.
type ProbeResult struct {
	ServerVersion string `json:"server_version"`
	Database      string `json:"database"`
	CurrentUser   string `json:"current_user"`
	Schema        string `json:"schema"`
	SchemaExists  bool   `json:"schema_exists"`
	SchemaUsage   bool   `json:"schema_usage"`
	SchemaCreate  bool   `json:"schema_create"`
}

// Severity of a [Finding].
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is an advisory note about the configuration. Findings never fail
// a check on their own.
type Finding struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
}

// Report is the outcome of validating or checking a datasource.
type Report struct {
	CheckID    string                `json:"check_id"`
	Datasource *NormalizedDatasource `json:"datasource,omitempty"`
	Probe      *ProbeResult          `json:"probe,omitempty"`
	Findings   []Finding             `json:"findings,omitempty"`
	Diagnosis  Diagnosis             `json:"diagnosis"`
}
