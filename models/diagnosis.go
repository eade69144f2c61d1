// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DiagnosisKind names the operator-facing outcome of a datasource check.
type DiagnosisKind string

const (
	DiagnosisOK                     DiagnosisKind = "ok"
	DiagnosisInvalidConfig          DiagnosisKind = "invalid_config"
	DiagnosisAuthenticationFailed   DiagnosisKind = "authentication_failed"
	DiagnosisSchemaPermissionDenied DiagnosisKind = "schema_permission_denied"
	DiagnosisDatabaseMissing        DiagnosisKind = "database_missing"
	DiagnosisServerUnreachable      DiagnosisKind = "server_unreachable"
	DiagnosisUnknown                DiagnosisKind = "unknown"
)

var remedies = map[DiagnosisKind]string{
	DiagnosisInvalidConfig:          "fix the datasource configuration values listed in the cause",
	DiagnosisAuthenticationFailed:   "correct the username/password, or reset the role password with ALTER ROLE ... PASSWORD",
	DiagnosisSchemaPermissionDenied: "grant the role privileges on the schema, e.g. GRANT ALL ON SCHEMA public TO <role>",
	DiagnosisDatabaseMissing:        "create the database (CREATE DATABASE <name> OWNER <role>) or fix the database name in the url",
	DiagnosisServerUnreachable:      "make sure the PostgreSQL server is running and reachable at the configured host and port",
	DiagnosisUnknown:                "inspect the cause reported by the driver",
}

// Diagnosis is the classified result of a check together with the
// operator remedy for it.
type Diagnosis struct {
	Kind   DiagnosisKind `json:"kind"`
	Cause  string        `json:"cause,omitempty"`
	Code   string        `json:"sqlstate,omitempty"`
	Remedy string        `json:"remedy,omitempty"`
}

// NewDiagnosis builds a Diagnosis of the given kind and fills in its remedy.
func NewDiagnosis(kind DiagnosisKind, cause string) Diagnosis {
	return Diagnosis{
		Kind:   kind,
		Cause:  cause,
		Remedy: remedies[kind],
	}
}

// OK reports whether the diagnosis describes a healthy datasource.
func (d Diagnosis) OK() bool {
	return d.Kind == DiagnosisOK
}
