// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/rs/zerolog"
)

// PostgresDriverClassName is the only driver class accepted for the
// datasource. It is also applied when the configuration leaves the driver
// class empty.
const PostgresDriverClassName = "org.postgresql.Driver"

// Datasource is the connection configuration record read by the
// application at startup. It is created once per deployment and never
// mutated while the application runs.
//
// Password is a secret: it is excluded from JSON output and from log
// entries produced through [Datasource.MarshalZerologObject].
type Datasource struct {
	URL             string  `json:"url"`
	Username        string  `json:"username"`
	Password        string  `json:"-"`
	DriverClassName string  `json:"driver_class_name,omitempty"`
	DDLAuto         DDLAuto `json:"ddl_auto,omitempty"`
	ShowSQL         bool    `json:"show_sql"`
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler. The password
// is never written; only whether it is set.
func (d Datasource) MarshalZerologObject(e *zerolog.Event) {
	url := "<unparsable>"
	if d.URL == "" {
		url = ""
	} else if parsed, err := ParseJDBCURL(d.URL); err == nil {
		url = parsed.String()
	}

	e.Str("url", url).
		Str("username", d.Username).
		Bool("password_set", d.Password != "").
		Str("driver_class_name", d.DriverClassName).
		Str("ddl_auto", d.DDLAuto.String()).
		Bool("show_sql", d.ShowSQL)
}

// NormalizedDatasource is a validated [Datasource] together with its parsed
// connection string. Values are trimmed, the driver class defaulted and the
// ddl-auto mode canonicalised.
type NormalizedDatasource struct {
	Datasource
	JDBC JDBCURL `json:"jdbc"`
}

// DSN returns the pgx connection string for the record.
func (n NormalizedDatasource) DSN() string {
	return n.JDBC.DSN(n.Username, n.Password)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (n NormalizedDatasource) MarshalZerologObject(e *zerolog.Event) {
	n.Datasource.MarshalZerologObject(e)
	e.Str("host", n.JDBC.Host).
		Int("port", n.JDBC.Port).
		Str("database", n.JDBC.Database)
}
