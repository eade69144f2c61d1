// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	// JDBCPrefix is the scheme prefix every PostgreSQL JDBC URL starts with.
	JDBCPrefix = "jdbc:postgresql://"

	// DefaultPostgresPort is used when the URL omits the port.
	DefaultPostgresPort = 5432

	// DefaultSchema is the schema probed when the URL does not set currentSchema.
	DefaultSchema = "public"
)

// Reasons reported by [ParseJDBCURL] when a connection string is rejected.
var (
	ErrNoJDBCScheme     = errors.New("missing jdbc:postgresql:// scheme")
	ErrEmptyHost        = errors.New("host is empty")
	ErrInvalidPort      = errors.New("port must be an integer between 1 and 65535")
	ErrEmptyDatabase    = errors.New("database name is empty")
	ErrNestedDatabase   = errors.New("database name must be a single path segment")
	ErrCredentialsInURL = errors.New("credentials must be set through username and password, not the url")
	ErrMultipleHosts    = errors.New("only a single host[:port] is supported")
	ErrURLFragment      = errors.New("url must not contain a #fragment")
	ErrUnparsableURL    = errors.New("url cannot be parsed")
)

// jdbcToLibpq maps PostgreSQL JDBC driver parameters onto the libpq
// parameter names understood by pgx. Parameters missing from this table
// are kept in [JDBCURL.Params] but not forwarded to the driver.
var jdbcToLibpq = map[string]string{
	"sslmode":          "sslmode",
	"sslrootcert":      "sslrootcert",
	"sslcert":          "sslcert",
	"sslkey":           "sslkey",
	"ApplicationName":  "application_name",
	"currentSchema":    "search_path",
	"connectTimeout":   "connect_timeout",
	"targetServerType": "target_session_attrs",
}

// JDBCURL is a parsed jdbc:postgresql://host:port/database connection string.
type JDBCURL struct {
	Host     string            `json:"host"`
	Port     int               `json:"port"`
	Database string            `json:"database"`
	Params   map[string]string `json:"params,omitempty"`
}

// ParseJDBCURL splits a PostgreSQL JDBC connection string into its host,
// port and database components. The host is lower-cased and a missing port
// defaults to [DefaultPostgresPort].
func ParseJDBCURL(raw string) (JDBCURL, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) < len(JDBCPrefix) || !strings.EqualFold(raw[:len(JDBCPrefix)], JDBCPrefix) {
		return JDBCURL{}, ErrNoJDBCScheme
	}

	u, err := url.Parse("postgresql://" + raw[len(JDBCPrefix):])
	if err != nil {
		return JDBCURL{}, ErrUnparsableURL
	}
	if u.User != nil {
		return JDBCURL{}, ErrCredentialsInURL
	}
	if strings.Contains(raw, "#") {
		return JDBCURL{}, ErrURLFragment
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return JDBCURL{}, ErrEmptyHost
	}
	// failover lists (host1:5432,host2:5432) would be read as one host;
	// a bare colon is only valid inside an IPv6 literal
	if strings.Contains(u.Host, ",") || (strings.Contains(host, ":") && !strings.HasPrefix(u.Host, "[")) {
		return JDBCURL{}, ErrMultipleHosts
	}

	port := DefaultPostgresPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port < 1 || port > 65535 {
			return JDBCURL{}, ErrInvalidPort
		}
	} else if strings.HasSuffix(u.Host, ":") {
		return JDBCURL{}, ErrInvalidPort
	}

	database := strings.TrimPrefix(u.Path, "/")
	if database == "" {
		return JDBCURL{}, ErrEmptyDatabase
	}
	if strings.Contains(database, "/") {
		return JDBCURL{}, ErrNestedDatabase
	}

	parsed := JDBCURL{
		Host:     host,
		Port:     port,
		Database: database,
	}

	query := u.Query()
	if _, ok := query["password"]; ok {
		return JDBCURL{}, ErrCredentialsInURL
	}
	if _, ok := query["user"]; ok {
		return JDBCURL{}, ErrCredentialsInURL
	}
	if len(query) > 0 {
		parsed.Params = make(map[string]string, len(query))
		for key, values := range query {
			parsed.Params[key] = values[0]
		}
	}

	return parsed, nil
}

// Address returns host:port, bracketing IPv6 hosts.
func (j JDBCURL) Address() string {
	return net.JoinHostPort(j.Host, strconv.Itoa(j.Port))
}

// Schema returns the schema named by currentSchema, or [DefaultSchema].
func (j JDBCURL) Schema() string {
	if schema := j.Params["currentSchema"]; schema != "" {
		// currentSchema may list a search path; the first entry is where
		// unqualified tables are created.
		first, _, _ := strings.Cut(schema, ",")
		return strings.TrimSpace(first)
	}
	return DefaultSchema
}

// String renders the canonical JDBC form with the port made explicit and
// parameters sorted by key.
func (j JDBCURL) String() string {
	s := JDBCPrefix + j.Address() + "/" + url.PathEscape(j.Database)
	if len(j.Params) > 0 {
		values := make(url.Values, len(j.Params))
		for k, v := range j.Params {
			values.Set(k, v)
		}
		s += "?" + values.Encode()
	}
	return s
}

// DSN renders a postgres:// URL for the pgx driver carrying the given
// credentials. Only JDBC parameters with a libpq equivalent are forwarded.
func (j JDBCURL) DSN(username, password string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(username, password),
		Host:   j.Address(),
		Path:   "/" + j.Database,
	}

	values := url.Values{}
	for k, v := range j.Params {
		if libpq, ok := jdbcToLibpq[k]; ok {
			values.Set(libpq, v)
		}
	}
	if targetType := values.Get("target_session_attrs"); targetType != "" {
		values.Set("target_session_attrs", jdbcTargetSessionAttrs(targetType))
	}
	u.RawQuery = values.Encode()

	return u.String()
}

func jdbcTargetSessionAttrs(targetServerType string) string {
	switch strings.ToLower(targetServerType) {
	case "primary", "master":
		return "primary"
	case "secondary", "slave":
		return "standby"
	case "prefersecondary", "preferslave":
		return "prefer-standby"
	}
	return "any"
}

var (
	urlUserInfo      = regexp.MustCompile(`(://)[^/@?#]*@`)
	urlPasswordParam = regexp.MustCompile(`(?i)([?&]password=)[^&#]*`)
)

// RedactURL masks credentials embedded in a connection string so that an
// unparsable url can still be shown to the operator.
func RedactURL(raw string) string {
	raw = urlUserInfo.ReplaceAllString(raw, "${1}***@")
	return urlPasswordParam.ReplaceAllString(raw, "${1}***")
}
