// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-datasource-check/models"
)

// Field names accepted by [DatasourceValidator.Validate] to restrict
// validation to a subset of the record. The names match the keys reported
// in [MissingFieldError].
const (
	FieldURL             = "url"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldDriverClassName = "driver-class-name"
	FieldDDLAuto         = "ddl-auto"
)

// requiredFields are checked for presence before anything else, so a record
// that is both incomplete and malformed reports the missing field.
var requiredFields = []string{FieldURL, FieldUsername, FieldPassword}

// DatasourceValidator implements [Validator] and [Normalizer] for
// models.Datasource.
type DatasourceValidator struct {
}

// NewDatasourceValidator constructs a new DatasourceValidator.
func NewDatasourceValidator() *DatasourceValidator {
	return &DatasourceValidator{}
}

// Validate accepts models.Datasource or *models.Datasource.
//
// Without fields every rule runs: presence of url, username and password
// (in that order), driver class, ddl-auto and finally the url format.
// With fields only the named rules run; FieldURL then covers both presence
// and format.
func (v *DatasourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Datasource:
		return v.validateDatasource(ctx, value, fields...)
	case *models.Datasource:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDatasource(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// Normalize validates ds and returns its canonical form: values trimmed,
// driver class defaulted, ddl-auto canonicalised and the url parsed into
// host, port and database.
func (v *DatasourceValidator) Normalize(ds models.Datasource) (models.NormalizedDatasource, error) {
	ds = trimDatasource(ds)
	if err := v.validateDatasource(context.Background(), ds); err != nil {
		return models.NormalizedDatasource{}, err
	}

	// validated above, errors are impossible here
	jdbc, _ := models.ParseJDBCURL(ds.URL)
	ddlAuto, _ := models.ParseDDLAuto(string(ds.DDLAuto))

	if ds.DriverClassName == "" {
		ds.DriverClassName = models.PostgresDriverClassName
	}
	ds.DDLAuto = ddlAuto
	ds.URL = jdbc.String()

	return models.NormalizedDatasource{
		Datasource: ds,
		JDBC:       jdbc,
	}, nil
}

func (v *DatasourceValidator) validateDatasource(_ context.Context, ds models.Datasource, fields ...string) error {
	ds = trimDatasource(ds)

	if len(fields) == 0 {
		for _, f := range requiredFields {
			if err := checkPresence(ds, f); err != nil {
				return err
			}
		}
		fields = []string{FieldDriverClassName, FieldDDLAuto, FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if err := checkPresence(ds, f); err != nil {
				return err
			}
			if _, err := models.ParseJDBCURL(ds.URL); err != nil {
				return &MalformedURLError{URL: models.RedactURL(ds.URL), Reason: err}
			}
		case FieldUsername, FieldPassword:
			if err := checkPresence(ds, f); err != nil {
				return err
			}
		case FieldDriverClassName:
			if ds.DriverClassName != "" && ds.DriverClassName != models.PostgresDriverClassName {
				return fmt.Errorf("%w: %q, expected %s", ErrUnsupportedDriver, ds.DriverClassName, models.PostgresDriverClassName)
			}
		case FieldDDLAuto:
			if _, err := models.ParseDDLAuto(string(ds.DDLAuto)); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidDDLAuto, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkPresence(ds models.Datasource, field string) error {
	var value string
	switch field {
	case FieldURL:
		value = ds.URL
	case FieldUsername:
		value = ds.Username
	case FieldPassword:
		value = ds.Password
	default:
		return ErrUnknownField
	}

	if value == "" {
		return &MissingFieldError{Field: field}
	}
	return nil
}

// trimDatasource strips surrounding whitespace. Passwords are kept as-is:
// whitespace inside a credential is significant, but a password made only
// of whitespace is treated as absent.
func trimDatasource(ds models.Datasource) models.Datasource {
	ds.URL = strings.TrimSpace(ds.URL)
	ds.Username = strings.TrimSpace(ds.Username)
	ds.DriverClassName = strings.TrimSpace(ds.DriverClassName)
	ds.DDLAuto = models.DDLAuto(strings.TrimSpace(string(ds.DDLAuto)))
	if strings.TrimSpace(ds.Password) == "" {
		ds.Password = ""
	}
	return ds
}
