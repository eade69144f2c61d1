// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingField matches every [MissingFieldError].
	ErrMissingField = errors.New("missing field")
	// ErrMalformedURL matches every [MalformedURLError].
	ErrMalformedURL = errors.New("malformed url")

	ErrUnsupportedDriver = errors.New("unsupported driver class")
	ErrInvalidDDLAuto    = errors.New("invalid ddl-auto mode")
)

// MissingFieldError reports a required datasource field that is absent or
// blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// MalformedURLError reports a connection string that cannot be split into
// host, port and database. Reason is one of the models.ErrNoJDBCScheme
// family of errors. URL has embedded credentials masked.
type MalformedURLError struct {
	URL    string
	Reason error
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("malformed url %q: %v", e.URL, e.Reason)
}

func (e *MalformedURLError) Is(target error) bool {
	return target == ErrMalformedURL
}

func (e *MalformedURLError) Unwrap() error {
	return e.Reason
}
