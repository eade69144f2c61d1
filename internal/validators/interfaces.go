// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks datasource configuration records before an
// application is allowed to start with them.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values, optionally
//     scoped to a subset of named fields.
//   - Normalizer: produces the canonical form of a record once it is valid.
//
// Validation is pure: implementations perform no I/O and never log secret
// values.
package validators

import (
	"context"

	"github.com/MKhiriev/go-datasource-check/models"
)

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Normalizer validates a datasource record and returns its canonical form.
type Normalizer interface {
	Normalize(models.Datasource) (models.NormalizedDatasource, error)
}
