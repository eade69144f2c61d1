// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// DDLAuto is the schema-synchronization mode applied by the ORM at
// application startup (spring.jpa.hibernate.ddl-auto).
type DDLAuto string

const (
	// DDLAutoNone leaves the schema untouched.
	DDLAutoNone DDLAuto = "none"
	// DDLAutoValidate compares the schema against the object model and fails
	// startup on mismatch; nothing is created.
	DDLAutoValidate DDLAuto = "validate"
	// DDLAutoUpdate creates missing tables and columns, never drops.
	DDLAutoUpdate DDLAuto = "update"
	// DDLAutoCreate drops and recreates the schema on every startup.
	DDLAutoCreate DDLAuto = "create"
	// DDLAutoCreateDrop behaves like DDLAutoCreate and additionally drops the
	// schema when the application shuts down.
	DDLAutoCreateDrop DDLAuto = "create-drop"
)

// ErrUnknownDDLAuto is returned by [ParseDDLAuto] for unrecognised modes.
var ErrUnknownDDLAuto = errors.New("unknown ddl-auto mode")

var knownDDLAuto = []DDLAuto{
	DDLAutoNone,
	DDLAutoValidate,
	DDLAutoUpdate,
	DDLAutoCreate,
	DDLAutoCreateDrop,
}

// ParseDDLAuto converts a raw configuration value into a [DDLAuto].
// Matching is case-insensitive and an empty value yields [DDLAutoNone].
func ParseDDLAuto(raw string) (DDLAuto, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return DDLAutoNone, nil
	}

	for _, mode := range knownDDLAuto {
		if DDLAuto(value) == mode {
			return mode, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownDDLAuto, raw)
}

// CreatesTables reports whether the mode creates missing tables at startup.
func (d DDLAuto) CreatesTables() bool {
	switch d {
	case DDLAutoUpdate, DDLAutoCreate, DDLAutoCreateDrop:
		return true
	}
	return false
}

// Destructive reports whether the mode drops existing data at startup.
func (d DDLAuto) Destructive() bool {
	return d == DDLAutoCreate || d == DDLAutoCreateDrop
}

func (d DDLAuto) String() string {
	return string(d)
}
