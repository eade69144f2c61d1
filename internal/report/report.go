// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders check reports for the operator and produces the
// recommended application.yml.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-datasource-check/models"
)

// Formats accepted by [Render].
const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Render writes r to w in the given format.
func Render(w io.Writer, format string, r models.Report) error {
	switch format {
	case FormatText:
		return RenderText(w, r)
	case FormatJSON:
		return RenderJSON(w, r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// RenderJSON writes r as indented JSON. The password is never part of the
// output.
func RenderJSON(w io.Writer, r models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	return nil
}
