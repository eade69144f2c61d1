// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// dscheck commands.
//
// Exit* constants are the process exit codes. Msg* constants are
// human-readable messages written to stderr or into log entries to describe
// the outcome of a command. Keeping them in one place ensures consistent
// wording across commands.
package app

// Process exit codes.
const (
	// ExitOK means the datasource is valid (validate) or usable (check).
	ExitOK = 0

	// ExitCheckFailed means the record is invalid or the check produced a
	// diagnosis other than ok. The report describes why.
	ExitCheckFailed = 1

	// ExitUsage means dscheck itself could not run: unknown flags, an
	// unreadable config file or invalid tool settings.
	ExitUsage = 2
)

const (
	// MsgConfigLoadFailed prefixes configuration loading errors.
	MsgConfigLoadFailed = "error loading configuration"

	// MsgDatasourceInvalid is logged when the validator rejects the record.
	MsgDatasourceInvalid = "datasource configuration is invalid"

	// MsgCheckFailed is logged when a valid record cannot be used.
	MsgCheckFailed = "datasource check failed"

	// MsgDatasourceOK is logged when a check finishes with no diagnosis.
	MsgDatasourceOK = "datasource check passed"

	// MsgRenderingFailed is logged when a report or template cannot be
	// written to stdout.
	MsgRenderingFailed = "error writing output"
)
