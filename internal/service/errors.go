package service

import "errors"

var (
	// ErrInvalidDatasource wraps the validator error of a record that
	// failed validation.
	ErrInvalidDatasource = errors.New("invalid datasource")

	// ErrCheckFailed is returned when a valid record could not be used to
	// open a working session. The report carries the diagnosis.
	ErrCheckFailed = errors.New("datasource check failed")
)
