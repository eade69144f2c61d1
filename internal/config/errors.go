package config

import "errors"

// Errors returned while loading and validating the configuration.
var (
	// ErrUnsupportedConfigFile indicates a config path that is not a
	// .yml/.yaml file.
	ErrUnsupportedConfigFile = errors.New("unsupported config file: only .yaml and .yml files are allowed")
	// ErrUnresolvedPlaceholder indicates a ${NAME} placeholder with no
	// matching environment variable, property or default.
	ErrUnresolvedPlaceholder = errors.New("could not resolve placeholder")
	// ErrPlaceholderCycle indicates properties referencing each other too
	// deeply to resolve.
	ErrPlaceholderCycle = errors.New("placeholder references nested too deeply")

	// ErrInvalidToolConfigs indicates invalid checker settings (for example,
	// a non-positive timeout or an unknown output format).
	ErrInvalidToolConfigs = errors.New("invalid tool configuration")
	// ErrInvalidJPAConfigs indicates spring.jpa.* values that cannot be
	// interpreted (for example, show-sql that is not a boolean).
	ErrInvalidJPAConfigs = errors.New("invalid jpa configuration")
)
