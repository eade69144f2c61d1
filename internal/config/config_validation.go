// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

// validate checks the settings this package interprets itself. The
// datasource record is deliberately not validated here: reporting a missing
// url or password is the validator's job, and the validate command must be
// able to load an incomplete record in order to report on it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Tool.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidToolConfigs, cfg.Tool.ConnectTimeout)
	}

	if cfg.Tool.Output != OutputText && cfg.Tool.Output != OutputJSON {
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalidToolConfigs, OutputText, OutputJSON, cfg.Tool.Output)
	}

	if _, err := zerolog.ParseLevel(cfg.Tool.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToolConfigs, err)
	}

	if cfg.Spring.JPA.ShowSQL != "" {
		if _, err := strconv.ParseBool(cfg.Spring.JPA.ShowSQL); err != nil {
			return fmt.Errorf("%w: show-sql %q is not a boolean", ErrInvalidJPAConfigs, cfg.Spring.JPA.ShowSQL)
		}
	}

	return nil
}
