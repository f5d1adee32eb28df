// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Client.BaseURL) == "" {
		return ErrMissingBaseURL
	}

	if cfg.Client.Retries != nil && *cfg.Client.Retries < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRetries, *cfg.Client.Retries)
	}

	if cfg.Call.Method == "" {
		return ErrMissingMethod
	}

	return nil
}
