// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetStructuredConfig].
var (
	// ErrMissingBaseURL indicates that no source provided a base URL.
	ErrMissingBaseURL = errors.New("base url is not configured")
	// ErrInvalidRetries indicates a negative retry count.
	ErrInvalidRetries = errors.New("retries must not be negative")
	// ErrMissingMethod indicates that no METHOD positional argument was given.
	ErrMissingMethod = errors.New("http method is required")
)
