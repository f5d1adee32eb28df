// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientConfig holds the transport settings applied by [NewHTTPClient].
type HTTPClientConfig struct {
	// BaseURL is prepended to relative request URLs.
	BaseURL string
	// Timeout bounds a single request, including reading the body.
	Timeout time.Duration
	// Transport replaces the default round tripper when non-nil.
	Transport http.RoundTripper
	// Logger receives resty's own warnings and errors.
	Logger zerolog.Logger
}

// NewHTTPClient creates and returns a new HTTPClient instance configured
// from cfg. Resty's built-in retries are disabled; callers retry on their own.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientConfig{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 15 * time.Second,
//	})
//	resp, err := client.R().Get("/users")
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetLogger(restyLogger{cfg.Logger})

	if cfg.Transport != nil {
		client.SetTransport(cfg.Transport)
	}

	return &HTTPClient{Client: client}
}

// restyLogger routes resty's internal log output into zerolog.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}
