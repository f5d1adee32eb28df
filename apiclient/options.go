// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultRetries is the number of retries applied when Options.Retries is nil.
	DefaultRetries = 2

	// RequestTimeout bounds every single attempt.
	RequestTimeout = 15 * time.Second

	headerContentType   = "Content-Type"
	headerAuthorization = "Authorization"
	contentTypeJSON     = "application/json"
)

// Options configures a [Client]. Only BaseURL is required.
//
// Options are copied by [New]; changing the caller's Headers map afterwards
// has no effect on the client.
type Options struct {
	// BaseURL is prepended to every request path. A value without a scheme
	// is treated as http.
	BaseURL string

	// APIKey, when non-empty, is sent as "Authorization: Bearer <APIKey>".
	APIKey string

	// Headers are sent with every request. They take precedence over both
	// the default Content-Type and the bearer header.
	Headers map[string]string

	// Retries is the number of retries after the first attempt.
	// Nil means [DefaultRetries]; use [RetryCount] to set an explicit value.
	Retries *int

	// Debug enables debug lines through Job.
	Debug bool

	// Job receives debug lines. Nil disables logging.
	Job Job

	// Logger receives failures of Job itself and retry diagnostics.
	// Nil falls back to the zerolog logger stored in the call context.
	Logger *zerolog.Logger

	// RetryPolicy replaces the default exponential policy built from Retries.
	RetryPolicy RetryPolicy

	// Tracer, when set, wraps every call in a client span and injects
	// W3C trace context headers.
	Tracer trace.TracerProvider

	// TraceIDHeader, when set, stamps a trace ID into that header on every
	// attempt unless the request already carries one.
	TraceIDHeader string

	// Outbound handlers run after the built-in ones before every attempt.
	Outbound []OutboundHandler

	// Inbound handlers run after the built-in ones after every attempt.
	Inbound []InboundHandler

	// Transport replaces the underlying round tripper.
	Transport http.RoundTripper
}

// RetryCount returns a pointer to n for use in Options.Retries.
func RetryCount(n int) *int {
	return &n
}

func (o Options) retries() int {
	if o.Retries == nil {
		return DefaultRetries
	}
	return *o.Retries
}

func (o Options) validate() error {
	if strings.TrimSpace(o.BaseURL) == "" {
		return ErrEmptyBaseURL
	}
	if o.retries() < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRetries, o.retries())
	}
	return nil
}

// normalizeBaseURL adds a missing scheme and strips trailing slashes.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// mergeHeaders builds the default header set in increasing precedence:
// JSON content type, bearer token, caller headers.
func mergeHeaders(apiKey string, headers map[string]string) http.Header {
	merged := make(http.Header, len(headers)+2)
	merged.Set(headerContentType, contentTypeJSON)
	if apiKey != "" {
		merged.Set(headerAuthorization, "Bearer "+apiKey)
	}
	for k, v := range headers {
		merged.Set(k, v)
	}
	return merged
}
