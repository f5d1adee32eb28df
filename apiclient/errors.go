// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strconv"
)

// Construction errors returned by [New].
var (
	ErrEmptyBaseURL    = errors.New("base url is required")
	ErrInvalidBaseURL  = errors.New("invalid base url")
	ErrNegativeRetries = errors.New("retries must not be negative")
)

// Error is the single error shape returned by every failed call.
//
// Error() renders "HTTP <status|Unknown>: <details>[ (<url>)]".
type Error struct {
	// Status is the HTTP status code, or 0 when no response was received.
	Status int
	// Details is the message extracted from the response body or the cause.
	Details string
	// URL is the request path as issued by the caller. It may be empty.
	URL string
	// Err is the underlying transport, status or handler error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "HTTP " + e.statusText() + ": " + e.Details
	if e.URL != "" {
		msg += " (" + e.URL + ")"
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// HasStatus reports whether a response status was received.
func (e *Error) HasStatus() bool {
	return e.Status > 0
}

func (e *Error) statusText() string {
	if e.HasStatus() {
		return strconv.Itoa(e.Status)
	}
	return "Unknown"
}

// statusError is the cause recorded for responses outside 2xx.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "request failed with status code " + strconv.Itoa(e.code)
}

// IsNetwork reports whether err is a transport failure where no response
// was received, excluding caller cancellation. Errors raised before the
// request left the client, such as body encoding, are not network failures.
func IsNetwork(err error) bool {
	var e *Error
	if !errors.As(err, &e) || e.HasStatus() || e.Err == nil {
		return false
	}
	if errors.Is(e.Err, context.Canceled) {
		return false
	}

	var (
		ue *url.Error
		ne net.Error
	)
	return errors.As(e.Err, &ue) || errors.As(e.Err, &ne)
}

// IsTimeout reports whether err is a transport timeout.
func IsTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// IsServer reports whether err carries a 5xx status.
func IsServer(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status >= 500
}

// IsClient reports whether err carries a 4xx status.
func IsClient(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status >= 400 && e.Status < 500
}

// StatusOf returns the status carried by err, or 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
