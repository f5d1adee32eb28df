// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"encoding/json"
	"net/http"
)

// Request describes one outbound call.
type Request struct {
	// Method is the HTTP method. Empty means GET.
	Method string
	// Path is appended to the client's base URL.
	Path string
	// Query holds URL query parameters.
	Query map[string]string
	// Headers override the client's default headers for this call.
	Headers map[string]string
	// Body is sent as JSON unless it is a string or a byte slice.
	Body any
}

// Response is a received HTTP response with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}
