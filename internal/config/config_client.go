// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"maps"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-apiclient/apiclient"
)

// ClientOptions maps the merged configuration onto [apiclient.Options].
// job receives debug lines and log receives the client's own diagnostics.
func (cfg *StructuredConfig) ClientOptions(job apiclient.Job, log *zerolog.Logger) apiclient.Options {
	opts := apiclient.Options{
		BaseURL:       cfg.Client.BaseURL,
		APIKey:        cfg.Client.APIKey,
		Debug:         cfg.Client.Debug,
		Job:           job,
		Logger:        log,
		TraceIDHeader: cfg.Client.TraceIDHeader,
	}
	if cfg.Client.Retries != nil {
		opts.Retries = apiclient.RetryCount(*cfg.Client.Retries)
	}
	if len(cfg.Client.Headers) > 0 {
		opts.Headers = maps.Clone(cfg.Client.Headers)
	}
	return opts
}

// Request builds the call described by the positional arguments. A body that
// is valid JSON is sent as is; anything else is sent as a JSON string.
func (cfg *StructuredConfig) Request() apiclient.Request {
	req := apiclient.Request{
		Method: cfg.Call.Method,
		Path:   cfg.Call.Path,
	}

	body := strings.TrimSpace(cfg.Call.Body)
	switch {
	case body == "":
	case json.Valid([]byte(body)):
		req.Body = json.RawMessage(body)
	default:
		req.Body = body
	}
	return req
}
