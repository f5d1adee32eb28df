// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the apicall
// command. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Client holds the settings passed to the HTTP client factory.
	Client Client `envPrefix:"APICALL_"`

	// Log holds the destination of the command's own log output.
	Log Log `envPrefix:"APICALL_"`

	// Call describes the single request to perform. It comes from the
	// positional command-line arguments only.
	Call Call

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Client holds the options of the outbound HTTP client.
type Client struct {
	// BaseURL is prepended to the request path.
	// Env: APICALL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is sent as a bearer token when non-empty.
	// Env: APICALL_API_KEY
	APIKey string `env:"API_KEY"`

	// Headers are extra request headers in "Name:value,Name:value" form.
	// Env: APICALL_HEADERS
	Headers map[string]string `env:"HEADERS"`

	// Retries is the number of retries after the first attempt.
	// Nil keeps the client default.
	// Env: APICALL_RETRIES
	Retries *int `env:"RETRIES"`

	// Debug enables per-attempt debug lines.
	// Env: APICALL_DEBUG
	Debug bool `env:"DEBUG"`

	// TraceIDHeader names the header that carries a generated trace ID.
	// Env: APICALL_TRACE_HEADER
	TraceIDHeader string `env:"TRACE_HEADER"`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the log file. Empty means stderr.
	// Env: APICALL_LOG_FILE
	File string `env:"LOG_FILE"`
}

// Call is the request performed by the command.
type Call struct {
	Method string
	Path   string
	Body   string
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// args excludes the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
