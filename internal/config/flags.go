// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// HeaderList collects repeatable "Name: value" header flags.
// It implements the flag.Value interface.
type HeaderList map[string]string

// ParseFlags parses command-line flags and positional arguments.
//
// Flags:
//
//	-u base URL
//	-k API key
//	-H header in form "Name: value", repeatable
//	-r number of retries
//	-debug enable debug lines
//	-trace-header header carrying a generated trace ID
//	-log-file log file path
//	-c/-config json file path with configs
//
// Positional arguments: METHOD PATH [JSON-BODY].
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		baseURL        string
		apiKey         string
		headers        = HeaderList{}
		retries        retryFlag
		debug          bool
		traceHeader    string
		logFile        string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("apicall", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&baseURL, "u", "", "Base URL")
	fs.StringVar(&apiKey, "k", "", "API key sent as bearer token")
	fs.Var(&headers, "H", "Header in form `Name: value` (repeatable)")
	fs.Var(&retries, "r", "Number of retries")
	fs.BoolVar(&debug, "debug", false, "Enable debug logging")
	fs.StringVar(&traceHeader, "trace-header", "", "Header carrying a generated trace ID")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		Client: Client{
			BaseURL:       baseURL,
			APIKey:        apiKey,
			Retries:       retries.value,
			Debug:         debug,
			TraceIDHeader: traceHeader,
		},
		Log:          Log{File: logFile},
		Call:         parseCall(fs.Args()),
		JSONFilePath: jsonConfigPath,
	}
	if len(headers) > 0 {
		cfg.Client.Headers = headers
	}

	return cfg, nil
}

func parseCall(positional []string) Call {
	var c Call
	if len(positional) > 0 {
		c.Method = strings.ToUpper(positional[0])
	}
	if len(positional) > 1 {
		c.Path = positional[1]
	}
	if len(positional) > 2 {
		c.Body = strings.Join(positional[2:], " ")
	}
	return c
}

// String returns the headers as "Name: value" pairs sorted by name.
func (h *HeaderList) String() string {
	if h == nil || len(*h) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(*h))
	for k, v := range *h {
		pairs = append(pairs, k+": "+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ", ")
}

// Set parses "Name: value" and adds it to the list.
func (h *HeaderList) Set(s string) error {
	name, value, ok := strings.Cut(s, ":")
	if !ok {
		return errors.New("need header in a form `Name: value`")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("header name is empty")
	}

	if *h == nil {
		*h = HeaderList{}
	}
	(*h)[name] = strings.TrimSpace(value)
	return nil
}

// retryFlag distinguishes an unset -r from an explicit -r 0.
type retryFlag struct {
	value *int
}

func (r *retryFlag) String() string {
	if r == nil || r.value == nil {
		return ""
	}
	return strconv.Itoa(*r.value)
}

func (r *retryFlag) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	r.value = &n
	return nil
}
