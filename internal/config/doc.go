// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the apicall command.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]; [StructuredConfig.ClientOptions]
// maps the result onto [apiclient.Options].
package config
