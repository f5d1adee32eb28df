// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the layout of the JSON config file.
type StructuredJSONConfig struct {
	Client struct {
		BaseURL       string            `json:"base_url"`
		APIKey        string            `json:"api_key"`
		Headers       map[string]string `json:"headers,omitempty"`
		Retries       *int              `json:"retries,omitempty"`
		Debug         bool              `json:"debug"`
		TraceIDHeader string            `json:"trace_header"`
	} `json:"client"`

	Log struct {
		File string `json:"file"`
	} `json:"log"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Client: Client{
			BaseURL:       jsonCfg.Client.BaseURL,
			APIKey:        jsonCfg.Client.APIKey,
			Headers:       jsonCfg.Client.Headers,
			Retries:       jsonCfg.Client.Retries,
			Debug:         jsonCfg.Client.Debug,
			TraceIDHeader: jsonCfg.Client.TraceIDHeader,
		},
		Log: Log{
			File: jsonCfg.Log.File,
		},
	}

	return cfg, nil
}
