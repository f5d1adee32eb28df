// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeHeaders(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		headers map[string]string
		want    map[string]string
		absent  []string
	}{
		{
			name: "defaults only",
			want: map[string]string{"Content-Type": "application/json"},
			absent: []string{"Authorization"},
		},
		{
			name:   "api key adds bearer header",
			apiKey: "secret",
			want: map[string]string{
				"Content-Type":  "application/json",
				"Authorization": "Bearer secret",
			},
		},
		{
			name:    "caller headers override bearer",
			apiKey:  "secret",
			headers: map[string]string{"authorization": "Token other"},
			want:    map[string]string{"Authorization": "Token other"},
		},
		{
			name:    "caller headers override content type",
			headers: map[string]string{"Content-Type": "text/plain", "X-Tenant": "t1"},
			want: map[string]string{
				"Content-Type": "text/plain",
				"X-Tenant":     "t1",
			},
			absent: []string{"Authorization"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeHeaders(tt.apiKey, tt.headers)
			for k, v := range tt.want {
				assert.Equal(t, v, got.Get(k), k)
			}
			for _, k := range tt.absent {
				assert.Empty(t, got.Values(k), k)
			}
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "full url", raw: "https://api.example.com", want: "https://api.example.com"},
		{name: "trailing slash", raw: "https://api.example.com/v1/", want: "https://api.example.com/v1"},
		{name: "missing scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "surrounding spaces", raw: "  http://h  ", want: "http://h"},
		{name: "empty", raw: "  ", wantErr: ErrEmptyBaseURL},
		{name: "no host", raw: "http://", wantErr: ErrInvalidBaseURL},
		{name: "unparsable", raw: "http://[::1", wantErr: ErrInvalidBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptions_Retries(t *testing.T) {
	assert.Equal(t, DefaultRetries, Options{}.retries())
	assert.Equal(t, 0, Options{Retries: RetryCount(0)}.retries())
	assert.Equal(t, 5, Options{Retries: RetryCount(5)}.retries())
}

func TestOptions_Validate(t *testing.T) {
	assert.ErrorIs(t, Options{}.validate(), ErrEmptyBaseURL)
	assert.ErrorIs(t, Options{BaseURL: "http://h", Retries: RetryCount(-1)}.validate(), ErrNegativeRetries)
	assert.NoError(t, Options{BaseURL: "http://h"}.validate())
}
