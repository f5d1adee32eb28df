// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type emptyMessageError struct{}

func (emptyMessageError) Error() string { return "" }

func TestExtractErrorMessage(t *testing.T) {
	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	tests := []struct {
		name  string
		data  any
		cause error
		want  string
	}{
		{
			name: "string data is returned verbatim",
			data: "widget not found",
			want: "widget not found",
		},
		{
			name: "object data is serialized as JSON",
			data: map[string]any{"error": "bad", "code": 7},
			want: `{"code":7,"error":"bad"}`,
		},
		{
			name: "raw JSON is returned compactly",
			data: json.RawMessage(`{"error": "bad"}`),
			want: `{"error":"bad"}`,
		},
		{
			name: "byte data is treated as text",
			data: []byte("plain text"),
			want: "plain text",
		},
		{
			name: "unserializable data yields the sentinel",
			data: make(chan int),
			want: "Unknown error format",
		},
		{
			name: "cyclic data yields the sentinel",
			data: cyclic,
			want: "Unknown error format",
		},
		{
			name:  "no data falls back to the cause",
			cause: errors.New("connection refused"),
			want:  "connection refused",
		},
		{
			name:  "empty string data falls back to the cause",
			data:  "",
			cause: errors.New("timeout"),
			want:  "timeout",
		},
		{
			name:  "JSON null falls back to the cause",
			data:  json.RawMessage("null"),
			cause: errors.New("boom"),
			want:  "boom",
		},
		{
			name:  "zero number falls back to the cause",
			data:  0,
			cause: errors.New("boom"),
			want:  "boom",
		},
		{
			name:  "false falls back to the cause",
			data:  false,
			cause: errors.New("boom"),
			want:  "boom",
		},
		{
			name: "zero float without cause",
			data: 0.0,
			want: "Unknown error",
		},
		{
			name: "non-zero number is serialized",
			data: 42,
			want: "42",
		},
		{
			name: "true is serialized",
			data: true,
			want: "true",
		},
		{
			name: "no data and no cause",
			want: "Unknown error",
		},
		{
			name:  "cause with empty message",
			cause: emptyMessageError{},
			want:  "Unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractErrorMessage(tt.data, tt.cause))
		})
	}
}

func TestResponseData(t *testing.T) {
	tests := []struct {
		name string
		body string
		want any
	}{
		{name: "empty body", body: "", want: nil},
		{name: "whitespace body", body: "  \n", want: nil},
		{name: "plain text", body: "Not Found", want: "Not Found"},
		{name: "JSON string literal", body: `"gone"`, want: "gone"},
		{name: "JSON object", body: `{"a":1}`, want: json.RawMessage(`{"a":1}`)},
		{name: "JSON array", body: `[1,2]`, want: json.RawMessage(`[1,2]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, responseData([]byte(tt.body)))
		})
	}
}

func TestIsEmptyData(t *testing.T) {
	empty := []any{nil, "", []byte{}, json.RawMessage("null"), json.RawMessage(" 0 "), 0, int64(0), uint8(0), 0.0, false}
	for _, v := range empty {
		assert.True(t, isEmptyData(v), "%#v", v)
	}

	filled := []any{"x", []byte("x"), json.RawMessage(`{}`), 1, -1, 0.5, true, map[string]any{}, struct{}{}}
	for _, v := range filled {
		assert.False(t, isEmptyData(v), "%#v", v)
	}
}
