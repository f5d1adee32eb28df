// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"bytes"
	"encoding/json"
	"reflect"
)

const (
	msgUnknownErrorFormat = "Unknown error format"
	msgUnknownError       = "Unknown error"
)

// ExtractErrorMessage returns a human-readable message for a failed call.
//
// Non-empty data is returned verbatim when it is a string and as JSON text
// otherwise; data that cannot be serialized yields "Unknown error format".
// Without data the cause's message is used, or "Unknown error" when there
// is none.
func ExtractErrorMessage(data any, cause error) string {
	if !isEmptyData(data) {
		switch v := data.(type) {
		case string:
			return v
		case []byte:
			return string(v)
		}
		b, err := json.Marshal(data)
		if err != nil {
			return msgUnknownErrorFormat
		}
		return string(b)
	}

	if cause != nil {
		if msg := cause.Error(); msg != "" {
			return msg
		}
	}
	return msgUnknownError
}

// responseData turns a raw response body into the value handed to
// [ExtractErrorMessage]: JSON string literals become Go strings, other
// JSON stays raw, and anything else is treated as text.
func responseData(body []byte) any {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	if !json.Valid(body) {
		return string(body)
	}
	if body[0] == '"' {
		var s string
		if err := json.Unmarshal(body, &s); err == nil {
			return s
		}
	}
	return json.RawMessage(body)
}

// isEmptyData reports values that carry no usable payload: nil, empty
// strings and byte slices, zero numbers, false, and their raw JSON forms.
func isEmptyData(data any) bool {
	switch v := data.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []byte:
		return len(v) == 0
	case json.RawMessage:
		s := string(bytes.TrimSpace(v))
		return s == "" || s == "null" || s == "false" || s == "0"
	}

	switch rv := reflect.ValueOf(data); rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	default:
		return false
	}
}
