// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logLine struct {
	level   LogLevel
	message string
}

func recordingJob(lines *[]logLine, err error) JobFunc {
	return func(_ context.Context, level LogLevel, message string) error {
		*lines = append(*lines, logLine{level: level, message: message})
		return err
	}
}

func TestTruncatePayload(t *testing.T) {
	t.Run("short payload still gets ellipsis", func(t *testing.T) {
		assert.Equal(t, `{"a":1}...`, truncatePayload(`{"a":1}`))
	})

	t.Run("empty payload", func(t *testing.T) {
		assert.Equal(t, "...", truncatePayload(""))
	})

	t.Run("exactly at limit", func(t *testing.T) {
		s := strings.Repeat("x", PayloadLogLimit)
		assert.Equal(t, s+"...", truncatePayload(s))
	})

	t.Run("long payload is cut", func(t *testing.T) {
		got := truncatePayload(strings.Repeat("y", 1200))
		assert.Equal(t, strings.Repeat("y", PayloadLogLimit)+"...", got)
	})

	t.Run("multibyte characters are not split", func(t *testing.T) {
		got := truncatePayload(strings.Repeat("ж", 600))
		assert.Equal(t, PayloadLogLimit+3, len([]rune(got)))
		assert.True(t, strings.HasSuffix(got, "ж..."))
	})
}

func TestSerializePayload(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{"object", map[string]int{"a": 1}, `{"a":1}`},
		{"struct", struct {
			Name string `json:"name"`
		}{"n"}, `{"name":"n"}`},
		{"string", "plain", `"plain"`},
		{"json bytes", []byte(`{"raw":true}`), `{"raw":true}`},
		{"text bytes", []byte("not json"), `"not json"`},
		{"unsupported", make(chan int), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := serializePayload(tt.body)
			if tt.want == "" {
				assert.True(t, strings.HasPrefix(got, `"0x`), got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDebugLogger_Outbound(t *testing.T) {
	var lines []logLine
	dl := debugLogger{job: recordingJob(&lines, nil)}

	err := dl.outbound(context.Background(), &Attempt{
		Method:  "post",
		BaseURL: "https://api.example.com",
		Path:    "/users",
		Body:    map[string]string{"name": "ann"},
	})
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, logLine{LogLevelDebug, "[HTTP →] POST https://api.example.com/users"}, lines[0])
	assert.Equal(t, logLine{LogLevelDebug, `Payload: {"name":"ann"}...`}, lines[1])
}

func TestDebugLogger_Outbound_NoBody(t *testing.T) {
	var lines []logLine
	dl := debugLogger{job: recordingJob(&lines, nil)}

	require.NoError(t, dl.outbound(context.Background(), &Attempt{Method: "GET", BaseURL: "http://h", Path: "/x"}))

	require.Len(t, lines, 1)
	assert.Equal(t, "[HTTP →] GET http://h/x", lines[0].message)
}

func TestDebugLogger_Inbound(t *testing.T) {
	var lines []logLine
	dl := debugLogger{job: recordingJob(&lines, nil)}

	require.NoError(t, dl.inbound(context.Background(), &Attempt{
		Path:     "/users",
		Response: &Response{StatusCode: 201},
	}))
	require.NoError(t, dl.inbound(context.Background(), &Attempt{
		Path: "/users/9",
		Err:  &Error{Status: 404, Details: "not found", URL: "/users/9"},
	}))
	require.NoError(t, dl.inbound(context.Background(), &Attempt{
		Path: "/users",
		Err:  &Error{Details: "connection refused", URL: "/users"},
	}))

	require.Len(t, lines, 3)
	assert.Equal(t, "[HTTP ←] 201 /users", lines[0].message)
	assert.Equal(t, "[HTTP ×] 404 /users/9 → not found", lines[1].message)
	assert.Equal(t, "[HTTP ×] Unknown /users → connection refused", lines[2].message)
}

func TestDebugLogger_JobFailureIsReported(t *testing.T) {
	var (
		lines []logLine
		buf   bytes.Buffer
	)
	zl := zerolog.New(&buf)
	dl := debugLogger{job: recordingJob(&lines, errors.New("sink closed")), logger: &zl}

	err := dl.outbound(context.Background(), &Attempt{Method: "GET", BaseURL: "http://h", Path: "/"})

	require.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Contains(t, buf.String(), "debug log collaborator failed")
	assert.Contains(t, buf.String(), "sink closed")
}

func TestLoggerFrom(t *testing.T) {
	var buf bytes.Buffer
	ctxLogger := zerolog.New(&buf)
	ctx := ctxLogger.WithContext(context.Background())

	loggerFrom(ctx, nil).Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")

	var own bytes.Buffer
	ownLogger := zerolog.New(&own)
	loggerFrom(ctx, &ownLogger).Info().Msg("explicit")
	assert.Contains(t, own.String(), "explicit")
	assert.NotContains(t, buf.String(), "explicit")
}
