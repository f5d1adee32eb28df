// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// PayloadLogLimit is the number of characters of a serialized payload
	// written to the debug log.
	PayloadLogLimit = 500

	payloadEllipsis = "..."
)

// debugLogger writes the client's debug lines through a Job. Failures of the
// Job are reported to the zerolog logger and never reach the caller.
type debugLogger struct {
	job    Job
	logger *zerolog.Logger
}

func (d debugLogger) emit(ctx context.Context, message string) {
	if err := d.job.Log(ctx, LogLevelDebug, message); err != nil {
		loggerFrom(ctx, d.logger).Warn().Err(err).Str("line", message).Msg("debug log collaborator failed")
	}
}

// loggerFrom returns l, or the zerolog logger carried by ctx when l is nil.
func loggerFrom(ctx context.Context, l *zerolog.Logger) *zerolog.Logger {
	if l != nil {
		return l
	}
	return log.Ctx(ctx)
}

// outbound logs the method and full URL, then the truncated payload.
func (d debugLogger) outbound(ctx context.Context, a *Attempt) error {
	d.emit(ctx, fmt.Sprintf("[HTTP →] %s %s%s", strings.ToUpper(a.Method), a.BaseURL, a.Path))
	if !isEmptyData(a.Body) {
		d.emit(ctx, "Payload: "+truncatePayload(serializePayload(a.Body)))
	}
	return nil
}

// inbound logs the status and path, or the failure and its message.
func (d debugLogger) inbound(ctx context.Context, a *Attempt) error {
	if !a.Failed() {
		d.emit(ctx, fmt.Sprintf("[HTTP ←] %d %s", a.Response.StatusCode, a.Path))
		return nil
	}
	d.emit(ctx, fmt.Sprintf("[HTTP ×] %s %s → %s", a.Err.statusText(), a.Err.URL, a.Err.Details))
	return nil
}

// truncatePayload keeps the first PayloadLogLimit characters and always
// appends the ellipsis, even when nothing was cut.
func truncatePayload(s string) string {
	r := []rune(s)
	if len(r) > PayloadLogLimit {
		r = r[:PayloadLogLimit]
	}
	return string(r) + payloadEllipsis
}

// serializePayload renders a request body as JSON text. Raw JSON bytes are
// kept as they are; other byte slices are treated as text.
func serializePayload(body any) string {
	var v any = body
	if b, ok := body.([]byte); ok {
		if json.Valid(b) {
			return string(b)
		}
		v = string(b)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return strconv.Quote(fmt.Sprintf("%v", body))
	}
	return string(data)
}
