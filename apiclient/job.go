// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import "context"

// LogLevel is the severity passed to a [Job] when the client emits a log line.
// The client itself only ever logs at [LogLevelDebug].
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the lower-case level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

//go:generate mockgen -source=job.go -destination=../internal/mock/job_mock.go -package=mock

// Job is the logging collaborator that owns the destination and level
// semantics of the client's debug output. A nil Job disables logging.
type Job interface {
	// Log writes message at level. The call blocks until the collaborator
	// has accepted the line.
	Log(ctx context.Context, level LogLevel, message string) error
}

// JobFunc adapts an ordinary function to the [Job] interface.
type JobFunc func(ctx context.Context, level LogLevel, message string) error

// Log calls f(ctx, level, message).
func (f JobFunc) Log(ctx context.Context, level LogLevel, message string) error {
	return f(ctx, level, message)
}
