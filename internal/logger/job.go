// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"context"

	"github.com/MKhiriev/go-apiclient/apiclient"
	"github.com/rs/zerolog"
)

// Job writes apiclient debug lines into a *Logger.
type Job struct {
	logger *Logger
}

var _ apiclient.Job = (*Job)(nil)

// NewJob returns an [apiclient.Job] backed by l. A nil l discards output.
func NewJob(l *Logger) *Job {
	if l == nil {
		l = Nop()
	}
	return &Job{logger: l}
}

// Log implements [apiclient.Job]. The level is mapped onto the matching
// zerolog level; unknown levels are written without one.
func (j *Job) Log(_ context.Context, level apiclient.LogLevel, message string) error {
	j.logger.WithLevel(zerologLevel(level)).
		Str("source", "http").
		Msg(message)
	return nil
}

func zerologLevel(level apiclient.LogLevel) zerolog.Level {
	switch level {
	case apiclient.LogLevelDebug:
		return zerolog.DebugLevel
	case apiclient.LogLevelInfo:
		return zerolog.InfoLevel
	case apiclient.LogLevelWarn:
		return zerolog.WarnLevel
	case apiclient.LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}
