// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

const (
	defaultRetryBase   = 100 * time.Millisecond
	defaultRetryJitter = 0.2
)

// RetryPolicy decides whether a failed attempt is repeated and how long to
// wait before the next one. attempt is the 1-based number of the attempt
// that just failed.
type RetryPolicy interface {
	ShouldRetry(attempt int, err error) bool
	DelayFor(attempt int) time.Duration
}

// ExponentialBackoff retries network failures and 5xx responses up to
// MaxRetries times, waiting Base*2^attempt plus up to Jitter of that.
type ExponentialBackoff struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int
	// Base is the delay unit. Zero means no delay.
	Base time.Duration
	// Jitter is the upper bound of the random extra delay as a fraction of
	// the computed delay (0..1).
	Jitter float64
	// MaxDelay caps a single delay. Zero means uncapped.
	MaxDelay time.Duration
	// Retryable classifies errors. Nil means [IsRetryable].
	Retryable func(error) bool
}

// NewExponentialBackoff returns the default policy: 100ms base and 20% jitter.
func NewExponentialBackoff(maxRetries int) ExponentialBackoff {
	return ExponentialBackoff{
		MaxRetries: maxRetries,
		Base:       defaultRetryBase,
		Jitter:     defaultRetryJitter,
	}
}

// ShouldRetry implements [RetryPolicy].
func (b ExponentialBackoff) ShouldRetry(attempt int, err error) bool {
	if err == nil || attempt > b.MaxRetries {
		return false
	}
	retryable := b.Retryable
	if retryable == nil {
		retryable = IsRetryable
	}
	return retryable(err)
}

// DelayFor implements [RetryPolicy].
func (b ExponentialBackoff) DelayFor(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := float64(b.Base) * math.Pow(2, float64(attempt))

	if j := b.Jitter; j > 0 {
		if j > 1 {
			j = 1
		}
		d += d * j * rand.Float64()
	}

	if b.MaxDelay > 0 && d > float64(b.MaxDelay) {
		d = float64(b.MaxDelay)
	}
	if d > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d)
}

// IsRetryable reports whether err is worth another attempt: a network
// failure, a transport timeout, or a 5xx response. 4xx responses and
// caller cancellation are never retried.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var e *Error
	if errors.As(err, &e) {
		if e.HasStatus() {
			return e.Status >= 500
		}
		return IsNetwork(err) || IsTimeout(err)
	}

	return IsTimeout(err)
}

// NoRetry is a policy that never retries.
type NoRetry struct{}

// ShouldRetry implements [RetryPolicy].
func (NoRetry) ShouldRetry(int, error) bool { return false }

// DelayFor implements [RetryPolicy].
func (NoRetry) DelayFor(int) time.Duration { return 0 }
