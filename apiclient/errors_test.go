// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "status and url",
			err:  &Error{Status: 404, Details: "not found", URL: "/widgets"},
			want: "HTTP 404: not found (/widgets)",
		},
		{
			name: "no status no url",
			err:  &Error{Details: "connection refused"},
			want: "HTTP Unknown: connection refused",
		},
		{
			name: "no status with url",
			err:  &Error{Details: "timeout", URL: "/slow"},
			want: "HTTP Unknown: timeout (/slow)",
		},
		{
			name: "status without url",
			err:  &Error{Status: 502, Details: "bad gateway"},
			want: "HTTP 502: bad gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("dial failed")
	err := fmt.Errorf("wrapped: %w", &Error{Details: "x", Err: inner})

	assert.ErrorIs(t, err, inner)

	var apiErr *Error
	assert.ErrorAs(t, err, &apiErr)
}

func TestPredicates(t *testing.T) {
	network := &Error{Details: "refused", Err: &url.Error{Op: "Get", URL: "http://h", Err: errors.New("refused")}}
	local := &Error{Details: "encode", Err: errors.New("json: unsupported type: chan int")}
	canceled := &Error{Details: "canceled", Err: context.Canceled}
	server := &Error{Status: 503, Err: &statusError{code: 503}}
	client := &Error{Status: 404, Err: &statusError{code: 404}}

	assert.True(t, IsNetwork(network))
	assert.True(t, IsNetwork(&Error{Err: timeoutError{}}))
	assert.False(t, IsNetwork(local), "errors raised before sending are not network failures")
	assert.False(t, IsNetwork(canceled))
	assert.False(t, IsNetwork(server))
	assert.False(t, IsNetwork(errors.New("plain")))

	assert.True(t, IsServer(server))
	assert.False(t, IsServer(client))

	assert.True(t, IsClient(client))
	assert.False(t, IsClient(server))
	assert.False(t, IsClient(network))

	assert.Equal(t, 503, StatusOf(server))
	assert.Equal(t, 0, StatusOf(network))
	assert.Equal(t, 0, StatusOf(errors.New("plain")))
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var _ net.Error = timeoutError{}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(&Error{Err: timeoutError{}}))
	assert.False(t, IsTimeout(&Error{Err: errors.New("refused")}))
}

func TestStatusError_Message(t *testing.T) {
	assert.Equal(t, "request failed with status code 418", (&statusError{code: 418}).Error())
}
