// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"net/http"
)

// Attempt is the state of one try of a call as seen by handlers.
type Attempt struct {
	// Number is 1 for the first try and grows by one per retry.
	Number int
	Method string
	// BaseURL is the normalized base URL of the client.
	BaseURL string
	// Path is the request path as issued by the caller.
	Path string
	// Header is the outgoing header set. Outbound handlers may modify it.
	Header http.Header
	// Body is the request payload as passed by the caller.
	Body any

	// Response is set once a response was received, whatever its status.
	Response *Response
	// Err is the normalized failure of this attempt, nil on success.
	Err *Error
}

// Failed reports whether the attempt ended with an error.
func (a *Attempt) Failed() bool {
	return a.Err != nil
}

// OutboundHandler runs before an attempt is sent. A non-nil error aborts
// the call without retrying.
type OutboundHandler func(ctx context.Context, a *Attempt) error

// InboundHandler runs after an attempt completed, successfully or not.
// A non-nil error becomes the final result of the call.
type InboundHandler func(ctx context.Context, a *Attempt) error

// pipeline holds the ordered handler lists invoked around every attempt.
type pipeline struct {
	outbound []OutboundHandler
	inbound  []InboundHandler
}

func (p *pipeline) useOutbound(h ...OutboundHandler) {
	for _, fn := range h {
		if fn != nil {
			p.outbound = append(p.outbound, fn)
		}
	}
}

func (p *pipeline) useInbound(h ...InboundHandler) {
	for _, fn := range h {
		if fn != nil {
			p.inbound = append(p.inbound, fn)
		}
	}
}

func (p *pipeline) before(ctx context.Context, a *Attempt) error {
	for _, h := range p.outbound {
		if err := h(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (p *pipeline) after(ctx context.Context, a *Attempt) error {
	for _, h := range p.inbound {
		if err := h(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
