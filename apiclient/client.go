// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-apiclient/internal/utils"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Client sends requests to a single base URL with the default headers,
// retry policy and handler pipeline fixed at construction. A Client holds no
// per-call state and is safe for concurrent use.
type Client struct {
	http     *utils.HTTPClient
	baseURL  string
	headers  http.Header
	policy   RetryPolicy
	pipeline pipeline
	tracer   trace.Tracer
	logger   *zerolog.Logger
}

// New builds a Client from opts.
//
// The default headers are Content-Type: application/json, the bearer token
// derived from opts.APIKey and opts.Headers, in increasing precedence.
// Failed attempts are retried per the retry policy, and debug lines are
// written to opts.Job when opts.Debug is set.
//
// Returns an error only when opts are invalid.
func New(opts Options) (*Client, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	baseURL, err := normalizeBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	restyLogger := zerolog.Nop()
	if opts.Logger != nil {
		restyLogger = *opts.Logger
	}

	c := &Client{
		http: utils.NewHTTPClient(utils.HTTPClientConfig{
			BaseURL:   baseURL,
			Timeout:   RequestTimeout,
			Transport: opts.Transport,
			Logger:    restyLogger,
		}),
		baseURL: baseURL,
		headers: mergeHeaders(opts.APIKey, opts.Headers),
		policy:  opts.RetryPolicy,
		logger:  opts.Logger,
	}
	if c.policy == nil {
		c.policy = NewExponentialBackoff(opts.retries())
	}

	if opts.TraceIDHeader != "" {
		c.pipeline.useOutbound(traceIDHandler(http.CanonicalHeaderKey(opts.TraceIDHeader), utils.NewUUIDGenerator()))
	}
	if opts.Tracer != nil {
		c.tracer = opts.Tracer.Tracer(tracerName)
		c.pipeline.useOutbound(propagationHandler(propagation.TraceContext{}))
	}
	c.pipeline.useOutbound(opts.Outbound...)

	if opts.Debug && opts.Job != nil {
		dl := debugLogger{job: opts.Job, logger: opts.Logger}
		c.pipeline.useOutbound(dl.outbound)
		c.pipeline.useInbound(dl.inbound)
	}
	c.pipeline.useInbound(opts.Inbound...)

	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Headers returns a copy of the default header set.
func (c *Client) Headers() http.Header {
	return c.headers.Clone()
}

// Do sends req, retrying failed attempts per the retry policy.
// Every failure is returned as *[Error].
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if req.Method == "" {
		req.Method = http.MethodGet
	}

	ctx, span := startCallSpan(ctx, c.tracer, c.baseURL, req)
	resp, err := c.execute(ctx, req, span)
	span.end(resp, err)

	return resp, err
}

// Get sends a GET request to path.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path})
}

// Post sends body to path with POST.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends body to path with PUT.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch sends body to path with PATCH.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete sends a DELETE request to path.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) execute(ctx context.Context, req Request, span callSpan) (*Response, error) {
	payload, err := encodeBody(req.Body)
	if err != nil {
		return nil, &Error{
			Details: ExtractErrorMessage(nil, err),
			URL:     req.Path,
			Err:     fmt.Errorf("encode request body: %w", err),
		}
	}

	var (
		attempt int
		result  *Response
	)

	backoff := retry.BackoffFunc(func() (time.Duration, bool) {
		return c.policy.DelayFor(attempt), false
	})

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		a, err := c.runAttempt(ctx, req, payload, attempt, span)
		if err != nil {
			return err
		}
		if !a.Failed() {
			result = a.Response
			return nil
		}
		if ctx.Err() != nil || !c.policy.ShouldRetry(attempt, a.Err) {
			return a.Err
		}

		loggerFrom(ctx, c.logger).Debug().
			Int("attempt", attempt).
			Str("method", req.Method).
			Str("path", req.Path).
			Err(a.Err).
			Msg("retrying http call")
		return retry.RetryableError(a.Err)
	})
	if err != nil {
		return nil, normalize(err, 0, req.Path)
	}

	return result, nil
}

// runAttempt performs one try: outbound handlers, the exchange, inbound
// handlers. The returned error is set only when a handler failed.
func (c *Client) runAttempt(ctx context.Context, req Request, payload any, number int, span callSpan) (*Attempt, error) {
	a := &Attempt{
		Number:  number,
		Method:  req.Method,
		BaseURL: c.baseURL,
		Path:    req.Path,
		Header:  c.requestHeader(req.Headers),
		Body:    req.Body,
	}

	if err := c.pipeline.before(ctx, a); err != nil {
		return nil, normalize(err, 0, a.Path)
	}

	c.send(ctx, a, req.Query, payload)
	span.attempt(a)

	if err := c.pipeline.after(ctx, a); err != nil {
		status := 0
		if a.Response != nil {
			status = a.Response.StatusCode
		}
		return nil, normalize(err, status, a.Path)
	}

	return a, nil
}

// send performs the exchange and records the response or the failure on a.
// Any status outside 2xx is a failure.
func (c *Client) send(ctx context.Context, a *Attempt, query map[string]string, payload any) {
	r := c.http.R().SetContext(ctx)
	r.Header = a.Header.Clone()
	if len(query) > 0 {
		r.SetQueryParams(query)
	}
	if payload != nil {
		r.SetBody(payload)
	}

	res, err := r.Execute(a.Method, a.Path)
	if err != nil {
		a.Err = &Error{
			Details: ExtractErrorMessage(nil, err),
			URL:     a.Path,
			Err:     err,
		}
		return
	}

	a.Response = &Response{
		StatusCode: res.StatusCode(),
		Header:     res.Header(),
		Body:       res.Body(),
	}
	if !a.Response.IsSuccess() {
		cause := &statusError{code: a.Response.StatusCode}
		a.Err = &Error{
			Status:  a.Response.StatusCode,
			Details: ExtractErrorMessage(responseData(a.Response.Body), cause),
			URL:     a.Path,
			Err:     cause,
		}
	}
}

// encodeBody serializes body once per call so that an unencodable payload
// fails before any attempt. Strings and byte slices are sent as they are.
func encodeBody(body any) (any, error) {
	if isEmptyData(body) {
		return nil, nil
	}
	switch v := body.(type) {
	case string, []byte:
		return v, nil
	}
	return json.Marshal(body)
}

func (c *Client) requestHeader(override map[string]string) http.Header {
	h := c.headers.Clone()
	for k, v := range override {
		h.Set(k, v)
	}
	return h
}

// normalize converts any failure into *Error, keeping an existing one as is.
func normalize(err error, status int, path string) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{
		Status:  status,
		Details: ExtractErrorMessage(nil, err),
		URL:     path,
		Err:     err,
	}
}
