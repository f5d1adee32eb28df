// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-apiclient/internal/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/MKhiriev/go-apiclient/apiclient"

// WithTraceID stores a trace ID in ctx. When Options.TraceIDHeader is set,
// calls made with ctx send this ID instead of a generated one.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return utils.WithTraceID(ctx, traceID)
}

// traceIDHandler stamps header with the context trace ID or a fresh UUIDv7.
func traceIDHandler(header string, gen *utils.UUIDGenerator) OutboundHandler {
	return func(ctx context.Context, a *Attempt) error {
		if a.Header.Get(header) != "" {
			return nil
		}
		traceID, ok := utils.GetTraceIDFromContext(ctx)
		if !ok {
			traceID = gen.Generate()
		}
		a.Header.Set(header, traceID)
		return nil
	}
}

// propagationHandler injects W3C trace context of the active span.
func propagationHandler(p propagation.TextMapPropagator) OutboundHandler {
	return func(ctx context.Context, a *Attempt) error {
		p.Inject(ctx, propagation.HeaderCarrier(a.Header))
		return nil
	}
}

// callSpan is the client span that covers all attempts of one call.
type callSpan struct {
	span trace.Span
}

func startCallSpan(ctx context.Context, tracer trace.Tracer, baseURL string, req Request) (context.Context, callSpan) {
	if tracer == nil {
		return ctx, callSpan{}
	}
	method := strings.ToUpper(req.Method)
	ctx, span := tracer.Start(ctx, "HTTP "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", baseURL+req.Path),
			attribute.String("url.path", req.Path),
		),
	)
	return ctx, callSpan{span: span}
}

func (s callSpan) attempt(a *Attempt) {
	if s.span == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.Int("http.request.resend_count", a.Number-1)}
	if a.Response != nil {
		attrs = append(attrs, attribute.Int("http.response.status_code", a.Response.StatusCode))
	}
	s.span.AddEvent("attempt", trace.WithAttributes(attrs...))
}

func (s callSpan) end(resp *Response, err error) {
	if s.span == nil {
		return
	}
	if resp != nil {
		s.span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err != nil {
		if status := StatusOf(err); status > 0 {
			s.span.SetAttributes(attribute.Int("http.response.status_code", status))
		}
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}
