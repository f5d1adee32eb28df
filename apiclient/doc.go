// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apiclient builds outbound HTTP clients with the cross-cutting
// behaviour every API integration needs: default JSON and bearer headers,
// retries with exponential backoff, debug logging through an optional
// [Job] collaborator and a single normalized [Error] type.
//
// A client is created once per set of [Options] and shared by callers:
//
//	client, err := apiclient.New(apiclient.Options{
//	    BaseURL: "https://api.example.com",
//	    APIKey:  key,
//	    Debug:   true,
//	    Job:     job,
//	})
//	if err != nil {
//	    return err
//	}
//
//	resp, err := client.Post(ctx, "/widgets", widget)
//	var apiErr *apiclient.Error
//	if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
//	    // ...
//	}
//
// Every attempt passes through an ordered pipeline: outbound handlers run
// before the request is sent and inbound handlers run after the response or
// failure is known. Attempts of one call are strictly sequential; the delay
// between them comes from the [RetryPolicy].
//
// Network failures and 5xx responses are retried, 4xx responses are not.
// Failures of the Job are reported to the zerolog logger and never replace
// the result of the call.
package apiclient
