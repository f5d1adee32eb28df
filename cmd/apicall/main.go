// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command apicall performs one HTTP call through the apiclient package.
//
//	apicall [flags] METHOD PATH [JSON-BODY]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-apiclient/apiclient"
	"github.com/MKhiriev/go-apiclient/internal/config"
	"github.com/MKhiriev/go-apiclient/internal/logger"
	"github.com/MKhiriev/go-apiclient/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: apicall [flags] METHOD PATH [JSON-BODY]

flags:
  -u URL            base URL (APICALL_BASE_URL)
  -k KEY            API key sent as bearer token (APICALL_API_KEY)
  -H "Name: value"  extra header, repeatable (APICALL_HEADERS)
  -r N              number of retries (APICALL_RETRIES)
  -debug            log every attempt (APICALL_DEBUG)
  -trace-header H   header carrying a generated trace ID (APICALL_TRACE_HEADER)
  -log-file PATH    log file, stderr by default (APICALL_LOG_FILE)
  -c, -config PATH  JSON config file (CONFIG)
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	printBuildInfo(stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(stderr, usage)
			return 0
		}
		fmt.Fprintf(stderr, "error getting configs: %v\n\n%s", err, usage)
		return 2
	}

	log := logger.NewLogger("apicall")
	if cfg.Log.File != "" {
		log = logger.NewFileLogger("apicall", cfg.Log.File)
	}

	client, err := apiclient.New(cfg.ClientOptions(logger.NewJob(log), log.Zerolog()))
	if err != nil {
		log.Error().Err(err).Msg("create http client")
		fmt.Fprintln(stderr, err)
		return 2
	}

	resp, err := client.Do(log.WithContext(ctx), cfg.Request())
	if err != nil {
		log.Error().Err(err).Str("method", cfg.Call.Method).Str("path", cfg.Call.Path).Msg("call failed")
		fmt.Fprintln(stderr, err)
		return 1
	}

	if _, err = stdout.Write(resp.Body); err != nil {
		log.Error().Err(err).Msg("write response body")
		return 1
	}
	if len(resp.Body) > 0 && resp.Body[len(resp.Body)-1] != '\n' {
		fmt.Fprintln(stdout)
	}

	return 0
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Fprintf(w, "Build date: %s\n", orNA(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
