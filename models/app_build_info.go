// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo holds the version, date and commit of an apicall build.
// The values are set with -ldflags and printed to stderr on every run.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns build info for the given linker-provided values.
// Empty values are kept as is; callers decide how to render them.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release version, e.g. "v1.4.0".
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp as injected.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the git commit the binary was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
