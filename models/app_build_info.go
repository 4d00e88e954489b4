// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo carries the build metadata injected into the binaries through
// linker flags. Empty values are reported as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

// BuildVersion returns the release version or "N/A".
func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }

// BuildDate returns the build timestamp or "N/A".
func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.date) }

// BuildCommit returns the commit hash or "N/A".
func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.commit) }

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
