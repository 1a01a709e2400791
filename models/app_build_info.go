// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries the linker-injected build metadata of the client.
// Empty values are reported as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo fills missing values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

// String renders the one-line form used in the menu footer.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s (%s, %s)", a.Version, a.Date, a.Commit)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
