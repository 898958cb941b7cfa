// Package version reports the build version of the insights binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/katalon/insights/internal/shared/version.Version=1.4.0"
var Version = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	if version == "" {
		return ""
	}
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// Current returns the normalized build version, or "dev" for local builds
// that were not stamped with a valid semantic version.
func Current() string {
	v := Normalize(Version)
	if !semver.IsValid(v) {
		return "dev"
	}
	return semver.Canonical(v)
}

// IsRelease reports whether the binary was stamped with a release version.
// Prereleases such as v1.2.0-rc.1 are not releases.
func IsRelease() bool {
	v := Current()
	return v != "dev" && semver.Prerelease(v) == ""
}
