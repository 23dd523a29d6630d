// Package version reports the build version of localecodes. Release builds
// set it with -ldflags "-X github.com/nupi-ai/localecodes/internal/version.version=...".
package version

import (
	"fmt"
	"regexp"
	"strings"
)

var version = "dev"

// String returns the build version for the current binary.
func String() string {
	return version
}

// ForTesting overrides the version string and returns a cleanup function
// that restores the original value. Must not be called concurrently.
func ForTesting(v string) func() {
	original := version
	version = v
	return func() { version = original }
}

// gitDescribeSuffix matches the trailing "-N-gHASH" added by git describe
// (e.g., "0.3.0-5-gabcdef" → strip "-5-gabcdef").
var gitDescribeSuffix = regexp.MustCompile(`-\d+-g[0-9a-f]+$`)

func normalizeVersion(v string) string {
	v = strings.TrimPrefix(v, "v")
	return gitDescribeSuffix.ReplaceAllString(v, "")
}

// FormatVersion returns a display-friendly version string. For normal versions
// it ensures a "v" prefix (e.g. "0.3.0" → "v0.3.0"). Special values like
// "dev" and empty strings are returned as-is.
func FormatVersion(v string) string {
	if v == "" || v == "dev" {
		return v
	}
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// CheckSnapshotVersion compares the running build with the version recorded
// in an existing export snapshot. It returns a warning when they differ, since
// the snapshot may then hold older registry data, and an empty string when
// they match or either side is a development build.
func CheckSnapshotVersion(snapshot string) string {
	if snapshot == "" || version == "" {
		return ""
	}
	if snapshot == "dev" || version == "dev" {
		return ""
	}
	if normalizeVersion(snapshot) == normalizeVersion(version) {
		return ""
	}
	return fmt.Sprintf(
		"WARNING: snapshot written by localecodes %s is being overwritten by localecodes %s",
		FormatVersion(snapshot), FormatVersion(version),
	)
}
