// Package version holds build-time version info for Skiff.
// Set via main using Set(), read from anywhere via Version().
package version

import (
	"github.com/Masterminds/semver/v3"
)

// defaultVersion is reported when the binary was built without linker
// flags, e.g. plain `go build` or `go run`.
const defaultVersion = "1.0.0"

// Build information, populated by Set() at startup.
var (
	version   = defaultVersion
	commit    = "unknown"
	buildDate = "unknown"
)

// Set stores build-time version info. Call once from main. Empty values
// keep the defaults.
func Set(v, c, d string) {
	if v != "" {
		version = normalize(v)
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

// normalize strips a leading "v" from tags like v1.2.3 so the reported
// version is a plain semantic version.
func normalize(v string) string {
	if sv, err := semver.NewVersion(v); err == nil {
		return sv.String()
	}
	return v
}

// Version returns the build version string.
func Version() string { return version }

// Commit returns the build commit hash.
func Commit() string { return commit }

// BuildDate returns the build date string.
func BuildDate() string { return buildDate }
