// Package version reports the build version of footprint.
package version

import "fmt"

// Set via -ldflags "-X github.com/rshade/footprint/pkg/version.version=...".
//
//nolint:gochecknoglobals // Overwritten by the linker.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// GetVersion returns the release version, "dev" for local builds.
func GetVersion() string {
	return version
}

// String returns the version with commit and build date when known.
func String() string {
	s := version
	if commit != "" {
		s = fmt.Sprintf("%s (%s)", s, commit)
	}
	if date != "" {
		s = fmt.Sprintf("%s built %s", s, date)
	}
	return s
}
