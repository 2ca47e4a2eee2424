// Package version reports the tablepager build version.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Set at build time with -ldflags "-X github.com/rshade/tablepager/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version   = "0.0.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the build version without a leading "v". A version
// that is not valid semver is returned unchanged.
func GetVersion() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return v.String()
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Info returns a one-line build description for --version.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", GetVersion(), gitCommit, buildDate, runtime.Version())
}
