// Package version exposes the build identity of the lock screen.
package version

import (
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Build information, injected via ldflags at build time.
var (
	// Version is the semantic version of the release.
	Version = "0.1.0"
	// Commit is the git commit SHA.
	Commit = "dev"
	// BuildTime is the ISO 8601 build timestamp.
	BuildTime = "unknown"
)

// Info holds complete build and runtime information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Platform returns "<os>/<arch>".
func (i Info) Platform() string {
	return i.OS + "/" + i.Arch
}

// Semver parses Version. The string itself is always displayed verbatim;
// callers use the error only to warn about a malformed ldflags value.
func (i Info) Semver() (*semver.Version, error) {
	return semver.StrictNewVersion(i.Version)
}
