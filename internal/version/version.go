// Package version reports the objlist build. The variables are set at
// build time with -ldflags "-X".
package version

import "runtime/debug"

var (
	// Version is the release version.
	Version = "development"
	// Commit is the git commit hash.
	Commit = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// String returns the version, suffixed with the commit when known. Without
// an ldflags commit the VCS revision recorded by the Go toolchain is used.
func String() string {
	commit := Commit
	if commit == "unknown" {
		commit = vcsRevision()
	}
	if commit == "" || commit == "unknown" {
		return Version
	}
	return Version + "+" + commit
}

func vcsRevision() string {
	info, ok := readBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
