package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		revision string
		expected string
	}{
		{"development without commit", "development", "unknown", "", "development"},
		{"release with commit", "1.0.0", "abc1234", "", "1.0.0+abc1234"},
		{"ldflags commit wins over vcs", "1.0.0", "abc1234", "fffffffffff", "1.0.0+abc1234"},
		{"vcs revision is shortened", "0.5.0", "unknown", "def5678aaaa", "0.5.0+def5678"},
		{"short vcs revision ignored", "0.5.0", "unknown", "abc", "0.5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origCommit, origRead := Version, Commit, readBuildInfo
			defer func() {
				Version, Commit, readBuildInfo = origVersion, origCommit, origRead
			}()

			Version = tt.version
			Commit = tt.commit
			readBuildInfo = func() (*debug.BuildInfo, bool) {
				return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: tt.revision}}}, true
			}

			assert.Equal(t, tt.expected, String())
		})
	}
}

func TestStringWithoutBuildInfo(t *testing.T) {
	origCommit, origRead := Commit, readBuildInfo
	defer func() { Commit, readBuildInfo = origCommit, origRead }()

	Commit = "unknown"
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
	assert.Equal(t, Version, String())
}
