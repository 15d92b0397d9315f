package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionPopulated(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, Commit)
	assert.Contains(t, Full(), Version)
	assert.Contains(t, Full(), "commit: "+Commit)
}

func TestGetMatchesVariables(t *testing.T) {
	i := Get()
	assert.Equal(t, Version, i.Version)
	assert.Equal(t, Commit, i.Commit)
	assert.Equal(t, GoVersion, i.GoVersion)
}

// withVars resets the package variables for the duration of a test.
func withVars(t *testing.T, version, commit string) {
	t.Helper()
	oldVersion, oldCommit, oldDirty := Version, Commit, dirty
	Version, Commit = version, commit
	t.Cleanup(func() { Version, Commit, dirty = oldVersion, oldCommit, oldDirty })
}

func TestApplyFromBuildSettings(t *testing.T) {
	withVars(t, "", "")

	apply(readVCS([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
	}))

	assert.Equal(t, "0123456-dirty", Commit)
	assert.Equal(t, "dev-20260304", Version)
	assert.True(t, Get().Dirty)
}

func TestApplyKeepsLdflagsValues(t *testing.T) {
	withVars(t, "v1.2.3", "abc123")

	apply(readVCS([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
	}))

	assert.Equal(t, "v1.2.3", Version)
	assert.Equal(t, "abc123", Commit)
}

func TestApplyIgnoresBadTime(t *testing.T) {
	withVars(t, "", "")

	apply(readVCS([]debug.BuildSetting{{Key: "vcs.time", Value: "yesterday"}}))

	assert.Empty(t, Version)
	assert.Empty(t, Commit)
}
