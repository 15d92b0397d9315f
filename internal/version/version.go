package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/headless/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/headless/internal/version.Commit=abc123"
//
// Unset values are filled from the module's build info, then fall back to a
// timestamped dev version.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
	// GoVersion is the toolchain the binary was built with
	GoVersion = ""
)

// shortCommitLen is the length of an abbreviated VCS revision.
const shortCommitLen = 7

// Info describes the running build. It is embedded in machine-readable
// output so a saved engine view can be traced back to the build that made it.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
}

// vcs holds the build settings stamped by the go command.
type vcs struct {
	revision string
	modified bool
	time     time.Time
}

var dirty bool

func init() {
	info, ok := debug.ReadBuildInfo()
	if ok {
		GoVersion = info.GoVersion
		apply(readVCS(info.Settings))
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func readVCS(settings []debug.BuildSetting) vcs {
	var v vcs
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			v.revision = s.Value
		case "vcs.modified":
			v.modified = s.Value == "true"
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
				v.time = t
			}
		}
	}
	return v
}

// apply fills Version and Commit from v unless ldflags already set them.
// Build info carries no tags, so the version is derived from the commit date.
func apply(v vcs) {
	if Commit == "" && v.revision != "" {
		Commit = v.revision
		if len(Commit) > shortCommitLen {
			Commit = Commit[:shortCommitLen]
		}
		if v.modified {
			Commit += "-dirty"
		}
	}
	dirty = v.modified
	if Version == "" && !v.time.IsZero() {
		Version = fmt.Sprintf("dev-%s", v.time.Format("20060102"))
	}
}

// Get returns the build description.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: GoVersion,
		Dirty:     dirty,
	}
}

// Full returns the full version string including commit
func Full() string {
	i := Get()
	if i.GoVersion == "" {
		return fmt.Sprintf("%s (commit: %s)", i.Version, i.Commit)
	}
	return fmt.Sprintf("%s (commit: %s, %s)", i.Version, i.Commit, i.GoVersion)
}
