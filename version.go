package id3chapters

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the id3chapters module.
const Version = "0.1.0"

// Set with -ldflags "-X github.com/simonhull/id3chapters.commit=...". When
// left empty, the VCS stamp recorded by the Go toolchain is used instead.
var (
	commit    string
	buildTime string
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// GetVersion returns the module version.
func GetVersion() string {
	return Version
}

// GetBuildInfo returns the version together with the commit and build time
// of the running binary. Fields that cannot be determined are "unknown".
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "":
				info.BuildTime = s.Value
			}
		}
	}

	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}

// String formats the build info as a single line.
func (b BuildInfo) String() string {
	return fmt.Sprintf("id3chapters %s (commit %s, built %s, %s)", b.Version, b.Commit, b.BuildTime, b.GoVersion)
}
