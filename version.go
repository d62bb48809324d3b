package id3meta

import (
	"fmt"
	"runtime"
)

// Version is the semantic version of the id3meta library.
const Version = "0.1.0"

// Set with -ldflags "-X github.com/simonhull/id3meta.gitCommit=... -X github.com/simonhull/id3meta.buildTime=...".
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// VersionInfo describes the build of the library.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}

// GetVersionInfo returns the library version with the build details
// stamped in by the linker.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}
