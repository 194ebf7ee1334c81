package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version information - will be injected at build time
var (
	Version   = "dev"     // Will be set via ldflags
	GitCommit = "unknown" // Will be set via ldflags
	BuildDate = "unknown" // Will be set via ldflags
)

// VersionInfo represents version information
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
	Arch      string
}

// GetVersionInfo returns current application version information
func GetVersionInfo() *VersionInfo {
	return &VersionInfo{
		Version:   normalizeVersion(Version),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// normalizeVersion renders release versions as "vX.Y.Z" and leaves
// development builds ("dev", commit hashes) untouched.
func normalizeVersion(v string) string {
	parsed, err := semver.NewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return v
	}
	return "v" + parsed.String()
}

func (v *VersionInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s %s/%s)",
		AppName, v.Version, v.GitCommit, v.BuildDate, v.GoVersion, v.Platform, v.Arch)
}
