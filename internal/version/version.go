// Package version holds build metadata injected at link time via -ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release version, e.g. "v0.3.0".
	Version = "dev"
	// Commit is the git commit SHA the binary was built from.
	Commit = "none"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Short returns only the version number.
func Short() string {
	return Version
}

// Info returns the full version information.
func Info() string {
	return fmt.Sprintf("dsc %s\ncommit: %s\nbuilt: %s\ngo: %s", Version, Commit, BuildTime, runtime.Version())
}
