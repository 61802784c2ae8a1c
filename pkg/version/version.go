// Package version holds build metadata, set with -ldflags -X at release time.
package version

import "fmt"

var (
	// Version is the nucomplete release
	Version = "dev"
	// BuildTime is when the binary was built
	BuildTime = "unknown"
	// GitCommit is the commit the binary was built from
	GitCommit = "unknown"
)

// String formats the metadata for --version output
func String() string {
	if GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildTime)
}
