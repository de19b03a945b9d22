// Package version holds build metadata, set at link time:
//
//	go build -ldflags "-X github.com/san-kum/catenary/internal/version.Version=0.2.0"
package version

import "fmt"

var (
	Version = "0.1.0"

	// BuildTime is set via ldflags.
	BuildTime = "unknown"

	// GitCommit is set via ldflags.
	GitCommit = "unknown"
)

// String is the one-line form printed by `catenary version`.
func String() string {
	return fmt.Sprintf("catenary %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
