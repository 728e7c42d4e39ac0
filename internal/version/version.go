// Package version holds build metadata, set at link time:
//
//	go build -ldflags "-X github.com/itsmostafa/mdtree/internal/version.Version=v1.0.0"
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
