package version

import "fmt"

// Populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-friendly string surfacing the build metadata.
func Info() string {
	return fmt.Sprintf("arbeitszeit %s (commit %s, built %s)", Version, Commit, Date)
}
