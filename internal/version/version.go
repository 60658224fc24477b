// Package version holds build information for wiggle.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns the one-line version banner printed by --version.
func String() string {
	return fmt.Sprintf("wiggle %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
