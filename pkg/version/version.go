// Package version holds build metadata stamped in via -ldflags.
package version

var (
	// Version is the semantic version of this build.
	Version = "v0.1.0"

	// Commit is the git revision the binary was built from.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)
