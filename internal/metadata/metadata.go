// Package metadata holds build information set with -ldflags -X.
package metadata

var (
	// Version is the current Version of binary
	Version = "freshest"
	// CommitHash is the current commit hash of binary
	CommitHash = "n/a"
	// BuildTime is the current build time of binary
	BuildTime = "n/a"
)
