// Package version records build identity. Values are overridden at build
// time via -ldflags.
package version

var (
	Version = "dev"
	Commit  = "unknown"
)
