// Package version provides build version information.
package version

var (
	// Version is the semantic version (injected at build time via -ldflags)
	version = "dev"
	// Commit is the git commit hash (injected at build time via -ldflags)
	commit = "none"
)

// GetVersion returns the version string
func GetVersion() string {
	return version
}

// GetFullVersion returns version with commit info
func GetFullVersion() string {
	return version + " (commit: " + commit + ")"
}
