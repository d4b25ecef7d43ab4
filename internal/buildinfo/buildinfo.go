// Package buildinfo carries the version stamped in at build time and shown
// in the window title and server banner.
package buildinfo

// Version and Commit are set via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns a compact build identifier.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
