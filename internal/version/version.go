// Package version carries build information injected at link time:
//
//	go build -ldflags "-X github.com/arthur-debert/deckout/internal/version.Version=v1.2.0" ./cmd/deckout/main
package version

// Build information set by ldflags
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version with commit and build date
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
