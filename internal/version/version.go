// Package version provides the build-time version string for the genversion binary.
// The Version variable is overridden at build time via -ldflags:
//
//	go build -ldflags "-X github.com/mtustin-handy/bruce/internal/version.Version=v1.0.0" .
package version

import (
	"fmt"
	"runtime"
)

// Version is set at build time via -ldflags.
// It defaults to "dev" for local builds without ldflags.
var Version = "dev"

// String returns a human-readable version string including OS and architecture.
// Example: "genversion v1.0.0 (linux/amd64)"
func String() string {
	return fmt.Sprintf("genversion %s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}
