// Package version provides build and version information.
package version

import (
	"fmt"
	"runtime"
)

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Calculators view, event log, PNG/CSV/YAML export, saved theme
// 0.2.0 - Area chart with peak marker and visible band, light/dark themes
// 0.1.0 - Initial release: presets, log temperature slider, headless info

// Commit is injected at build time via -ldflags "-X .../internal/version.Commit=...".
var Commit = "unknown"

// String returns a human-readable version line.
func String() string {
	platform := runtime.GOOS + "/" + runtime.GOARCH
	if len(Commit) >= 8 && Commit != "unknown" {
		return fmt.Sprintf("ls-blackbody %s (commit: %s, %s, %s)", Version, Commit[:8], runtime.Version(), platform)
	}
	return fmt.Sprintf("ls-blackbody %s (%s, %s)", Version, runtime.Version(), platform)
}
