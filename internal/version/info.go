// Package version exposes build metadata for the roomlog binary.
package version

import (
	"runtime"
	"strings"
)

// Overridable at build time with -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info contains metadata about the compiled binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	Platform  string
	GoVersion string
}

// Get returns build metadata, normalizing empty ldflag values.
func Get() Info {
	return Info{
		Version:   fallback(Version, "dev"),
		Commit:    fallback(Commit, "unknown"),
		BuildDate: fallback(BuildDate, "unknown"),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion: runtime.Version(),
	}
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}

	return value
}
