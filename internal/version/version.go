// Package version reports the cssvalues build version.
package version

import (
	"runtime/debug"
)

// Set at build time with -ldflags "-X bennypowers.dev/cssvalues/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = ""
)

// readBuildInfo is swapped out in tests
var readBuildInfo = debug.ReadBuildInfo

// Get returns the ldflags version, the module version from build info,
// or "dev"
func Get() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// String is Get plus the short commit when one is known
func String() string {
	v := Get()
	if Commit == "" {
		return v
	}
	c := Commit
	if len(c) > 7 {
		c = c[:7]
	}
	return v + " (" + c + ")"
}
