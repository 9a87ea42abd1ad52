// Package settings provides build metadata, per-run configuration, and
// context helpers used across the ccx CLI.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "ccx"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the resolved settings of a single invocation after flags and
// config have been merged.
type Run struct {
	MinLogLevel int8
	// BuildDir is the directory holding the cache file.
	BuildDir string
	// CacheFileName is the cache file name inside BuildDir.
	CacheFileName string
	// Strict turns an unreadable cache file into a fatal error.
	Strict       bool
	ShowAdvanced bool
	NoColor      bool
}

// NewCliParams returns the defaults used before config and flags apply.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel:   0,
		BuildDir:      ".",
		CacheFileName: "CMakeCache.txt",
		Strict:        true,
		ShowAdvanced:  false,
		NoColor:       false,
	}
}
