// Package version holds the coderead version string.
package version

// Version is the current coderead version, overridable at build time via
// -ldflags "-X coderead/internal/version.Version=...".
var Version = "0.3.0"
