// Package version holds the tempo version string, overridable at build time
// via -ldflags "-X tempo/pkg/version.Version=...".
package version

// Version is the current tempo release.
var Version = "0.1.0-dev"
