// Package version holds the build version, set with
// -ldflags "-X ringron/internal/version.Version=...".
package version

var Version = "dev"
