// Package version holds the swapgen build version.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/sirap-group/swapgen/internal/version.Version=v1.2.3".
var Version = "dev"
