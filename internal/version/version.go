// Package version holds build information set via -ldflags.
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/griffithind/parsekit/internal/version.Version=v1.2.3"
var Version = "dev"
