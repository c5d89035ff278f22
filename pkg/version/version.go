// Package version exposes the build version of the smokifit binary.
package version

// Version is set at build time via
// -ldflags "-X github.com/smokifit/smokifit/pkg/version.Version=v1.2.3".
var Version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return Version
}
